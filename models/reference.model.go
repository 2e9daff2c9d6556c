package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity type names stored in Reference.Ref
const (
	RefMeal       = "Meal"
	RefRestaurant = "Restaurant"
	RefUser       = "User"
)

// Reference is a denormalized pointer to another document
type Reference struct {
	ID   primitive.ObjectID `bson:"id" json:"id" validate:"objectid"`
	Ref  string             `bson:"ref" json:"ref"`
	Href string             `bson:"href" json:"href"`
}
