package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant represents a place meals are ordered from
type Restaurant struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name       string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Rating     int                `bson:"rating" json:"rating" validate:"gte=0,lte=10"`
	Address    string             `bson:"address" json:"address" validate:"required,max=200"`
	PostalCode string             `bson:"postal_code" json:"postal_code" validate:"required,max=10"`
}

// RestaurantPatch is a partial restaurant update
type RestaurantPatch struct {
	Name       *string `bson:"name,omitempty" json:"name" validate:"omitempty,min=2,max=100"`
	Rating     *int    `bson:"rating,omitempty" json:"rating" validate:"omitempty,gte=0,lte=10"`
	Address    *string `bson:"address,omitempty" json:"address" validate:"omitempty,max=200"`
	PostalCode *string `bson:"postal_code,omitempty" json:"postal_code" validate:"omitempty,max=10"`
}
