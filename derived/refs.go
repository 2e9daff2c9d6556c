// Package derived keeps computed document fields in step with their sources.
// A synchronizer runs on the repository's insert and update paths, before
// the write reaches the store; an error aborts the write.
package derived

import (
	"context"
	"errors"

	"go-food-delivery/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnresolvedReference is returned when a referenced document does not exist
var ErrUnresolvedReference = errors.New("unresolved reference")

// RestaurantRef builds the denormalized reference to a restaurant
func RestaurantRef(id primitive.ObjectID) models.Reference {
	return models.Reference{ID: id, Ref: models.RefRestaurant, Href: "/restaurants/" + id.Hex()}
}

// UserRef builds the denormalized reference to a user
func UserRef(id primitive.ObjectID) models.Reference {
	return models.Reference{ID: id, Ref: models.RefUser, Href: "/users/" + id.Hex()}
}

// MealRef builds the denormalized reference to a meal
func MealRef(id primitive.ObjectID) models.Reference {
	return models.Reference{ID: id, Ref: models.RefMeal, Href: "/meals/" + id.Hex()}
}

// None leaves documents as they are
type None[T any, P any] struct{}

func (None[T, P]) BeforeCreate(context.Context, *T) error { return nil }
func (None[T, P]) BeforeUpdate(context.Context, *P) error { return nil }
