package models

import "time"

// MealQuery holds the optional filters of a meal listing
type MealQuery struct {
	Name               *string
	MinPrice           *float64
	MaxPrice           *float64
	MinRating          *int
	MaxCalories        *int
	IsVegetarian       *bool
	IsVegan            *bool
	RestaurantID       *string
	WithoutAllergenics []Allergen
	Tags               []Tag
}

// Empty reports whether no filter is set
func (q MealQuery) Empty() bool {
	return q.Name == nil && q.MinPrice == nil && q.MaxPrice == nil &&
		q.MinRating == nil && q.MaxCalories == nil && q.IsVegetarian == nil &&
		q.IsVegan == nil && q.RestaurantID == nil &&
		len(q.WithoutAllergenics) == 0 && len(q.Tags) == 0
}

// OrderQuery holds the optional filters of an order listing
type OrderQuery struct {
	Address     *string
	PostalCode  *string
	UserID      *string
	MealIDs     []string
	MinPrice    *float64
	MaxPrice    *float64
	IsPaid      *bool
	IsDelivered *bool
	Status      *OrderStatus
	Before      *time.Time
	After       *time.Time
}

// Empty reports whether no filter is set
func (q OrderQuery) Empty() bool {
	return q.Address == nil && q.PostalCode == nil && q.UserID == nil &&
		len(q.MealIDs) == 0 && q.MinPrice == nil && q.MaxPrice == nil &&
		q.IsPaid == nil && q.IsDelivered == nil && q.Status == nil &&
		q.Before == nil && q.After == nil
}

// RestaurantQuery holds the optional filters of a restaurant listing
type RestaurantQuery struct {
	Name       *string
	Address    *string
	PostalCode *string
	MinRating  *int
}

// Empty reports whether no filter is set
func (q RestaurantQuery) Empty() bool {
	return q.Name == nil && q.Address == nil && q.PostalCode == nil && q.MinRating == nil
}

// UserQuery holds the optional filters of a user listing
type UserQuery struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Provider   *Provider
	ProviderID *string
	IsVerified *bool
	IsAdmin    *bool
}

// Empty reports whether no filter is set
func (q UserQuery) Empty() bool {
	return q.FirstName == nil && q.LastName == nil && q.Email == nil &&
		q.Provider == nil && q.ProviderID == nil && q.IsVerified == nil && q.IsAdmin == nil
}
