package repositories

import (
	"regexp"

	"go-food-delivery/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default bounds of the price ranges. When a query sets only one end of a
// range the other end falls back to these.
const (
	MealMinPrice  = 0.0
	MealMaxPrice  = 50.0
	OrderMinPrice = 0.0
	OrderMaxPrice = 1000.0
)

// MealFilter builds the predicate of a meal listing
func MealFilter(q models.MealQuery) (bson.M, error) {
	filter := bson.M{}
	if q.Name != nil {
		filter["name"] = contains(*q.Name)
	}
	if r := priceRange(q.MinPrice, q.MaxPrice, MealMinPrice, MealMaxPrice); r != nil {
		filter["price"] = r
	}
	if q.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *q.MinRating}
	}
	if q.MaxCalories != nil {
		filter["calories"] = bson.M{"$lte": *q.MaxCalories}
	}
	if q.IsVegetarian != nil {
		filter["is_vegetarian"] = *q.IsVegetarian
	}
	if q.IsVegan != nil {
		filter["is_vegan"] = *q.IsVegan
	}
	if q.RestaurantID != nil {
		id, err := ParseID(*q.RestaurantID)
		if err != nil {
			return nil, err
		}
		filter["restaurant.id"] = id
	}
	if len(q.WithoutAllergenics) > 0 {
		filter["allergenics"] = bson.M{"$nin": q.WithoutAllergenics}
	}
	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$in": q.Tags}
	}
	return filter, nil
}

// OrderFilter builds the predicate of an order listing.
// After is inclusive and Before exclusive on the order time.
func OrderFilter(q models.OrderQuery) (bson.M, error) {
	filter := bson.M{}
	if q.Address != nil {
		filter["address"] = contains(*q.Address)
	}
	if q.PostalCode != nil {
		filter["postal_code"] = *q.PostalCode
	}
	if q.UserID != nil {
		id, err := ParseID(*q.UserID)
		if err != nil {
			return nil, err
		}
		filter["user.id"] = id
	}
	if len(q.MealIDs) > 0 {
		ids := make([]primitive.ObjectID, 0, len(q.MealIDs))
		for _, raw := range q.MealIDs {
			id, err := ParseID(raw)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		filter["meals.id"] = bson.M{"$in": ids}
	}
	if r := priceRange(q.MinPrice, q.MaxPrice, OrderMinPrice, OrderMaxPrice); r != nil {
		filter["total_price"] = r
	}
	if q.IsPaid != nil {
		filter["is_paid"] = *q.IsPaid
	}
	if q.IsDelivered != nil {
		filter["is_delivered"] = *q.IsDelivered
	}
	if q.Status != nil {
		filter["status"] = *q.Status
	}
	if q.Before != nil || q.After != nil {
		window := bson.M{}
		if q.After != nil {
			window["$gte"] = *q.After
		}
		if q.Before != nil {
			window["$lt"] = *q.Before
		}
		filter["order_time"] = window
	}
	return filter, nil
}

// RestaurantFilter builds the predicate of a restaurant listing
func RestaurantFilter(q models.RestaurantQuery) (bson.M, error) {
	filter := bson.M{}
	if q.Name != nil {
		filter["name"] = contains(*q.Name)
	}
	if q.Address != nil {
		filter["address"] = contains(*q.Address)
	}
	if q.PostalCode != nil {
		filter["postal_code"] = *q.PostalCode
	}
	if q.MinRating != nil {
		filter["rating"] = bson.M{"$gte": *q.MinRating}
	}
	return filter, nil
}

// UserFilter builds the predicate of a user listing
func UserFilter(q models.UserQuery) (bson.M, error) {
	filter := bson.M{}
	if q.FirstName != nil {
		filter["first_name"] = contains(*q.FirstName)
	}
	if q.LastName != nil {
		filter["last_name"] = contains(*q.LastName)
	}
	if q.Email != nil {
		filter["email"] = *q.Email
	}
	if q.Provider != nil {
		filter["provider"] = *q.Provider
	}
	if q.ProviderID != nil {
		filter["provider_id"] = *q.ProviderID
	}
	if q.IsVerified != nil {
		filter["is_verified"] = *q.IsVerified
	}
	if q.IsAdmin != nil {
		filter["is_admin"] = *q.IsAdmin
	}
	return filter, nil
}

// contains matches s anywhere in the field, ignoring case
func contains(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

func priceRange(from, to *float64, defFrom, defTo float64) bson.M {
	if from == nil && to == nil {
		return nil
	}
	lo, hi := defFrom, defTo
	if from != nil {
		lo = *from
	}
	if to != nil {
		hi = *to
	}
	return bson.M{"$gte": lo, "$lte": hi}
}
