package repositories

import (
	"testing"
	"time"

	"go-food-delivery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ptr[T any](v T) *T { return &v }

func TestMealFilter_Empty(t *testing.T) {
	q := models.MealQuery{}
	require.True(t, q.Empty())

	filter, err := MealFilter(q)
	require.NoError(t, err)
	assert.Empty(t, filter)
}

func TestMealFilter(t *testing.T) {
	restaurant := primitive.NewObjectID()
	q := models.MealQuery{
		Name:               ptr("marg.ri"),
		MaxPrice:           ptr(12.5),
		MinRating:          ptr(7),
		MaxCalories:        ptr(900),
		IsVegan:            ptr(false),
		RestaurantID:       ptr(restaurant.Hex()),
		WithoutAllergenics: []models.Allergen{models.AllergenGluten, models.AllergenMilk},
		Tags:               []models.Tag{models.TagPizza},
	}
	require.False(t, q.Empty())

	filter, err := MealFilter(q)
	require.NoError(t, err)

	assert.Equal(t, primitive.Regex{Pattern: `marg\.ri`, Options: "i"}, filter["name"])
	assert.Equal(t, bson.M{"$gte": MealMinPrice, "$lte": 12.5}, filter["price"])
	assert.Equal(t, bson.M{"$gte": 7}, filter["rating"])
	assert.Equal(t, bson.M{"$lte": 900}, filter["calories"])
	assert.Equal(t, false, filter["is_vegan"])
	assert.NotContains(t, filter, "is_vegetarian")
	assert.Equal(t, restaurant, filter["restaurant.id"])
	assert.Equal(t, bson.M{"$nin": []models.Allergen{models.AllergenGluten, models.AllergenMilk}}, filter["allergenics"])
	assert.Equal(t, bson.M{"$in": []models.Tag{models.TagPizza}}, filter["tags"])
}

func TestMealFilter_EmptyListsAddNoConstraint(t *testing.T) {
	filter, err := MealFilter(models.MealQuery{
		Name:               ptr("soup"),
		WithoutAllergenics: []models.Allergen{},
		Tags:               []models.Tag{},
	})
	require.NoError(t, err)
	assert.Len(t, filter, 1)
}

func TestMealFilter_InvalidRestaurant(t *testing.T) {
	_, err := MealFilter(models.MealQuery{RestaurantID: ptr("not-an-id")})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestOrderFilter(t *testing.T) {
	user, meal := primitive.NewObjectID(), primitive.NewObjectID()
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := after.AddDate(0, 1, 0)
	status := models.StatusInDelivery

	filter, err := OrderFilter(models.OrderQuery{
		Address:  ptr("Main St"),
		UserID:   ptr(user.Hex()),
		MealIDs:  []string{meal.Hex()},
		MinPrice: ptr(20.0),
		IsPaid:   ptr(true),
		Status:   &status,
		After:    &after,
		Before:   &before,
	})
	require.NoError(t, err)

	assert.Equal(t, primitive.Regex{Pattern: "Main St", Options: "i"}, filter["address"])
	assert.Equal(t, user, filter["user.id"])
	assert.Equal(t, bson.M{"$in": []primitive.ObjectID{meal}}, filter["meals.id"])
	assert.Equal(t, bson.M{"$gte": 20.0, "$lte": OrderMaxPrice}, filter["total_price"])
	assert.Equal(t, true, filter["is_paid"])
	assert.Equal(t, status, filter["status"])
	assert.Equal(t, bson.M{"$gte": after, "$lt": before}, filter["order_time"])
	assert.NotContains(t, filter, "is_delivered")
	assert.NotContains(t, filter, "postal_code")
}

func TestOrderFilter_SingleDateBound(t *testing.T) {
	before := time.Now()
	filter, err := OrderFilter(models.OrderQuery{Before: &before})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$lt": before}, filter["order_time"])
}

func TestOrderFilter_InvalidMealID(t *testing.T) {
	_, err := OrderFilter(models.OrderQuery{MealIDs: []string{primitive.NewObjectID().Hex(), "123"}})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestRestaurantFilter(t *testing.T) {
	filter, err := RestaurantFilter(models.RestaurantQuery{
		Name:       ptr("luigi"),
		PostalCode: ptr("1010"),
		MinRating:  ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"name":        primitive.Regex{Pattern: "luigi", Options: "i"},
		"postal_code": "1010",
		"rating":      bson.M{"$gte": 5},
	}, filter)
}

func TestUserFilter(t *testing.T) {
	provider := models.ProviderGoogle
	filter, err := UserFilter(models.UserQuery{
		Email:      ptr("jane@example.com"),
		Provider:   &provider,
		IsVerified: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, bson.M{
		"email":       "jane@example.com",
		"provider":    provider,
		"is_verified": true,
	}, filter)
}

func TestParseSort(t *testing.T) {
	assert.Nil(t, parseSort(""))
	assert.Equal(t, bson.D{
		{Key: "price", Value: -1},
		{Key: "name", Value: 1},
		{Key: "_id", Value: 1},
	}, parseSort("-price, name,,id,-"))
}

func TestParseProjection(t *testing.T) {
	assert.Empty(t, parseProjection(""))
	assert.Equal(t, bson.M{"name": 1, "price": 1}, parseProjection("name,price"))
	assert.Equal(t, bson.M{"description": 0, "_id": 0}, parseProjection("-description,-id"))
	assert.Equal(t, bson.M{"name": 1, "_id": 0}, parseProjection("name,-id,-price"))
}
