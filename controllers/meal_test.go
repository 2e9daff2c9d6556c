package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-food-delivery/models"
	"go-food-delivery/repositories"
	"go-food-delivery/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mealFake = fakeService[models.Meal, models.MealPatch, models.MealQuery]

func TestMealList_ParsesQuery(t *testing.T) {
	restaurantID := primitive.NewObjectID().Hex()
	var got models.MealQuery
	var gotOpts repositories.QueryOptions
	svc := &mealFake{get: func(q models.MealQuery, opts repositories.QueryOptions) ([]models.Meal, error) {
		got, gotOpts = q, opts
		return []models.Meal{{Name: "Margherita"}}, nil
	}}
	rec := httptest.NewRecorder()
	target := "/meals?name=pizza&min_price=5&max_rating=3&is_vegan=false&restaurant=" + restaurantID +
		"&without_allergenics=Milk,Gluten&tags=Pizza,,Spicy&sort=-price,name&fields=name,price"
	NewMealController(svc, testTimeout).List(rec, newRequest(t, http.MethodGet, target, "", "", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.Name)
	assert.Equal(t, "pizza", *got.Name)
	assert.Equal(t, 5.0, *got.MinPrice)
	assert.Nil(t, got.MaxPrice)
	assert.False(t, *got.IsVegan)
	assert.Equal(t, restaurantID, *got.RestaurantID)
	assert.Equal(t, []models.Allergen{models.AllergenMilk, models.AllergenGluten}, got.WithoutAllergenics)
	assert.Equal(t, []models.Tag{models.TagPizza, models.TagSpicy}, got.Tags)
	assert.Equal(t, repositories.QueryOptions{Sort: "-price,name", Fields: "name,price"}, gotOpts)

	var meals []models.Meal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &meals))
	assert.Len(t, meals, 1)
}

func TestMealList_RejectsMalformedParameters(t *testing.T) {
	svc := &mealFake{}
	for _, target := range []string{
		"/meals?min_price=cheap",
		"/meals?max_calories=1.5",
		"/meals?is_vegetarian=maybe",
		"/meals?restaurant=nope",
		"/meals?without_allergenics=Milk,Chocolate",
		"/meals?tags=Fusion",
	} {
		rec := httptest.NewRecorder()
		NewMealController(svc, testTimeout).List(rec, newRequest(t, http.MethodGet, target, "", "", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestMealCreate_Validation(t *testing.T) {
	restaurant := primitive.NewObjectID().Hex()
	var created *models.Meal
	svc := &mealFake{create: func(m *models.Meal) (*models.Meal, error) {
		created = m
		return m, nil
	}}
	c := NewMealController(svc, testTimeout)

	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"valid", `{"name":"Margherita","price":9.5,"rating":8,"calories":800,"restaurant":{"id":"` + restaurant + `"},"tags":["Pizza","Vegetarian"],"allergenics":["Gluten","Milk"]}`, http.StatusCreated},
		{"missing restaurant", `{"name":"Margherita","price":9.5}`, http.StatusBadRequest},
		{"price above range", `{"name":"Gold","price":51,"restaurant":{"id":"` + restaurant + `"}}`, http.StatusBadRequest},
		{"unknown tag", `{"name":"Margherita","price":9,"restaurant":{"id":"` + restaurant + `"},"tags":["Fusion"]}`, http.StatusBadRequest},
		{"unknown allergen", `{"name":"Margherita","price":9,"restaurant":{"id":"` + restaurant + `"},"allergenics":["Chocolate"]}`, http.StatusBadRequest},
		{"not json", `{"name":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			created = nil
			rec := httptest.NewRecorder()
			c.Create(rec, newRequest(t, http.MethodPost, "/meals", tc.body, "", nil))
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
			if tc.status == http.StatusCreated {
				require.NotNil(t, created)
				assert.Equal(t, restaurant, created.Restaurant.ID.Hex())
			} else {
				assert.Nil(t, created)
			}
		})
	}
}

func TestMealUpdate_IgnoresDerivedFlags(t *testing.T) {
	var patch *models.MealPatch
	svc := &mealFake{update: func(id string, p *models.MealPatch) (*models.Meal, error) {
		patch = p
		return &models.Meal{}, nil
	}}
	rec := httptest.NewRecorder()
	body := `{"is_vegan":true,"is_vegetarian":true,"tags":[]}`
	NewMealController(svc, testTimeout).Update(rec, newRequest(t, http.MethodPatch, "/meals/x", body, "abc", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, patch.IsVegan)
	assert.Nil(t, patch.IsVegetarian)
	require.NotNil(t, patch.Tags)
	assert.Empty(t, *patch.Tags)
}

func TestMealGet_NotFound(t *testing.T) {
	svc := &mealFake{getByID: func(id, fields string) (*models.Meal, error) {
		assert.Equal(t, "name", fields)
		return nil, &services.Error{Kind: services.KindNotFound, Message: "meal not found"}
	}}
	rec := httptest.NewRecorder()
	id := primitive.NewObjectID().Hex()
	NewMealController(svc, testTimeout).Get(rec, newRequest(t, http.MethodGet, "/meals/"+id+"?fields=name", "", id, nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"meal not found","code":"NOT_FOUND","status":404}`, rec.Body.String())
}
