package controllers

import (
	"time"

	"go-food-delivery/models"
)

// MealService is the meal half of the services layer
type MealService = Service[models.Meal, models.MealPatch, models.MealQuery]

// MealController handles meal requests
type MealController struct {
	*resource[models.Meal, models.MealPatch, models.MealQuery]
}

// NewMealController creates a MealController
func NewMealController(svc MealService, timeout time.Duration) *MealController {
	return &MealController{&resource[models.Meal, models.MealPatch, models.MealQuery]{
		svc:     svc,
		parse:   parseMealQuery,
		timeout: timeout,
	}}
}
