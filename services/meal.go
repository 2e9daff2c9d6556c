package services

import (
	"go-food-delivery/models"
	"go-food-delivery/repositories"

	"github.com/sirupsen/logrus"
)

// MealService manages meals
type MealService struct {
	*crud[models.Meal, models.MealPatch, models.MealQuery]
}

// NewMealService creates a MealService
func NewMealService(repo repositories.MealRepository, log *logrus.Logger) *MealService {
	return &MealService{crud: newCrud("meal", repo, repositories.MealFilter, log)}
}
