package services

import (
	"go-food-delivery/models"
	"go-food-delivery/repositories"

	"github.com/sirupsen/logrus"
)

// RestaurantService manages restaurants
type RestaurantService struct {
	*crud[models.Restaurant, models.RestaurantPatch, models.RestaurantQuery]
}

// NewRestaurantService creates a RestaurantService
func NewRestaurantService(repo repositories.RestaurantRepository, log *logrus.Logger) *RestaurantService {
	return &RestaurantService{crud: newCrud("restaurant", repo, repositories.RestaurantFilter, log)}
}
