package controllers

import (
	"time"

	"go-food-delivery/models"
)

// RestaurantService is the restaurant half of the services layer
type RestaurantService = Service[models.Restaurant, models.RestaurantPatch, models.RestaurantQuery]

// RestaurantController handles restaurant requests
type RestaurantController struct {
	*resource[models.Restaurant, models.RestaurantPatch, models.RestaurantQuery]
}

// NewRestaurantController creates a RestaurantController
func NewRestaurantController(svc RestaurantService, timeout time.Duration) *RestaurantController {
	return &RestaurantController{&resource[models.Restaurant, models.RestaurantPatch, models.RestaurantQuery]{
		svc:     svc,
		parse:   parseRestaurantQuery,
		timeout: timeout,
	}}
}
