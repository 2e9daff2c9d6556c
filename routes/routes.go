package routes

import (
	"net/http"

	"go-food-delivery/controllers"
	"go-food-delivery/middleware"
	"go-food-delivery/utils"

	"github.com/gorilla/mux"
)

// Controllers groups the handlers the router serves
type Controllers struct {
	Users       *controllers.UserController
	Meals       *controllers.MealController
	Restaurants *controllers.RestaurantController
	Orders      *controllers.OrderController
	Health      http.HandlerFunc
}

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, c Controllers, tokens *utils.TokenManager) {
	auth := middleware.Auth(tokens)

	// Public routes
	router.HandleFunc("/health", c.Health).Methods(http.MethodGet)
	router.HandleFunc("/register", c.Users.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", c.Users.Login).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}/verify", c.Users.Verify).Methods(http.MethodPost)
	router.HandleFunc("/users/{id}/send-verification", c.Users.SendVerification).Methods(http.MethodPost)

	router.HandleFunc("/meals", c.Meals.List).Methods(http.MethodGet)
	router.HandleFunc("/meals/{id}", c.Meals.Get).Methods(http.MethodGet)
	router.HandleFunc("/restaurants", c.Restaurants.List).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/{id}", c.Restaurants.Get).Methods(http.MethodGet)

	// Protected routes
	protected := router.NewRoute().Subrouter()
	protected.Use(auth)
	protected.HandleFunc("/profile", c.Users.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/orders", c.Orders.List).Methods(http.MethodGet)
	protected.HandleFunc("/orders", c.Orders.Create).Methods(http.MethodPost)
	protected.HandleFunc("/orders/{id}", c.Orders.Get).Methods(http.MethodGet)
	protected.HandleFunc("/orders/{id}", c.Orders.Update).Methods(http.MethodPatch)
	protected.HandleFunc("/orders/{id}", c.Orders.Delete).Methods(http.MethodDelete)

	// Admin routes
	admin := router.NewRoute().Subrouter()
	admin.Use(auth, middleware.Admin)
	admin.HandleFunc("/users", c.Users.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", c.Users.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", c.Users.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/users/{id}", c.Users.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/meals", c.Meals.Create).Methods(http.MethodPost)
	admin.HandleFunc("/meals/{id}", c.Meals.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/meals/{id}", c.Meals.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/restaurants", c.Restaurants.Create).Methods(http.MethodPost)
	admin.HandleFunc("/restaurants/{id}", c.Restaurants.Update).Methods(http.MethodPatch)
	admin.HandleFunc("/restaurants/{id}", c.Restaurants.Delete).Methods(http.MethodDelete)
}
