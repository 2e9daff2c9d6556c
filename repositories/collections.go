package repositories

import (
	"context"
	"fmt"

	"go-food-delivery/derived"
	"go-food-delivery/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	MealsCollection       = "meals"
	OrdersCollection      = "orders"
	RestaurantsCollection = "restaurants"
	UsersCollection       = "users"
)

type (
	MealRepository       = Repository[models.Meal, models.MealPatch]
	OrderRepository      = Repository[models.Order, models.OrderPatch]
	RestaurantRepository = Repository[models.Restaurant, models.RestaurantPatch]
	UserRepository       = Repository[models.User, models.UserPatch]
)

// NewMeals returns the meal repository
func NewMeals(db *mongo.Database) *MongoRepository[models.Meal, models.MealPatch] {
	return NewMongoRepository[models.Meal, models.MealPatch](db.Collection(MealsCollection), derived.Meals{})
}

// NewOrders returns the order repository; totals are priced from the meals
// collection of the same database
func NewOrders(db *mongo.Database) *MongoRepository[models.Order, models.OrderPatch] {
	prices := NewMealPriceReader(db.Collection(MealsCollection))
	return NewMongoRepository[models.Order, models.OrderPatch](db.Collection(OrdersCollection), derived.NewOrders(prices))
}

// NewRestaurants returns the restaurant repository
func NewRestaurants(db *mongo.Database) *MongoRepository[models.Restaurant, models.RestaurantPatch] {
	return NewMongoRepository[models.Restaurant, models.RestaurantPatch](
		db.Collection(RestaurantsCollection),
		derived.None[models.Restaurant, models.RestaurantPatch]{},
	)
}

// NewUsers returns the user repository
func NewUsers(db *mongo.Database) *MongoRepository[models.User, models.UserPatch] {
	return NewMongoRepository[models.User, models.UserPatch](db.Collection(UsersCollection), derived.Users{})
}

// EnsureIndexes creates the indexes the services rely on
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	users := db.Collection(UsersCollection)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "provider", Value: 1}, {Key: "provider_id", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("creating user indexes: %w", err)
	}

	_, err = db.Collection(MealsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurant.id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("creating meal indexes: %w", err)
	}
	return nil
}
