package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MealPriceReader reads current meal prices for order totals
type MealPriceReader struct {
	collection *mongo.Collection
}

// NewMealPriceReader reads prices from the meals collection
func NewMealPriceReader(collection *mongo.Collection) *MealPriceReader {
	return &MealPriceReader{collection: collection}
}

// MealPrices fetches the prices of ids in one query; ids with no meal are
// absent from the result
func (p *MealPriceReader) MealPrices(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]float64, error) {
	prices := make(map[primitive.ObjectID]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	seen := make(map[primitive.ObjectID]bool, len(ids))
	unique := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	opts := options.Find().SetProjection(bson.M{"price": 1})
	cursor, err := p.collection.Find(ctx, bson.M{"_id": bson.M{"$in": unique}}, opts)
	if err != nil {
		return nil, fmt.Errorf("finding meal prices: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Price float64            `bson:"price"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decoding meal prices: %w", err)
	}
	for _, row := range rows {
		prices[row.ID] = row.Price
	}
	return prices, nil
}
