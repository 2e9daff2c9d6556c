package repositories

import (
	"context"
	"errors"
	"testing"

	"go-food-delivery/derived"
	"go-food-delivery/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const ns = "fooddelivery.test"

type recordingSync struct {
	created, updated int
	err              error
}

func (s *recordingSync) BeforeCreate(context.Context, *models.Restaurant) error {
	s.created++
	return s.err
}

func (s *recordingSync) BeforeUpdate(context.Context, *models.RestaurantPatch) error {
	s.updated++
	return s.err
}

func restaurantDoc(id primitive.ObjectID, name string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "rating", Value: 8},
		{Key: "address", Value: "Main St 1"},
		{Key: "postal_code", Value: "1010"},
	}
}

func TestMongoRepository_Find(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes every document in order", func(mt *mtest.T) {
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			restaurantDoc(a, "Luigi"), restaurantDoc(b, "Mario")))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		got, err := repo.FindAll(context.Background(), QueryOptions{Sort: "name"})
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, a, got[0].ID)
		assert.Equal(mt, "Mario", got[1].Name)
	})

	mt.Run("no documents yields an empty list", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		got, err := repo.Find(context.Background(), bson.M{"rating": bson.M{"$gte": 9}}, QueryOptions{})
		require.NoError(mt, err)
		assert.NotNil(mt, got)
		assert.Empty(mt, got)
	})

	mt.Run("store faults are not reported as not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "bad query",
		}))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		_, err := repo.FindAll(context.Background(), QueryOptions{})
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoRepository_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, restaurantDoc(id, "Luigi")))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		got, err := repo.FindByID(context.Background(), id.Hex(), "name,rating")
		require.NoError(mt, err)
		assert.Equal(mt, "Luigi", got.Name)
	})

	mt.Run("well formed but absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex(), "")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		_, err := repo.FindByID(context.Background(), "abc", "")
		assert.ErrorIs(mt, err, ErrInvalidID)
	})
}

func TestMongoRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("runs the synchronizer and returns the stored document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, restaurantDoc(id, "Luigi")),
		)

		sync := &recordingSync{}
		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, sync)
		got, err := repo.Create(context.Background(), &models.Restaurant{ID: id, Name: "Luigi"})
		require.NoError(mt, err)
		assert.Equal(mt, 1, sync.created)
		assert.Equal(mt, id, got.ID)
	})

	mt.Run("synchronizer failure aborts the write", func(mt *mtest.T) {
		sync := &recordingSync{err: derived.ErrUnresolvedReference}
		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, sync)
		_, err := repo.Create(context.Background(), &models.Restaurant{Name: "Luigi"})
		assert.ErrorIs(mt, err, derived.ErrUnresolvedReference)
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		repo := NewMongoRepository[models.User, models.UserPatch](mt.Coll, derived.Users{})
		_, err := repo.Create(context.Background(), &models.User{Email: "jane@example.com"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})
}

func TestMongoRepository_CreateOrderPricesMeals(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("total comes from the meals collection", func(mt *mtest.T) {
		pizza, pasta := primitive.NewObjectID(), primitive.NewObjectID()
		orderID := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: pizza}, {Key: "price", Value: 8.0}},
				bson.D{{Key: "_id", Value: pasta}, {Key: "price", Value: 10.5}},
			),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
				{Key: "_id", Value: orderID},
				{Key: "total_price", Value: 18.5},
			}),
		)

		repo := NewMongoRepository[models.Order, models.OrderPatch](mt.Coll, derived.NewOrders(NewMealPriceReader(mt.Coll)))
		order := &models.Order{
			ID:    orderID,
			Meals: []models.Reference{{ID: pizza}, {ID: pasta}},
		}
		got, err := repo.Create(context.Background(), order)
		require.NoError(mt, err)
		assert.Equal(mt, 18.5, order.TotalPrice)
		assert.Equal(mt, 18.5, got.TotalPrice)
	})

	mt.Run("unknown meal aborts before insert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		repo := NewMongoRepository[models.Order, models.OrderPatch](mt.Coll, derived.NewOrders(NewMealPriceReader(mt.Coll)))
		_, err := repo.Create(context.Background(), &models.Order{
			Meals: []models.Reference{{ID: primitive.NewObjectID()}},
		})
		assert.ErrorIs(mt, err, derived.ErrUnresolvedReference)
	})
}

func TestMongoRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the updated document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Green Bowl"},
			{Key: "tags", Value: bson.A{"Vegan"}},
			{Key: "is_vegan", Value: true},
		}}))

		repo := NewMongoRepository[models.Meal, models.MealPatch](mt.Coll, derived.Meals{})
		tags := []models.Tag{models.TagVegan}
		patch := &models.MealPatch{Tags: &tags}
		got, err := repo.Update(context.Background(), id.Hex(), patch)
		require.NoError(mt, err)
		assert.True(mt, got.IsVegan)
		require.NotNil(mt, patch.IsVegan)
		assert.True(mt, *patch.IsVegan)
		assert.False(mt, *patch.IsVegetarian)
	})

	mt.Run("well formed but absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		name := "Luigi"
		_, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), &models.RestaurantPatch{Name: &name})
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("empty patch reads the current document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, restaurantDoc(id, "Luigi")))

		sync := &recordingSync{}
		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, sync)
		got, err := repo.Update(context.Background(), id.Hex(), &models.RestaurantPatch{})
		require.NoError(mt, err)
		assert.Equal(mt, "Luigi", got.Name)
		assert.Equal(mt, 1, sync.updated)
	})

	mt.Run("synchronizer failure aborts the write", func(mt *mtest.T) {
		sync := &recordingSync{err: errors.New("price lookup failed")}
		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, sync)
		name := "Luigi"
		_, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), &models.RestaurantPatch{Name: &name})
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the removed document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: restaurantDoc(id, "Luigi")}))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		got, err := repo.Delete(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id, got.ID)
	})

	mt.Run("well formed but absent", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		_, err := repo.Delete(context.Background(), "0123456789abcdef01234567")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewMongoRepository[models.Restaurant, models.RestaurantPatch](mt.Coll, &recordingSync{})
		_, err := repo.Delete(context.Background(), "0123456789abcdef0123456")
		assert.ErrorIs(mt, err, ErrInvalidID)
	})
}

func TestMealPriceReader(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicates collapse to one lookup", func(mt *mtest.T) {
		pizza := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: pizza}, {Key: "price", Value: 8.0}}))

		prices, err := NewMealPriceReader(mt.Coll).MealPrices(context.Background(), []primitive.ObjectID{pizza, pizza})
		require.NoError(mt, err)
		assert.Equal(mt, map[primitive.ObjectID]float64{pizza: 8}, prices)
	})

	mt.Run("no ids no query", func(mt *mtest.T) {
		prices, err := NewMealPriceReader(mt.Coll).MealPrices(context.Background(), nil)
		require.NoError(mt, err)
		assert.Empty(mt, prices)
	})
}
