// Package repositories is the persistence layer: one generic CRUD repository
// per collection, the filter builders that turn listing queries into store
// predicates, and the sort and projection options shared by every listing.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound means the id was well formed but matched no document
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID means the id is not a 24 character hex string
	ErrInvalidID = errors.New("invalid document id")
	// ErrDuplicate means a unique index rejected the write
	ErrDuplicate = errors.New("duplicate document")
)

// Synchronizer recomputes derived fields before a document or a patch is
// written. Returning an error aborts the write.
type Synchronizer[T any, P any] interface {
	BeforeCreate(ctx context.Context, doc *T) error
	BeforeUpdate(ctx context.Context, patch *P) error
}

// Repository is the data access contract of one collection of T documents
// updated through partial P patches
type Repository[T any, P any] interface {
	FindAll(ctx context.Context, opts QueryOptions) ([]T, error)
	Find(ctx context.Context, filter bson.M, opts QueryOptions) ([]T, error)
	FindByID(ctx context.Context, id string, fields string) (*T, error)
	Create(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, id string, patch *P) (*T, error)
	Delete(ctx context.Context, id string) (*T, error)
}

// MongoRepository implements Repository on a MongoDB collection
type MongoRepository[T any, P any] struct {
	collection *mongo.Collection
	sync       Synchronizer[T, P]
}

// NewMongoRepository creates a repository running sync on every write
func NewMongoRepository[T any, P any](collection *mongo.Collection, sync Synchronizer[T, P]) *MongoRepository[T, P] {
	return &MongoRepository[T, P]{
		collection: collection,
		sync:       sync,
	}
}

// FindAll returns every document of the collection
func (r *MongoRepository[T, P]) FindAll(ctx context.Context, opts QueryOptions) ([]T, error) {
	return r.Find(ctx, bson.M{}, opts)
}

// Find returns the documents matching filter
func (r *MongoRepository[T, P]) Find(ctx context.Context, filter bson.M, opts QueryOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.collection.Find(ctx, filter, opts.findOptions())
	if err != nil {
		return nil, fmt.Errorf("finding %s: %w", r.collection.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", r.collection.Name(), err)
	}
	return docs, nil
}

// FindByID returns the document with the given hex id, projected to fields
func (r *MongoRepository[T, P]) FindByID(ctx context.Context, id string, fields string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	opts := options.FindOne()
	if projection := parseProjection(fields); len(projection) > 0 {
		opts.SetProjection(projection)
	}
	return r.findOne(ctx, bson.M{"_id": oid}, opts)
}

// Create synchronizes doc, inserts it and returns the stored document
func (r *MongoRepository[T, P]) Create(ctx context.Context, doc *T) (*T, error) {
	if err := r.sync.BeforeCreate(ctx, doc); err != nil {
		return nil, err
	}
	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("inserting into %s: %w", r.collection.Name(), ErrDuplicate)
		}
		return nil, fmt.Errorf("inserting into %s: %w", r.collection.Name(), err)
	}
	return r.findOne(ctx, bson.M{"_id": result.InsertedID}, options.FindOne())
}

// Update synchronizes patch, applies its non-nil fields and returns the
// updated document
func (r *MongoRepository[T, P]) Update(ctx context.Context, id string, patch *P) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	if patch == nil {
		patch = new(P)
	}
	if err := r.sync.BeforeUpdate(ctx, patch); err != nil {
		return nil, err
	}

	set, err := bson.Marshal(patch)
	if err != nil {
		return nil, fmt.Errorf("encoding %s patch: %w", r.collection.Name(), err)
	}
	// an empty $set is rejected by the server
	if elems, _ := bson.Raw(set).Elements(); len(elems) == 0 {
		return r.findOne(ctx, bson.M{"_id": oid}, options.FindOne())
	}

	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.Raw(set)}, opts).Decode(&doc)
	if err != nil {
		return nil, r.translate("updating", err)
	}
	return &doc, nil
}

// Delete removes the document and returns its last state
func (r *MongoRepository[T, P]) Delete(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var doc T
	if err := r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, r.translate("deleting", err)
	}
	return &doc, nil
}

func (r *MongoRepository[T, P]) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*T, error) {
	var doc T
	if err := r.collection.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		return nil, r.translate("finding", err)
	}
	return &doc, nil
}

func (r *MongoRepository[T, P]) translate(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w", op, r.collection.Name(), ErrDuplicate)
	}
	return fmt.Errorf("%s %s: %w", op, r.collection.Name(), err)
}

// ParseID converts a hex string into an ObjectID
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
