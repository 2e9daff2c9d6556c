package services

import (
	"context"
	"io"

	"go-food-delivery/repositories"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// stubRepo answers with the funcs a test sets; unset operations panic
type stubRepo[T any, P any] struct {
	findAll  func(opts repositories.QueryOptions) ([]T, error)
	find     func(filter bson.M, opts repositories.QueryOptions) ([]T, error)
	findByID func(id string) (*T, error)
	create   func(doc *T) (*T, error)
	update   func(id string, patch *P) (*T, error)
	delete   func(id string) (*T, error)

	updates int
}

func (r *stubRepo[T, P]) FindAll(_ context.Context, opts repositories.QueryOptions) ([]T, error) {
	return r.findAll(opts)
}

func (r *stubRepo[T, P]) Find(_ context.Context, filter bson.M, opts repositories.QueryOptions) ([]T, error) {
	return r.find(filter, opts)
}

func (r *stubRepo[T, P]) FindByID(_ context.Context, id string, _ string) (*T, error) {
	return r.findByID(id)
}

func (r *stubRepo[T, P]) Create(_ context.Context, doc *T) (*T, error) {
	return r.create(doc)
}

func (r *stubRepo[T, P]) Update(_ context.Context, id string, patch *P) (*T, error) {
	r.updates++
	return r.update(id, patch)
}

func (r *stubRepo[T, P]) Delete(_ context.Context, id string) (*T, error) {
	return r.delete(id)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
