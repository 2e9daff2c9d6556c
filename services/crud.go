package services

import (
	"context"
	"errors"

	"go-food-delivery/repositories"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// Query is a listing filter record
type Query interface {
	Empty() bool
}

// crud is the part every entity service shares: the six repository
// operations with their failures translated into service errors
type crud[T any, P any, Q Query] struct {
	entity string
	repo   repositories.Repository[T, P]
	filter func(Q) (bson.M, error)
	log    *logrus.Entry
}

func newCrud[T any, P any, Q Query](entity string, repo repositories.Repository[T, P], filter func(Q) (bson.M, error), log *logrus.Logger) *crud[T, P, Q] {
	return &crud[T, P, Q]{
		entity: entity,
		repo:   repo,
		filter: filter,
		log:    log.WithField("component", entity+"_service"),
	}
}

// GetAll lists every document
func (c *crud[T, P, Q]) GetAll(ctx context.Context, opts repositories.QueryOptions) ([]T, error) {
	docs, err := c.repo.FindAll(ctx, opts)
	if err != nil {
		return nil, c.translate("list", err)
	}
	return docs, nil
}

// Get lists the documents matching q, or every document when q sets nothing
func (c *crud[T, P, Q]) Get(ctx context.Context, q Q, opts repositories.QueryOptions) ([]T, error) {
	if q.Empty() {
		return c.GetAll(ctx, opts)
	}
	filter, err := c.filter(q)
	if err != nil {
		return nil, c.translate("filter", err)
	}
	docs, err := c.repo.Find(ctx, filter, opts)
	if err != nil {
		return nil, c.translate("filter", err)
	}
	return docs, nil
}

// GetByID returns one document
func (c *crud[T, P, Q]) GetByID(ctx context.Context, id string, fields string) (*T, error) {
	doc, err := c.repo.FindByID(ctx, id, fields)
	if err != nil {
		return nil, c.translate("get", err)
	}
	return doc, nil
}

// Create stores a new document
func (c *crud[T, P, Q]) Create(ctx context.Context, doc *T) (*T, error) {
	created, err := c.repo.Create(ctx, doc)
	if err != nil {
		return nil, c.translate("create", err)
	}
	return created, nil
}

// Update applies a partial patch
func (c *crud[T, P, Q]) Update(ctx context.Context, id string, patch *P) (*T, error) {
	updated, err := c.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, c.translate("update", err)
	}
	return updated, nil
}

// Delete removes a document and returns its last state
func (c *crud[T, P, Q]) Delete(ctx context.Context, id string) (*T, error) {
	deleted, err := c.repo.Delete(ctx, id)
	if err != nil {
		return nil, c.translate("delete", err)
	}
	return deleted, nil
}

// translate maps repository errors onto service kinds. Anything unexpected
// is logged here and reported as internal.
func (c *crud[T, P, Q]) translate(op string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return newError(KindNotFound, c.entity+" not found", err)
	case errors.Is(err, repositories.ErrInvalidID):
		return newError(KindValidation, "invalid "+c.entity+" id", err)
	case errors.Is(err, repositories.ErrDuplicate):
		return newError(KindValidation, c.entity+" already exists", err)
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr
	}
	c.log.WithError(err).WithField("op", op).Error("repository failure")
	return newError(KindInternal, "could not "+op+" "+c.entity, err)
}
