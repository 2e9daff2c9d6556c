package controllers

import (
	"context"
	"net/http"
	"time"

	"go-food-delivery/repositories"

	"github.com/gorilla/mux"
)

// Service is what a resource controller needs from an entity service
type Service[T any, P any, Q any] interface {
	Get(ctx context.Context, q Q, opts repositories.QueryOptions) ([]T, error)
	GetByID(ctx context.Context, id string, fields string) (*T, error)
	Create(ctx context.Context, doc *T) (*T, error)
	Update(ctx context.Context, id string, patch *P) (*T, error)
	Delete(ctx context.Context, id string) (*T, error)
}

// resource serves the five CRUD endpoints of one collection
type resource[T any, P any, Q any] struct {
	svc     Service[T, P, Q]
	parse   func(*queryParser) Q
	timeout time.Duration
}

func (rc *resource[T, P, Q]) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), rc.timeout)
}

// List handles GET on the collection
func (rc *resource[T, P, Q]) List(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r.URL.Query())
	q := rc.parse(p)
	if p.err != nil {
		sendBadRequest(w, p.err.Error())
		return
	}
	rc.list(w, r, q, p.options())
}

func (rc *resource[T, P, Q]) list(w http.ResponseWriter, r *http.Request, q Q, opts repositories.QueryOptions) {
	ctx, cancel := rc.withTimeout(r)
	defer cancel()

	docs, err := rc.svc.Get(ctx, q, opts)
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusOK, docs)
}

// Get handles GET on one document; ?fields= projects it
func (rc *resource[T, P, Q]) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := rc.withTimeout(r)
	defer cancel()

	doc, err := rc.svc.GetByID(ctx, mux.Vars(r)["id"], r.URL.Query().Get("fields"))
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusOK, doc)
}

// Create handles POST on the collection
func (rc *resource[T, P, Q]) Create(w http.ResponseWriter, r *http.Request) {
	doc := new(T)
	if err := decodeAndValidate(r, doc); err != nil {
		sendBadRequest(w, err.Error())
		return
	}
	rc.create(w, r, doc)
}

func (rc *resource[T, P, Q]) create(w http.ResponseWriter, r *http.Request, doc *T) {
	ctx, cancel := rc.withTimeout(r)
	defer cancel()

	created, err := rc.svc.Create(ctx, doc)
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusCreated, created)
}

// Update handles PATCH on one document
func (rc *resource[T, P, Q]) Update(w http.ResponseWriter, r *http.Request) {
	patch := new(P)
	if err := decodeAndValidate(r, patch); err != nil {
		sendBadRequest(w, err.Error())
		return
	}
	rc.update(w, r, patch)
}

func (rc *resource[T, P, Q]) update(w http.ResponseWriter, r *http.Request, patch *P) {
	ctx, cancel := rc.withTimeout(r)
	defer cancel()

	updated, err := rc.svc.Update(ctx, mux.Vars(r)["id"], patch)
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusOK, updated)
}

// Delete handles DELETE on one document and answers with its last state
func (rc *resource[T, P, Q]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := rc.withTimeout(r)
	defer cancel()

	deleted, err := rc.svc.Delete(ctx, mux.Vars(r)["id"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendSuccess(w, http.StatusOK, deleted)
}
