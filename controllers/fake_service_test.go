package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-food-delivery/middleware"
	"go-food-delivery/models"
	"go-food-delivery/repositories"
	"go-food-delivery/utils"

	"github.com/gorilla/mux"
)

// fakeService answers with the funcs a test sets; unset operations panic
type fakeService[T any, P any, Q any] struct {
	get     func(q Q, opts repositories.QueryOptions) ([]T, error)
	getByID func(id, fields string) (*T, error)
	create  func(doc *T) (*T, error)
	update  func(id string, patch *P) (*T, error)
	delete  func(id string) (*T, error)
}

func (f *fakeService[T, P, Q]) Get(_ context.Context, q Q, opts repositories.QueryOptions) ([]T, error) {
	return f.get(q, opts)
}

func (f *fakeService[T, P, Q]) GetByID(_ context.Context, id string, fields string) (*T, error) {
	return f.getByID(id, fields)
}

func (f *fakeService[T, P, Q]) Create(_ context.Context, doc *T) (*T, error) {
	return f.create(doc)
}

func (f *fakeService[T, P, Q]) Update(_ context.Context, id string, patch *P) (*T, error) {
	return f.update(id, patch)
}

func (f *fakeService[T, P, Q]) Delete(_ context.Context, id string) (*T, error) {
	return f.delete(id)
}

type fakeUsers struct {
	fakeService[models.User, models.UserPatch, models.UserQuery]
	verify   func(id, code string) (bool, error)
	sendCode func(id string) error
	login    func(email, password string) (*models.User, error)
}

func (f *fakeUsers) Verify(_ context.Context, id, code string) (bool, error) {
	return f.verify(id, code)
}

func (f *fakeUsers) SendVerification(_ context.Context, id string) error {
	return f.sendCode(id)
}

func (f *fakeUsers) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	return f.login(email, password)
}

const testTimeout = time.Second

// newRequest builds a request with optional body, path id and caller
func newRequest(t *testing.T, method, target, body string, id string, claims *utils.Claims) *http.Request {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if id != "" {
		req = mux.SetURLVars(req, map[string]string{"id": id})
	}
	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserContextKey, claims))
	}
	return req
}
