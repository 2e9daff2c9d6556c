package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func TestHealthHandler(t *testing.T) {
	up := healthHandler(func(context.Context, *readpref.ReadPref) error { return nil })
	rec := httptest.NewRecorder()
	up(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	down := healthHandler(func(context.Context, *readpref.ReadPref) error { return errors.New("no primary") })
	rec = httptest.NewRecorder()
	down(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
