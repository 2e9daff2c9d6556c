// Package controllers adapts the services to HTTP: it decodes and validates
// requests, calls a service and maps the outcome to a status code.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-food-delivery/services"
)

// errorBody is what every failed request receives
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
}

func sendSuccess(w http.ResponseWriter, status int, payload interface{}) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// sendError maps a service error onto its status. Internal faults keep
// their cause out of the response.
func sendError(w http.ResponseWriter, err error) {
	kind := services.KindOf(err)
	message := "Internal server error"
	var svcErr *services.Error
	if errors.As(err, &svcErr) && kind != services.KindInternal {
		message = svcErr.Message
	}
	writeError(w, statusOf(kind), kind.String(), message)
}

// sendBadRequest rejects a request before it reaches a service
func sendBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, services.KindValidation.String(), message)
}

func sendUnauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, services.KindUnauthorized.String(), message)
}

func sendNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, services.KindNotFound.String(), message)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Message: message, Code: code, Status: status})
}

func statusOf(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	case services.KindValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
