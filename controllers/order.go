package controllers

import (
	"net/http"
	"time"

	"go-food-delivery/middleware"
	"go-food-delivery/models"
	"go-food-delivery/utils"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderService is the order half of the services layer
type OrderService = Service[models.Order, models.OrderPatch, models.OrderQuery]

// OrderController handles order requests. Admins see every order; other
// users only see and change their own.
type OrderController struct {
	*resource[models.Order, models.OrderPatch, models.OrderQuery]
}

// NewOrderController creates an OrderController
func NewOrderController(svc OrderService, timeout time.Duration) *OrderController {
	return &OrderController{&resource[models.Order, models.OrderPatch, models.OrderQuery]{
		svc:     svc,
		parse:   parseOrderQuery,
		timeout: timeout,
	}}
}

// List returns the orders matching the query, limited to the caller's own
func (oc *OrderController) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		sendUnauthorized(w, "Unauthorized")
		return
	}
	p := newQueryParser(r.URL.Query())
	q := parseOrderQuery(p)
	if p.err != nil {
		sendBadRequest(w, p.err.Error())
		return
	}
	if !claims.IsAdmin {
		q.UserID = &claims.UserID
	}
	oc.list(w, r, q, p.options())
}

// Create places an order for the caller
func (oc *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		sendUnauthorized(w, "Unauthorized")
		return
	}
	var order models.Order
	if err := decode(r, &order); err != nil {
		sendBadRequest(w, err.Error())
		return
	}
	if !claims.IsAdmin || order.User.ID.IsZero() {
		callerID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			sendUnauthorized(w, "Invalid token")
			return
		}
		order.User = models.Reference{ID: callerID}
	}
	if err := check(&order); err != nil {
		sendBadRequest(w, err.Error())
		return
	}
	oc.create(w, r, &order)
}

// Get returns one order
func (oc *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	if !oc.authorize(w, r) {
		return
	}
	oc.resource.Get(w, r)
}

// Update patches one order. Only admins may move an order to another user.
func (oc *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	if !oc.authorize(w, r) {
		return
	}
	var patch models.OrderPatch
	if err := decodeAndValidate(r, &patch); err != nil {
		sendBadRequest(w, err.Error())
		return
	}
	if claims, _ := middleware.ClaimsFrom(r.Context()); !claims.IsAdmin {
		patch.User = nil
	}
	oc.update(w, r, &patch)
}

// Delete removes one order
func (oc *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	if !oc.authorize(w, r) {
		return
	}
	oc.resource.Delete(w, r)
}

// authorize lets admins through and checks ownership for everyone else.
// Orders of other users are reported as missing.
func (oc *OrderController) authorize(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		sendUnauthorized(w, "Unauthorized")
		return false
	}
	if claims.IsAdmin {
		return true
	}

	ctx, cancel := oc.withTimeout(r)
	defer cancel()
	order, err := oc.svc.GetByID(ctx, mux.Vars(r)["id"], "user")
	if err != nil {
		sendError(w, err)
		return false
	}
	if !owns(claims, order) {
		sendNotFound(w, "order not found")
		return false
	}
	return true
}

func owns(claims *utils.Claims, order *models.Order) bool {
	return order.User.ID.Hex() == claims.UserID
}
