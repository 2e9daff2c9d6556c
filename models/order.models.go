package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the delivery progress of an order
type OrderStatus string

const (
	StatusInProgress OrderStatus = "in progress"
	StatusInDelivery OrderStatus = "in delivery"
	StatusDelivered  OrderStatus = "delivered"
)

// Valid reports whether s is a known status
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusInProgress, StatusInDelivery, StatusDelivered:
		return true
	}
	return false
}

// Order represents a user's order.
// TotalPrice is the sum of the referenced meals' prices and OrderTime is
// stamped on insert; neither is accepted from the client.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Address      string             `bson:"address" json:"address" validate:"required,max=200"`
	PostalCode   string             `bson:"postal_code" json:"postal_code" validate:"required,max=10"`
	User         Reference          `bson:"user" json:"user"`
	Meals        []Reference        `bson:"meals" json:"meals" validate:"required,min=1,dive"`
	TotalPrice   float64            `bson:"total_price" json:"total_price"`
	OrderTime    time.Time          `bson:"order_time" json:"order_time"`
	DeliveryTime *time.Time         `bson:"delivery_time,omitempty" json:"delivery_time,omitempty"`
	IsPaid       bool               `bson:"is_paid" json:"is_paid"`
	IsDelivered  bool               `bson:"is_delivered" json:"is_delivered"`
	Status       OrderStatus        `bson:"status" json:"status" validate:"omitempty,order_status"`
}

// OrderPatch is a partial order update; OrderTime is immutable and absent
type OrderPatch struct {
	Address      *string      `bson:"address,omitempty" json:"address" validate:"omitempty,max=200"`
	PostalCode   *string      `bson:"postal_code,omitempty" json:"postal_code" validate:"omitempty,max=10"`
	User         *Reference   `bson:"user,omitempty" json:"user"`
	Meals        *[]Reference `bson:"meals,omitempty" json:"meals" validate:"omitempty,min=1,dive"`
	TotalPrice   *float64     `bson:"total_price,omitempty" json:"-"`
	DeliveryTime *time.Time   `bson:"delivery_time,omitempty" json:"delivery_time"`
	IsPaid       *bool        `bson:"is_paid,omitempty" json:"is_paid"`
	IsDelivered  *bool        `bson:"is_delivered,omitempty" json:"is_delivered"`
	Status       *OrderStatus `bson:"status,omitempty" json:"status" validate:"omitempty,order_status"`
}
