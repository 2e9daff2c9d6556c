package services

import (
	"go-food-delivery/models"
	"go-food-delivery/repositories"

	"github.com/sirupsen/logrus"
)

// OrderService manages orders. Total price and delivered status are kept
// by the repository's synchronizer, so the service adds no rules of its own;
// a meal that fails to resolve surfaces as an internal fault.
type OrderService struct {
	*crud[models.Order, models.OrderPatch, models.OrderQuery]
}

// NewOrderService creates an OrderService
func NewOrderService(repo repositories.OrderRepository, log *logrus.Logger) *OrderService {
	return &OrderService{crud: newCrud("order", repo, repositories.OrderFilter, log)}
}
