package derived

import (
	"context"
	"fmt"
	"math"
	"time"

	"go-food-delivery/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceLookup resolves the current price of each meal id it can find.
// Ids that do not resolve are simply missing from the result.
type PriceLookup interface {
	MealPrices(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]float64, error)
}

// Orders recomputes the total price from the referenced meals and keeps the
// status consistent with the delivered flag
type Orders struct {
	Prices PriceLookup
	Now    func() time.Time
}

// NewOrders returns an Orders synchronizer using the wall clock
func NewOrders(prices PriceLookup) *Orders {
	return &Orders{Prices: prices, Now: time.Now}
}

func (s *Orders) BeforeCreate(ctx context.Context, o *models.Order) error {
	meals, total, err := s.resolve(ctx, o.Meals)
	if err != nil {
		return err
	}
	o.Meals = meals
	o.TotalPrice = total
	o.OrderTime = s.Now().UTC()
	o.User = UserRef(o.User.ID)
	if o.Status == "" {
		o.Status = models.StatusInProgress
	}
	if o.IsDelivered {
		o.Status = models.StatusDelivered
	}
	return nil
}

func (s *Orders) BeforeUpdate(ctx context.Context, p *models.OrderPatch) error {
	p.TotalPrice = nil
	if p.Meals != nil {
		meals, total, err := s.resolve(ctx, *p.Meals)
		if err != nil {
			return err
		}
		p.Meals = &meals
		p.TotalPrice = &total
	}
	if p.User != nil {
		ref := UserRef(p.User.ID)
		p.User = &ref
	}
	if p.IsDelivered != nil && *p.IsDelivered {
		delivered := models.StatusDelivered
		p.Status = &delivered
	}
	return nil
}

// resolve normalizes the meal references and sums their prices; a meal
// listed twice is paid twice
func (s *Orders) resolve(ctx context.Context, refs []models.Reference) ([]models.Reference, float64, error) {
	if len(refs) == 0 {
		return []models.Reference{}, 0, nil
	}
	ids := make([]primitive.ObjectID, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	prices, err := s.Prices.MealPrices(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("looking up meal prices: %w", err)
	}

	out := make([]models.Reference, 0, len(refs))
	total := 0.0
	for _, id := range ids {
		price, ok := prices[id]
		if !ok {
			return nil, 0, fmt.Errorf("%w: meal %s", ErrUnresolvedReference, id.Hex())
		}
		total += price
		out = append(out, MealRef(id))
	}
	return out, math.Round(total*100) / 100, nil
}
