package derived

import (
	"context"
	"slices"

	"go-food-delivery/models"
)

// Meals derives the dietary flags from tags and the restaurant href from its id
type Meals struct{}

func (Meals) BeforeCreate(_ context.Context, m *models.Meal) error {
	m.IsVegetarian, m.IsVegan = dietFlags(m.Tags)
	m.Restaurant = RestaurantRef(m.Restaurant.ID)
	return nil
}

// BeforeUpdate recomputes the flags only when the patch carries tags
func (Meals) BeforeUpdate(_ context.Context, p *models.MealPatch) error {
	p.IsVegetarian, p.IsVegan = nil, nil
	if p.Tags != nil {
		veg, vegan := dietFlags(*p.Tags)
		p.IsVegetarian, p.IsVegan = &veg, &vegan
	}
	if p.Restaurant != nil {
		ref := RestaurantRef(p.Restaurant.ID)
		p.Restaurant = &ref
	}
	return nil
}

func dietFlags(tags []models.Tag) (vegetarian, vegan bool) {
	return slices.Contains(tags, models.TagVegetarian), slices.Contains(tags, models.TagVegan)
}
