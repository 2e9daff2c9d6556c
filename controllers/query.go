package controllers

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go-food-delivery/models"
	"go-food-delivery/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// queryParser reads typed filter values from a query string and remembers
// the first malformed one
type queryParser struct {
	values url.Values
	err    error
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) fail(key, want string) {
	if p.err == nil {
		p.err = fmt.Errorf("query parameter %s must be %s", key, want)
	}
}

func (p *queryParser) raw(key string) (string, bool) {
	if !p.values.Has(key) {
		return "", false
	}
	return strings.TrimSpace(p.values.Get(key)), true
}

func (p *queryParser) string(key string) *string {
	v, ok := p.raw(key)
	if !ok || v == "" {
		return nil
	}
	return &v
}

func (p *queryParser) float(key string) *float64 {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, "a number")
		return nil
	}
	return &f
}

func (p *queryParser) int(key string) *int {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, "an integer")
		return nil
	}
	return &n
}

func (p *queryParser) bool(key string) *bool {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, "true or false")
		return nil
	}
	return &b
}

// list splits a comma separated value, dropping blank entries
func (p *queryParser) list(key string) []string {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// time accepts RFC 3339 timestamps and plain dates
func (p *queryParser) time(key string) *time.Time {
	v, ok := p.raw(key)
	if !ok {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}
	p.fail(key, "a date or RFC 3339 timestamp")
	return nil
}

func (p *queryParser) id(key string) *string {
	v := p.string(key)
	if v != nil && !primitive.IsValidObjectID(*v) {
		p.fail(key, "a valid id")
		return nil
	}
	return v
}

func (p *queryParser) ids(key string) []string {
	items := p.list(key)
	for _, item := range items {
		if !primitive.IsValidObjectID(item) {
			p.fail(key, "a list of valid ids")
			return nil
		}
	}
	return items
}

func (p *queryParser) allergens(key string) []models.Allergen {
	var out []models.Allergen
	for _, item := range p.list(key) {
		a := models.Allergen(item)
		if !a.Valid() {
			p.fail(key, "a list of known allergens")
			return nil
		}
		out = append(out, a)
	}
	return out
}

func (p *queryParser) tags(key string) []models.Tag {
	var out []models.Tag
	for _, item := range p.list(key) {
		t := models.Tag(item)
		if !t.Valid() {
			p.fail(key, "a list of known tags")
			return nil
		}
		out = append(out, t)
	}
	return out
}

func (p *queryParser) status(key string) *models.OrderStatus {
	v := p.string(key)
	if v == nil {
		return nil
	}
	s := models.OrderStatus(*v)
	if !s.Valid() {
		p.fail(key, "one of in progress, in delivery, delivered")
		return nil
	}
	return &s
}

func (p *queryParser) provider(key string) *models.Provider {
	v := p.string(key)
	if v == nil {
		return nil
	}
	pr := models.Provider(*v)
	if !pr.Valid() {
		p.fail(key, "one of email, google, facebook")
		return nil
	}
	return &pr
}

// options reads the sort and projection every listing accepts
func (p *queryParser) options() repositories.QueryOptions {
	return repositories.QueryOptions{
		Sort:   p.values.Get("sort"),
		Fields: p.values.Get("fields"),
	}
}

func parseMealQuery(p *queryParser) models.MealQuery {
	return models.MealQuery{
		Name:               p.string("name"),
		MinPrice:           p.float("min_price"),
		MaxPrice:           p.float("max_price"),
		MinRating:          p.int("min_rating"),
		MaxCalories:        p.int("max_calories"),
		IsVegetarian:       p.bool("is_vegetarian"),
		IsVegan:            p.bool("is_vegan"),
		RestaurantID:       p.id("restaurant"),
		WithoutAllergenics: p.allergens("without_allergenics"),
		Tags:               p.tags("tags"),
	}
}

func parseRestaurantQuery(p *queryParser) models.RestaurantQuery {
	return models.RestaurantQuery{
		Name:       p.string("name"),
		Address:    p.string("address"),
		PostalCode: p.string("postal_code"),
		MinRating:  p.int("min_rating"),
	}
}

func parseOrderQuery(p *queryParser) models.OrderQuery {
	return models.OrderQuery{
		Address:     p.string("address"),
		PostalCode:  p.string("postal_code"),
		UserID:      p.id("user"),
		MealIDs:     p.ids("meals"),
		MinPrice:    p.float("min_price"),
		MaxPrice:    p.float("max_price"),
		IsPaid:      p.bool("is_paid"),
		IsDelivered: p.bool("is_delivered"),
		Status:      p.status("status"),
		Before:      p.time("before"),
		After:       p.time("after"),
	}
}

func parseUserQuery(p *queryParser) models.UserQuery {
	return models.UserQuery{
		FirstName:  p.string("first_name"),
		LastName:   p.string("last_name"),
		Email:      p.string("email"),
		Provider:   p.provider("provider"),
		ProviderID: p.string("provider_id"),
		IsVerified: p.bool("is_verified"),
		IsAdmin:    p.bool("is_admin"),
	}
}
