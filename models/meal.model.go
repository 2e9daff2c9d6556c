package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Allergen is one of the declarable meal allergenics
type Allergen string

const (
	AllergenGluten      Allergen = "Gluten"
	AllergenCrustaceans Allergen = "Crustaceans"
	AllergenEggs        Allergen = "Eggs"
	AllergenFish        Allergen = "Fish"
	AllergenPeanuts     Allergen = "Peanuts"
	AllergenSoybeans    Allergen = "Soybeans"
	AllergenMilk        Allergen = "Milk"
	AllergenNuts        Allergen = "Nuts"
	AllergenCelery      Allergen = "Celery"
	AllergenMustard     Allergen = "Mustard"
	AllergenSesame      Allergen = "Sesame"
	AllergenSulphites   Allergen = "Sulphites"
	AllergenLupin       Allergen = "Lupin"
	AllergenMolluscs    Allergen = "Molluscs"
)

var allergens = map[Allergen]bool{
	AllergenGluten: true, AllergenCrustaceans: true, AllergenEggs: true,
	AllergenFish: true, AllergenPeanuts: true, AllergenSoybeans: true,
	AllergenMilk: true, AllergenNuts: true, AllergenCelery: true,
	AllergenMustard: true, AllergenSesame: true, AllergenSulphites: true,
	AllergenLupin: true, AllergenMolluscs: true,
}

// Valid reports whether a is a known allergen
func (a Allergen) Valid() bool { return allergens[a] }

// Tag classifies a meal
type Tag string

const (
	TagVegetarian Tag = "Vegetarian"
	TagVegan      Tag = "Vegan"
	TagPizza      Tag = "Pizza"
	TagBurger     Tag = "Burger"
	TagPasta      Tag = "Pasta"
	TagSalad      Tag = "Salad"
	TagSushi      Tag = "Sushi"
	TagDessert    Tag = "Dessert"
	TagSpicy      Tag = "Spicy"
	TagGlutenFree Tag = "Gluten free"
)

var tags = map[Tag]bool{
	TagVegetarian: true, TagVegan: true, TagPizza: true, TagBurger: true,
	TagPasta: true, TagSalad: true, TagSushi: true, TagDessert: true,
	TagSpicy: true, TagGlutenFree: true,
}

// Valid reports whether t is a known tag
func (t Tag) Valid() bool { return tags[t] }

// Meal represents a dish offered by a restaurant.
// IsVegetarian and IsVegan mirror Tags and are never taken from the client.
type Meal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Price        float64            `bson:"price" json:"price" validate:"gte=0,lte=50"`
	IsVegetarian bool               `bson:"is_vegetarian" json:"is_vegetarian"`
	IsVegan      bool               `bson:"is_vegan" json:"is_vegan"`
	Rating       int                `bson:"rating" json:"rating" validate:"gte=0,lte=10"`
	Calories     int                `bson:"calories" json:"calories" validate:"gte=0,lte=2000"`
	Restaurant   Reference          `bson:"restaurant" json:"restaurant"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty" validate:"max=500"`
	Allergenics  []Allergen         `bson:"allergenics" json:"allergenics" validate:"dive,allergen"`
	Tags         []Tag              `bson:"tags" json:"tags" validate:"dive,tag"`
}

// MealPatch is a partial meal update; nil fields are left untouched
type MealPatch struct {
	Name         *string     `bson:"name,omitempty" json:"name" validate:"omitempty,min=2,max=100"`
	Price        *float64    `bson:"price,omitempty" json:"price" validate:"omitempty,gte=0,lte=50"`
	IsVegetarian *bool       `bson:"is_vegetarian,omitempty" json:"-"`
	IsVegan      *bool       `bson:"is_vegan,omitempty" json:"-"`
	Rating       *int        `bson:"rating,omitempty" json:"rating" validate:"omitempty,gte=0,lte=10"`
	Calories     *int        `bson:"calories,omitempty" json:"calories" validate:"omitempty,gte=0,lte=2000"`
	Restaurant   *Reference  `bson:"restaurant,omitempty" json:"restaurant"`
	Description  *string     `bson:"description,omitempty" json:"description" validate:"omitempty,max=500"`
	Allergenics  *[]Allergen `bson:"allergenics,omitempty" json:"allergenics" validate:"omitempty,dive,allergen"`
	Tags         *[]Tag      `bson:"tags,omitempty" json:"tags" validate:"omitempty,dive,tag"`
}
