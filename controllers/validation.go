package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"go-food-delivery/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterValidation("objectid", validObjectID)
	v.RegisterValidation("allergen", func(fl validator.FieldLevel) bool {
		return models.Allergen(fl.Field().String()).Valid()
	})
	v.RegisterValidation("tag", func(fl validator.FieldLevel) bool {
		return models.Tag(fl.Field().String()).Valid()
	})
	v.RegisterValidation("order_status", func(fl validator.FieldLevel) bool {
		return models.OrderStatus(fl.Field().String()).Valid()
	})
	return v
}

// validObjectID accepts a non-zero ObjectID or its hex form
func validObjectID(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case primitive.ObjectID:
		return !v.IsZero()
	case string:
		return primitive.IsValidObjectID(v)
	}
	return false
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
// The returned error is safe to show to the client.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := decode(r, dst); err != nil {
		return err
	}
	return check(dst)
}

func decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("Invalid input")
	}
	return nil
}

func check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.New("Invalid input")
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.SplitN(fe.Namespace(), ".", 2)
	name := fe.Field()
	if len(field) == 2 {
		name = field[1]
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "objectid":
		return name + " must be a valid id"
	case "allergen", "tag", "order_status":
		return fmt.Sprintf("%s has unknown value %v", name, fe.Value())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	}
	return fmt.Sprintf("%s failed %s", name, fe.Tag())
}
