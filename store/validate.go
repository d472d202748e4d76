package store

import (
	"errors"
	"reflect"
	"strings"

	"restaurant-orders/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// dates validate as their YYYY-MM-DD text, so the zero date is "empty"
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok {
			return d.String()
		}
		return nil
	}, models.Date{})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateEntity checks the model's validate tags and reports the first
// violation as a ValidationError
func validateEntity(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Entity: entity, Field: "-", Reason: err.Error()}
	}
	fe := fieldErrs[0]
	return &ValidationError{Entity: entity, Field: fe.Field(), Reason: reason(fe)}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "gte":
		return "must be at least " + fe.Param()
	}
	return "failed " + fe.Tag() + " check"
}
