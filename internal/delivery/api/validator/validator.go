// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	"spoolmeter/internal/errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failed rule, keyed by the JSON field name.
type FieldError struct {
	Field  string `json:"field"`
	Detail string `json:"detail"`
}

// ValidationError is returned by Validate when a request body breaks a rule.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Detail)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator implements echo.Validator. A single instance caches struct parsing.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator that reports JSON field names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: v}
}

// Validate checks i against its `validate` tags.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "validate")
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, FieldError{
			Field:  fe.Field(),
			Detail: describe(fe),
		})
	}

	return &ValidationError{Fields: fields}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "url":
		return "must be a URL"
	case "uuid":
		return "must be a UUID"
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}
