package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
)

// Validator checks a Config against its validate tags and reports failures
// under the keys used in config.yaml (market.produced_order, not ProducedOrder)
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that names fields by their mapstructure
// key and knows the default_order rule
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	// default_order accepts the orders a default market may use; manual markets
	// need an explicit price, so they cannot be a default
	_ = v.RegisterValidation("default_order", func(fl validator.FieldLevel) bool {
		order, err := market.ParseOrder(fl.Field().String())
		return err == nil && order != market.OrderManual
	})

	return &Validator{validate: v}
}

// Validate validates a struct using validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

func (v *Validator) formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s %s", configKey(e), describe(e)))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// configKey strips the root struct name from the namespace
func configKey(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "required_if":
		if parts := strings.Fields(e.Param()); len(parts) == 2 {
			return fmt.Sprintf("is required when %s is %s", parts[0], parts[1])
		}
		return fmt.Sprintf("is required when %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", e.Param(), fmt.Sprint(e.Value()))
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", e.Param(), e.Value())
	case "default_order":
		return fmt.Sprintf("must be sell or buy, got %q", fmt.Sprint(e.Value()))
	default:
		return fmt.Sprintf("failed %s validation (value: %v)", e.Tag(), e.Value())
	}
}

// ValidateConfig validates the entire configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
