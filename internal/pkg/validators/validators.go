package validators

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateInstance *validator.Validate
	validateOnce     sync.Once
)

// Get returns the shared validator with the custom validations registered.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		if err := v.RegisterValidation("money", MoneyValidation); err != nil {
			panic(fmt.Sprintf("failed to register money validator: %v", err))
		}
		if err := v.RegisterValidation("nohtml", NoHTMLValidation); err != nil {
			panic(fmt.Sprintf("failed to register nohtml validator: %v", err))
		}
		validateInstance = v
	})
	return validateInstance
}

// ValidateStruct validates s and flattens validation errors into a single error.
func ValidateStruct(s any) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}
