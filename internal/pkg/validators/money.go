package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Money column layout, matches decimal(10,2)
const (
	MoneyPrecision = 10
	MoneyScale     = 2
)

// MoneyValidation checks that a decimal amount fits a decimal(10,2) column.
func MoneyValidation(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}

	if !amount.Equal(amount.Round(MoneyScale)) {
		return false
	}

	limit := decimal.New(1, MoneyPrecision-MoneyScale)
	return amount.Abs().LessThan(limit)
}
