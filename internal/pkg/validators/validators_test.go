//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountHolder struct {
	Label  string          `validate:"required"`
	Amount decimal.Decimal `validate:"money"`
}

func TestMoneyValidation(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		shouldErr bool
	}{
		{"zero", "0", false},
		{"two decimals", "19.99", false},
		{"negative", "-5.50", false},
		{"largest", "99999999.99", false},
		{"too many decimals", "1.999", true},
		{"too large", "100000000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&amountHolder{Label: "x", Amount: decimal.RequireFromString(tt.amount)})
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Amount")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateStruct_FlattensMessages(t *testing.T) {
	err := ValidateStruct(&amountHolder{Amount: decimal.Zero})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Label, Tag: required")
}

func TestGet_ReturnsSingleton(t *testing.T) {
	assert.Same(t, Get(), Get())
}

type labelHolder struct {
	Label string `validate:"required,nohtml"`
}

func TestNoHTMLValidation(t *testing.T) {
	tests := []struct {
		label     string
		shouldErr bool
	}{
		{"Visa", false},
		{"Home & Garden", false},
		{"O'Reilly \"Books\"", false},
		{"2 < 3", false},
		{"<b>Visa</b>", true},
		{"<script>alert(1)</script>", true},
		{"Cash<img src=x onerror=alert(1)>", true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			err := ValidateStruct(&labelHolder{Label: tt.label})
			if tt.shouldErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Tag: nohtml")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
