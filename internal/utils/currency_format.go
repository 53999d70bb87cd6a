package utils

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for every currency.
const DisplayPrecision = 2

var (
	displayScale = decimal.New(1, DisplayPrecision)
	half         = decimal.NewFromFloat(0.5)
)

// RoundForDisplay rounds amount to two decimals, half up on the scaled value:
// 1.005 -> 1.01, -1.005 -> -1.00, -1.006 -> -1.01.
// It is applied only at presentation time; computations keep full precision.
func RoundForDisplay(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Mul(displayScale).Add(half).Floor().Div(displayScale)
}

// FormatAmount renders amount with exactly two decimals, e.g. 587.5 -> "587.50".
func FormatAmount(amount float64) string {
	return RoundForDisplay(amount).StringFixed(DisplayPrecision)
}

// FormatMoney renders amount followed by the currency code, e.g. "587.50 USD".
func FormatMoney(amount float64, currency domain.Currency) string {
	return FormatAmount(amount) + " " + currency.String()
}
