package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/payroll_app/internal/apperrors"
)

// Money is an amount in one of the supported currencies.
// Amounts may be negative (corrections); they are never rounded here.
type Money struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// NewMoney validates the currency and the amount before building a Money value.
func NewMoney(amount float64, currency Currency) (Money, error) {
	if !currency.IsValid() {
		return Money{}, fmt.Errorf("%w: '%s'", apperrors.ErrUnknownCurrency, currency)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, fmt.Errorf("%w: amount must be a finite number", apperrors.ErrValidation)
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// Zero returns a zero amount in currency.
func Zero(currency Currency) Money {
	return Money{Currency: currency}
}
