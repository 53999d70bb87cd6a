package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/payroll_app/internal/apperrors"
)

// Currency is one of the fixed set of currencies the payroll is kept in.
type Currency string

const (
	UAH Currency = "UAH"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// supportedCurrencies is ordered; reports and rate tables iterate in this order.
var supportedCurrencies = []Currency{UAH, USD, EUR}

// CurrencyInfo describes a supported currency for display purposes.
type CurrencyInfo struct {
	CurrencyCode Currency `json:"currencyCode"` // e.g., "USD"
	Symbol       string   `json:"symbol"`       // e.g., "$"
	Name         string   `json:"name"`         // e.g., "US Dollar"
}

var currencyInfo = map[Currency]CurrencyInfo{
	UAH: {CurrencyCode: UAH, Symbol: "₴", Name: "Ukrainian Hryvnia"},
	USD: {CurrencyCode: USD, Symbol: "$", Name: "US Dollar"},
	EUR: {CurrencyCode: EUR, Symbol: "€", Name: "Euro"},
}

// SupportedCurrencies returns a copy of the supported currency set.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsValid reports whether c belongs to the supported set.
func (c Currency) IsValid() bool {
	_, ok := currencyInfo[c]
	return ok
}

// Info returns display metadata for c. The zero value is returned for unknown currencies.
func (c Currency) Info() CurrencyInfo {
	return currencyInfo[c]
}

func (c Currency) String() string { return string(c) }

// ParseCurrency normalizes code and rejects anything outside the supported set.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: '%s'", apperrors.ErrUnknownCurrency, code)
	}
	return c, nil
}

// ListCurrencyInfo returns display metadata for every supported currency.
func ListCurrencyInfo() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		out = append(out, currencyInfo[c])
	}
	return out
}
