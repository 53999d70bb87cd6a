package dto

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
}

// ToListCurrencyResponse converts currency metadata to CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyInfo) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = CurrencyResponse{
			CurrencyCode: curr.CurrencyCode.String(),
			Symbol:       curr.Symbol,
			Name:         curr.Name,
		}
	}
	return res
}
