package dto

import (
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// UpdateSettingsRequest defines the settings a client may change.
type UpdateSettingsRequest struct {
	BaseCurrency string `json:"baseCurrency" binding:"required,currency"`
}

// SettingsResponse defines the data returned for the settings record.
type SettingsResponse struct {
	BaseCurrency        string             `json:"baseCurrency"`
	SupportedCurrencies []CurrencyResponse `json:"supportedCurrencies"`
	LastUpdatedAt       time.Time          `json:"lastUpdatedAt"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		BaseCurrency:        s.BaseCurrency.String(),
		SupportedCurrencies: ToListCurrencyResponse(domain.ListCurrencyInfo()),
		LastUpdatedAt:       s.LastUpdatedAt,
	}
}
