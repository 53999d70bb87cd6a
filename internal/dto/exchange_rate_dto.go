package dto

import (
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/utils"
)

// ExchangeRatesResponse describes the rate table currently in use.
// Available is false when no table has been captured yet; conversions then return amounts unchanged.
type ExchangeRatesResponse struct {
	BaseCurrency string             `json:"baseCurrency"`
	Available    bool               `json:"available"`
	SnapshotID   string             `json:"snapshotID,omitempty"`
	Source       string             `json:"source,omitempty"`
	CapturedAt   *time.Time         `json:"capturedAt,omitempty"`
	Rates        map[string]float64 `json:"rates"`
}

// ConvertParams are the query parameters of a conversion request.
type ConvertParams struct {
	Amount float64 `form:"amount"`
	From   string  `form:"from" binding:"required,currency"`
	To     string  `form:"to" binding:"required,currency"`
}

// ConvertResponse is the result of converting an amount with the current table.
type ConvertResponse struct {
	Amount          float64    `json:"amount"`
	From            string     `json:"from"`
	To              string     `json:"to"`
	Result          float64    `json:"result"`
	Display         string     `json:"display"`
	RatesApplied    bool       `json:"ratesApplied"`
	RatesCapturedAt *time.Time `json:"ratesCapturedAt,omitempty"`
}

// ToExchangeRatesResponse converts the current table (possibly nil) to ExchangeRatesResponse DTO
func ToExchangeRatesResponse(base domain.Currency, table *domain.RateTable) ExchangeRatesResponse {
	resp := ExchangeRatesResponse{
		BaseCurrency: base.String(),
		Rates:        map[string]float64{},
	}
	if table == nil {
		return resp
	}
	capturedAt := table.CapturedAt
	resp.Available = true
	resp.SnapshotID = table.SnapshotID
	resp.Source = table.Source
	resp.CapturedAt = &capturedAt
	for c, r := range table.Rates() {
		resp.Rates[c.String()] = r
	}
	return resp
}

// ToConvertResponse builds a ConvertResponse DTO
func ToConvertResponse(params ConvertParams, from, to domain.Currency, result float64, table *domain.RateTable) ConvertResponse {
	resp := ConvertResponse{
		Amount:       params.Amount,
		From:         from.String(),
		To:           to.String(),
		Result:       result,
		Display:      utils.FormatMoney(result, to),
		RatesApplied: table != nil && from != to,
	}
	if table != nil {
		capturedAt := table.CapturedAt
		resp.RatesCapturedAt = &capturedAt
	}
	return resp
}
