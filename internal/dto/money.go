package dto

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/utils"
)

// MoneyRequest is an amount with its currency as sent by clients.
type MoneyRequest struct {
	Amount   *float64 `json:"amount" binding:"required"`
	Currency string   `json:"currency" binding:"required,currency"`
}

// ToDomain builds a validated domain.Money.
func (m MoneyRequest) ToDomain() (domain.Money, error) {
	amount := 0.0
	if m.Amount != nil {
		amount = *m.Amount
	}
	currency, err := domain.ParseCurrency(m.Currency)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoney(amount, currency)
}

// MoneyResponse carries the raw amount together with its display rendering.
type MoneyResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Display  string  `json:"display"`
}

// ToMoneyResponse converts a domain.Money to MoneyResponse DTO
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount,
		Currency: m.Currency.String(),
		Display:  utils.FormatAmount(m.Amount),
	}
}

// ToMoneyMapResponse converts a per-currency amount map into responses keyed by currency code.
func ToMoneyMapResponse(amounts map[domain.Currency]float64) map[string]MoneyResponse {
	out := make(map[string]MoneyResponse, len(amounts))
	for c, amount := range amounts {
		out[c.String()] = ToMoneyResponse(domain.Money{Amount: amount, Currency: c})
	}
	return out
}
