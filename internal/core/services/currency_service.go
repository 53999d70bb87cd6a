package services

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
)

type currencyService struct{}

// NewCurrencyService returns the service listing the supported currencies.
func NewCurrencyService() portssvc.CurrencySvc {
	return &currencyService{}
}

var _ portssvc.CurrencySvc = (*currencyService)(nil)

func (s *currencyService) ListCurrencies(_ context.Context) []domain.CurrencyInfo {
	return domain.ListCurrencyInfo()
}
