package services

import (
	"context"
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// CurrencySvc exposes the fixed set of supported currencies.
type CurrencySvc interface {
	ListCurrencies(ctx context.Context) []domain.CurrencyInfo
}

// ExchangeRateReaderSvc defines read operations over the current rate table
type ExchangeRateReaderSvc interface {
	// CurrentRates returns the base currency and the published table, which is nil until one is available.
	CurrentRates(ctx context.Context) (domain.Currency, *domain.RateTable)

	// Convert converts amount with the current table and base. The table used is returned alongside.
	Convert(ctx context.Context, amount float64, from, to domain.Currency) (float64, *domain.RateTable, error)
}

// ExchangeRateWriterSvc defines operations that replace the current rate table
type ExchangeRateWriterSvc interface {
	// Refresh fetches, validates, persists and publishes a new table.
	Refresh(ctx context.Context) (*domain.RateTable, error)

	// RefreshIfStale refreshes only when there is no table or it is older than the staleness limit.
	RefreshIfStale(ctx context.Context) error

	// LoadLatest publishes the most recent persisted snapshot for the current base, if any.
	LoadLatest(ctx context.Context) error

	// SetBaseCurrency switches the base, drops the current table and tries to refresh.
	SetBaseCurrency(ctx context.Context, base domain.Currency) error
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc

	// Run refreshes the table every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}
