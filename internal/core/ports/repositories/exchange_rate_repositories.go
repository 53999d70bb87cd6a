package repositories

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for rate snapshots
type ExchangeRateReader interface {
	// FindLatestRateSnapshot retrieves the most recently captured table for a base currency.
	FindLatestRateSnapshot(ctx context.Context, base domain.Currency) (*domain.RateTable, error)
}

// ExchangeRateWriter defines write operations for rate snapshots
type ExchangeRateWriter interface {
	// SaveRateSnapshot persists a complete rate table.
	SaveRateSnapshot(ctx context.Context, table *domain.RateTable) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
