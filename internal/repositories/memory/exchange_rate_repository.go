package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
)

// ExchangeRateRepository keeps the latest snapshot per base currency.
type ExchangeRateRepository struct {
	mu     sync.RWMutex
	latest map[domain.Currency]*domain.RateTable
	ids    map[string]bool
}

// NewExchangeRateRepository returns a repository without snapshots.
func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{
		latest: make(map[domain.Currency]*domain.RateTable),
		ids:    make(map[string]bool),
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

func (r *ExchangeRateRepository) SaveRateSnapshot(_ context.Context, table *domain.RateTable) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ids[table.SnapshotID] {
		return fmt.Errorf("%w: rate snapshot %s already exists", apperrors.ErrDuplicate, table.SnapshotID)
	}
	r.ids[table.SnapshotID] = true
	if current, ok := r.latest[table.Base]; !ok || !table.CapturedAt.Before(current.CapturedAt) {
		r.latest[table.Base] = table
	}
	return nil
}

// FindLatestRateSnapshot returns the stored table itself; RateTable is immutable.
func (r *ExchangeRateRepository) FindLatestRateSnapshot(_ context.Context, base domain.Currency) (*domain.RateTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.latest[base]
	if !ok {
		return nil, apperrors.NewNotFoundError("rate snapshot for " + base.String())
	}
	return table, nil
}
