package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// DefaultRateStaleAfter is used when no staleness limit is configured.
const DefaultRateStaleAfter = 6 * time.Hour

// rateState is the base currency together with the table published for it.
// It is replaced as a whole so readers never see a table for another base.
type rateState struct {
	base  domain.Currency
	table *domain.RateTable
}

// exchangeRateService keeps the current rate table and refreshes it from a RateSource.
type exchangeRateService struct {
	BaseService
	source     clients.RateSource
	rateRepo   portsrepo.ExchangeRateRepositoryFacade
	staleAfter time.Duration
	now        func() time.Time

	state     atomic.Pointer[rateState]
	refreshMu sync.Mutex
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*exchangeRateService)

// WithRateStaleAfter sets how old a table may get before RefreshIfStale replaces it.
func WithRateStaleAfter(d time.Duration) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		if d > 0 {
			s.staleAfter = d
		}
	}
}

// WithRateClock overrides the clock used for capture times and staleness.
func WithRateClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.now = now
	}
}

// NewExchangeRateService creates the service with base as the initial base currency and no table.
// source may be nil, in which case only persisted snapshots can be published.
func NewExchangeRateService(source clients.RateSource, repo portsrepo.ExchangeRateRepositoryFacade, base domain.Currency, options ...ExchangeRateServiceOption) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		source:     source,
		rateRepo:   repo,
		staleAfter: DefaultRateStaleAfter,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	svc.state.Store(&rateState{base: base})
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) CurrentRates(_ context.Context) (domain.Currency, *domain.RateTable) {
	st := s.state.Load()
	return st.base, st.table
}

func (s *exchangeRateService) Convert(_ context.Context, amount float64, from, to domain.Currency) (float64, *domain.RateTable, error) {
	st := s.state.Load()
	result, err := accounting.Convert(amount, from, to, st.table, st.base)
	if err != nil {
		return 0, st.table, err
	}
	return result, st.table, nil
}

func (s *exchangeRateService) Refresh(ctx context.Context) (*domain.RateTable, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	base := s.state.Load().base
	if s.source == nil {
		return nil, fmt.Errorf("%w: no exchange rate source configured", apperrors.ErrUpstream)
	}

	fetched, err := s.source.FetchRates(ctx, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rates", slog.String("base_currency", base.String()))
		return nil, err
	}
	if fetched.Base != base {
		return nil, fmt.Errorf("%w: source answered for %s, expected %s", apperrors.ErrInvalidRate, fetched.Base, base)
	}
	if err := fetched.Validate(); err != nil {
		s.LogError(ctx, err, "Rate source returned an incomplete table", slog.String("source", fetched.Source))
		return nil, err
	}

	capturedAt := fetched.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = s.now()
	}
	table := domain.NewRateTable(uuid.NewString(), base, fetched.Source, capturedAt.UTC(), fetched.Rates())

	if s.state.Load().base != base {
		return nil, s.baseChanged(ctx, base, table)
	}
	if err := s.rateRepo.SaveRateSnapshot(ctx, table); err != nil {
		// The fresh table is still published; only the restart fallback is lost.
		s.LogError(ctx, err, "Failed to persist exchange rate snapshot", slog.String("snapshot_id", table.SnapshotID))
	}

	if !s.publish(base, table) {
		return nil, s.baseChanged(ctx, base, table)
	}

	s.LogInfo(ctx, "Exchange rates refreshed",
		slog.String("base_currency", base.String()),
		slog.String("source", table.Source),
		slog.String("snapshot_id", table.SnapshotID))
	return table, nil
}

func (s *exchangeRateService) RefreshIfStale(ctx context.Context) error {
	st := s.state.Load()
	if st.table != nil && !st.table.IsStale(s.now(), s.staleAfter) {
		return nil
	}
	_, err := s.Refresh(ctx)
	return err
}

func (s *exchangeRateService) LoadLatest(ctx context.Context) error {
	base := s.state.Load().base
	table, err := s.rateRepo.FindLatestRateSnapshot(ctx, base)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "No stored exchange rate snapshot", slog.String("base_currency", base.String()))
			return nil
		}
		s.LogError(ctx, err, "Failed to load stored exchange rate snapshot", slog.String("base_currency", base.String()))
		return fmt.Errorf("failed to load exchange rate snapshot: %w", err)
	}
	if table.Base != base {
		return fmt.Errorf("%w: stored snapshot is for %s, expected %s", apperrors.ErrInvalidRate, table.Base, base)
	}
	if err := table.Validate(); err != nil {
		s.LogError(ctx, err, "Stored exchange rate snapshot is unusable", slog.String("snapshot_id", table.SnapshotID))
		return err
	}

	if s.publishStored(base, table) {
		s.LogInfo(ctx, "Loaded stored exchange rates",
			slog.String("snapshot_id", table.SnapshotID),
			slog.Time("captured_at", table.CapturedAt))
	}
	return nil
}

func (s *exchangeRateService) SetBaseCurrency(ctx context.Context, base domain.Currency) error {
	if !base.IsValid() {
		return fmt.Errorf("%w: '%s'", apperrors.ErrUnknownCurrency, base)
	}

	for {
		current := s.state.Load()
		if current.base == base {
			return nil
		}
		if s.state.CompareAndSwap(current, &rateState{base: base}) {
			break
		}
	}
	s.LogInfo(ctx, "Base currency changed, rate table invalidated", slog.String("base_currency", base.String()))

	if err := s.LoadLatest(ctx); err != nil {
		s.LogError(ctx, err, "Failed to load stored rates for new base currency")
	}
	if err := s.RefreshIfStale(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh rates for new base currency")
	}
	return nil
}

// Run refreshes the table every interval until ctx is done. Failed refreshes keep the previous table.
func (s *exchangeRateService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	for {
		select {
		case <-time.After(interval):
			if _, err := s.Refresh(ctx); err != nil {
				s.GetLogger(ctx).Warn("Periodic exchange rate refresh failed", slog.String("error", err.Error()))
			}
		case <-ctx.Done():
			return
		}
	}
}

// publishStored is publish for persisted snapshots; a newer published table is kept.
func (s *exchangeRateService) publishStored(base domain.Currency, table *domain.RateTable) bool {
	for {
		current := s.state.Load()
		if current.base != base {
			return false
		}
		if current.table != nil && table.CapturedAt.Before(current.table.CapturedAt) {
			return false
		}
		if s.state.CompareAndSwap(current, &rateState{base: base, table: table}) {
			return true
		}
	}
}

// baseChanged reports a fetched table that no longer matches the base currency.
func (s *exchangeRateService) baseChanged(ctx context.Context, base domain.Currency, table *domain.RateTable) error {
	s.LogInfo(ctx, "Base currency changed during refresh, discarding table",
		slog.String("base_currency", base.String()), slog.String("snapshot_id", table.SnapshotID))
	return fmt.Errorf("%w: base currency changed from %s during refresh", apperrors.ErrInvalidRate, base)
}

// publish stores table if base is still the current base currency.
func (s *exchangeRateService) publish(base domain.Currency, table *domain.RateTable) bool {
	for {
		current := s.state.Load()
		if current.base != base {
			return false
		}
		if s.state.CompareAndSwap(current, &rateState{base: base, table: table}) {
			return true
		}
	}
}
