package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	"github.com/SscSPs/payroll_app/internal/models"
	"github.com/SscSPs/payroll_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository stores rate tables in exchange_rate_snapshots.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveRateSnapshot inserts a snapshot. Snapshots are never updated.
func (r *PgxExchangeRateRepository) SaveRateSnapshot(ctx context.Context, table *domain.RateTable) error {
	m := mapping.ToModelRateSnapshot(table)
	rates, err := json.Marshal(m.Rates)
	if err != nil {
		return fmt.Errorf("failed to encode rates of snapshot %s: %w", m.SnapshotID, err)
	}

	_, err = r.Pool.Exec(ctx, `
		INSERT INTO exchange_rate_snapshots (snapshot_id, base_currency, source, rates, captured_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.SnapshotID, m.BaseCurrency, m.Source, rates, m.CapturedAt)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: rate snapshot %s already exists", apperrors.ErrDuplicate, m.SnapshotID)
		}
		return fmt.Errorf("failed to save rate snapshot %s: %w", m.SnapshotID, err)
	}
	return nil
}

// FindLatestRateSnapshot returns the most recently captured snapshot for base.
func (r *PgxExchangeRateRepository) FindLatestRateSnapshot(ctx context.Context, base domain.Currency) (*domain.RateTable, error) {
	var m models.RateSnapshot
	var rates []byte
	err := r.Pool.QueryRow(ctx, `
		SELECT snapshot_id, base_currency, source, rates, captured_at
		FROM exchange_rate_snapshots
		WHERE base_currency = $1
		ORDER BY captured_at DESC
		LIMIT 1`, base.String()).Scan(&m.SnapshotID, &m.BaseCurrency, &m.Source, &rates, &m.CapturedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("rate snapshot for " + base.String())
		}
		return nil, fmt.Errorf("failed to find latest rate snapshot for %s: %w", base, err)
	}
	if err := json.Unmarshal(rates, &m.Rates); err != nil {
		return nil, fmt.Errorf("failed to decode rates of snapshot %s: %w", m.SnapshotID, err)
	}
	return mapping.ToDomainRateTable(m), nil
}
