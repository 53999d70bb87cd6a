package pgsql

import (
	"context"
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

// settingsRowID is the primary key of the only settings row.
const settingsRowID = 1

// PgxSettingsRepository stores the settings record.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) *PgxSettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettings(ctx context.Context) (*domain.Settings, error) {
	var m models.Settings
	err := r.Pool.QueryRow(ctx,
		`SELECT base_currency, created_at, last_updated_at FROM settings WHERE settings_id = $1`, settingsRowID,
	).Scan(&m.BaseCurrency, &m.CreatedAt, &m.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("settings")
		}
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO settings (settings_id, base_currency, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (settings_id) DO UPDATE
		SET base_currency = EXCLUDED.base_currency, last_updated_at = EXCLUDED.last_updated_at`,
		settingsRowID, m.BaseCurrency, m.CreatedAt, m.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
