package repositories

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// SettingsRepositoryFacade persists the single settings record.
type SettingsRepositoryFacade interface {
	// FindSettings returns the stored settings or apperrors.ErrNotFound.
	FindSettings(ctx context.Context) (*domain.Settings, error)

	// SaveSettings inserts or replaces the settings record.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
