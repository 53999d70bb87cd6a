package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
)

// SettingsRepository holds at most one settings record.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.Settings
}

// NewSettingsRepository returns a repository without settings.
func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

var _ portsrepo.SettingsRepositoryFacade = (*SettingsRepository)(nil)

func (r *SettingsRepository) FindSettings(_ context.Context) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.settings == nil {
		return nil, apperrors.NewNotFoundError("settings")
	}
	s := *r.settings
	return &s, nil
}

func (r *SettingsRepository) SaveSettings(_ context.Context, settings domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = &settings
	return nil
}
