package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
	rates        portssvc.ExchangeRateWriterSvc
	defaults     domain.Settings
}

// NewSettingsService creates the settings service. defaultBase is used until settings are saved
// and whenever the stored record is unusable.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade, rates portssvc.ExchangeRateWriterSvc, defaultBase domain.Currency) portssvc.SettingsSvc {
	return &settingsService{
		settingsRepo: repo,
		rates:        rates,
		defaults:     domain.Settings{BaseCurrency: defaultBase},
	}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	stored, err := s.settingsRepo.FindSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := s.defaults
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to load settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !stored.BaseCurrency.IsValid() {
		s.GetLogger(ctx).Warn("Stored settings are invalid, using defaults",
			slog.String("base_currency", stored.BaseCurrency.String()))
		defaults := s.defaults
		return &defaults, nil
	}
	return stored, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	base, err := domain.ParseCurrency(req.BaseCurrency)
	if err != nil {
		return nil, err
	}
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := domain.Settings{
		BaseCurrency: base,
		AuditFields: domain.AuditFields{
			CreatedAt:     current.CreatedAt,
			LastUpdatedAt: now,
		},
	}
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = now
	}

	if err := s.settingsRepo.SaveSettings(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	if err := s.rates.SetBaseCurrency(ctx, base); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Settings updated", slog.String("base_currency", base.String()))
	return &updated, nil
}
