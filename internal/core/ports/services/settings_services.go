package services

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/dto"
)

// SettingsSvc manages deployment-wide preferences.
type SettingsSvc interface {
	// GetSettings returns the stored settings, or the defaults when none are usable.
	GetSettings(ctx context.Context) (*domain.Settings, error)

	// UpdateSettings persists new settings and applies a base currency change to the rate service.
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}

// RosterSvc moves the whole roster in and out as a single document.
type RosterSvc interface {
	// Export renders the roster and current base currency as a document.
	Export(ctx context.Context) (*dto.RosterDocument, error)

	// Import validates doc and replaces the roster with it. Invalid documents leave the roster untouched.
	Import(ctx context.Context, doc dto.RosterDocument) (*dto.ImportRosterResponse, error)
}

// ChatSvc forwards conversations to the configured assistant.
type ChatSvc interface {
	Ask(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error)
}
