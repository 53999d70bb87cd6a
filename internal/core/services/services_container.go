package services

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/dto"
	"github.com/SscSPs/payroll_app/internal/platform/config"
)

// Clients are the outbound adapters services talk to. Either may be nil.
type Clients struct {
	RateSource clients.RateSource
	Chat       clients.ChatClient
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, outbound Clients) (*portssvc.ServiceContainer, error) {
	base, err := domain.ParseCurrency(cfg.BaseCurrency)
	if err != nil {
		return nil, err
	}
	validate, err := dto.NewValidator()
	if err != nil {
		return nil, err
	}

	container := &portssvc.ServiceContainer{}

	container.Currency = NewCurrencyService()
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.ExchangeRate = NewExchangeRateService(
		outbound.RateSource,
		repos.ExchangeRateRepo,
		base,
		WithRateStaleAfter(cfg.RateStaleAfter),
	)
	container.Reporting = NewReportingService(repos.EmployeeRepo, container.ExchangeRate)
	container.Settings = NewSettingsService(repos.SettingsRepo, container.ExchangeRate, base)
	container.Roster = NewRosterService(repos.EmployeeRepo, container.ExchangeRate, validate)
	container.Chat = NewChatService(outbound.Chat, container.Reporting)

	return container, nil
}
