package memory

import (
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the in-memory implementations of every repository port.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:     NewEmployeeRepository(),
		ExchangeRateRepo: NewExchangeRateRepository(),
		SettingsRepo:     NewSettingsRepository(),
	}
}
