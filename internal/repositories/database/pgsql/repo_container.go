package pgsql

import (
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres implementations of every repository port.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:     newPgxEmployeeRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
	}
}
