package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	portsrepo "github.com/SscSPs/payroll_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/payroll_app/internal/core/ports/services"
	"github.com/SscSPs/payroll_app/internal/utils/accounting"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	rates        portssvc.ExchangeRateReaderSvc
}

// NewReportingService creates a reporting service computing totals over the current rate table.
func NewReportingService(repo portsrepo.EmployeeReader, rates portssvc.ExchangeRateReaderSvc) portssvc.ReportingSvc {
	return &reportingService{employeeRepo: repo, rates: rates}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

func (s *reportingService) EmployeeTotals(ctx context.Context, employeeID string) (*domain.EmployeeReport, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee for totals", slog.String("employee_id", employeeID))
		}
		return nil, err
	}

	base, table := s.rates.CurrentRates(ctx)
	totals, err := accounting.ComputeTotals(*employee, table, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute employee totals", slog.String("employee_id", employeeID))
		return nil, err
	}

	return &domain.EmployeeReport{
		Employee:        *employee,
		Totals:          totals,
		BaseCurrency:    base,
		RatesCapturedAt: capturedAt(table),
	}, nil
}

func (s *reportingService) CompanyTotals(ctx context.Context) (*domain.CompanyReport, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for company totals")
		return nil, err
	}

	base, table := s.rates.CurrentRates(ctx)
	totals, err := accounting.Aggregate(employees, table, base)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate company totals", slog.Int("employee_count", len(employees)))
		return nil, err
	}

	s.LogDebug(ctx, "Company totals computed", slog.Int("employee_count", totals.EmployeeCount))
	return &domain.CompanyReport{
		Totals:          totals,
		BaseCurrency:    base,
		RatesCapturedAt: capturedAt(table),
	}, nil
}

func capturedAt(table *domain.RateTable) *time.Time {
	if table == nil {
		return nil
	}
	t := table.CapturedAt
	return &t
}
