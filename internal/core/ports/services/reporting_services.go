package services

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// ReportingSvc defines operations for computing pay totals
type ReportingSvc interface {
	// EmployeeTotals computes one employee's totals over the current rate table.
	EmployeeTotals(ctx context.Context, employeeID string) (*domain.EmployeeReport, error)

	// CompanyTotals sums the net pay of the whole roster per currency.
	CompanyTotals(ctx context.Context) (*domain.CompanyReport, error)
}
