package dto

import (
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// EmployeeTotalsResponse represents the computed pay of one employee.
type EmployeeTotalsResponse struct {
	EmployeeID      string                   `json:"employeeID"`
	Name            string                   `json:"name"`
	BaseSalary      MoneyResponse            `json:"baseSalary"`
	Accruals        MoneyResponse            `json:"accruals"`
	Deductions      MoneyResponse            `json:"deductions"`
	Gross           MoneyResponse            `json:"gross"`
	Net             map[string]MoneyResponse `json:"net"`
	BaseCurrency    string                   `json:"baseCurrency"`
	RatesCapturedAt *time.Time               `json:"ratesCapturedAt,omitempty"`
}

// CompanyTotalsResponse represents the net pay of the whole roster.
type CompanyTotalsResponse struct {
	EmployeeCount   int                      `json:"employeeCount"`
	Net             map[string]MoneyResponse `json:"net"`
	BaseCurrency    string                   `json:"baseCurrency"`
	RatesCapturedAt *time.Time               `json:"ratesCapturedAt,omitempty"`
}

// ToEmployeeTotalsResponse converts a domain.EmployeeReport to EmployeeTotalsResponse DTO
func ToEmployeeTotalsResponse(report *domain.EmployeeReport) EmployeeTotalsResponse {
	salaryCurrency := report.Employee.Base.Currency
	return EmployeeTotalsResponse{
		EmployeeID:      report.Employee.EmployeeID,
		Name:            report.Employee.Name,
		BaseSalary:      ToMoneyResponse(report.Employee.Base),
		Accruals:        ToMoneyResponse(report.Totals.Accruals),
		Deductions:      ToMoneyResponse(report.Totals.Deductions),
		Gross:           ToMoneyResponse(domain.Money{Amount: report.Totals.Gross, Currency: salaryCurrency}),
		Net:             ToMoneyMapResponse(report.Totals.Net),
		BaseCurrency:    report.BaseCurrency.String(),
		RatesCapturedAt: report.RatesCapturedAt,
	}
}

// ToCompanyTotalsResponse converts a domain.CompanyReport to CompanyTotalsResponse DTO
func ToCompanyTotalsResponse(report *domain.CompanyReport) CompanyTotalsResponse {
	return CompanyTotalsResponse{
		EmployeeCount:   report.Totals.EmployeeCount,
		Net:             ToMoneyMapResponse(report.Totals.Net),
		BaseCurrency:    report.BaseCurrency.String(),
		RatesCapturedAt: report.RatesCapturedAt,
	}
}
