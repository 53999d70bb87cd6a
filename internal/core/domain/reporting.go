package domain

import "time"

// Totals is derived from an Employee and a RateTable; it is never persisted or cached.
// Accruals, Deductions and Gross are expressed in the employee's base-salary currency.
type Totals struct {
	EmployeeID string               `json:"employeeID"`
	Accruals   Money                `json:"accruals"`
	Deductions Money                `json:"deductions"`
	Gross      float64              `json:"gross"`
	NetBase    float64              `json:"netBase"`
	Net        map[Currency]float64 `json:"net"`
}

// CompanyTotals is the per-currency sum of every employee's net pay.
type CompanyTotals struct {
	EmployeeCount int                  `json:"employeeCount"`
	Net           map[Currency]float64 `json:"net"`
}

// EmployeeReport pairs an employee with its totals and the conversion context they were computed in.
// RatesCapturedAt is nil when no rate table was available.
type EmployeeReport struct {
	Employee        Employee
	Totals          Totals
	BaseCurrency    Currency
	RatesCapturedAt *time.Time
}

// CompanyReport is CompanyTotals with its conversion context.
type CompanyReport struct {
	Totals          CompanyTotals
	BaseCurrency    Currency
	RatesCapturedAt *time.Time
}
