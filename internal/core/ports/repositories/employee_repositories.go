package repositories

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// EmployeeReader defines read operations for roster data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee together with its line items.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves every employee with its line items, in creation order.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for roster data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee (items included).
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee persists the name, base salary and update time of an existing employee.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error

	// DeleteEmployee removes an employee and all of its line items.
	DeleteEmployee(ctx context.Context, employeeID string) error

	// ReplaceRoster atomically swaps the whole roster for employees.
	ReplaceRoster(ctx context.Context, employees []domain.Employee) error
}

// LineItemWriter defines write operations for an employee's line items
type LineItemWriter interface {
	// SaveLineItem appends a line item to the end of its employee's list.
	SaveLineItem(ctx context.Context, item domain.LineItem) error

	// UpdateLineItem persists the kind, label and value of an existing item.
	UpdateLineItem(ctx context.Context, item domain.LineItem) error

	// DeleteLineItem removes one item from an employee.
	DeleteLineItem(ctx context.Context, employeeID, lineItemID string) error
}

// EmployeeRepositoryFacade combines all roster-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	LineItemWriter
}
