package services

import (
	"context"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for the roster
type EmployeeReaderSvc interface {
	// GetEmployee retrieves an employee with its line items.
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves the whole roster in creation order.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employees
type EmployeeWriterSvc interface {
	// CreateEmployee adds a new employee without line items.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// UpdateEmployee changes the name and/or base salary of an employee.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee together with its line items.
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// LineItemWriterSvc defines write operations for an employee's accruals and deductions
type LineItemWriterSvc interface {
	// AddLineItem appends an item to the employee's list.
	AddLineItem(ctx context.Context, employeeID string, req dto.AddLineItemRequest) (*domain.LineItem, error)

	// UpdateLineItem changes the kind, label and/or value of an item.
	UpdateLineItem(ctx context.Context, employeeID, lineItemID string, req dto.UpdateLineItemRequest) (*domain.LineItem, error)

	// RemoveLineItem deletes an item from the employee.
	RemoveLineItem(ctx context.Context, employeeID, lineItemID string) error
}

// EmployeeSvcFacade combines all roster-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	LineItemWriterSvc
}
