package dto

import (
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to add an employee to the roster.
type CreateEmployeeRequest struct {
	Name       string       `json:"name" binding:"required,max=200"`
	BaseSalary MoneyRequest `json:"baseSalary" binding:"required"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateEmployeeRequest struct {
	Name       *string       `json:"name" binding:"omitempty,min=1,max=200"`
	BaseSalary *MoneyRequest `json:"baseSalary" binding:"omitempty"`
}

// AddLineItemRequest defines the data needed to attach an accrual or deduction.
type AddLineItemRequest struct {
	Kind  string       `json:"kind" binding:"required,oneof=ACCRUAL DEDUCTION"`
	Label string       `json:"label" binding:"required,max=200"`
	Value MoneyRequest `json:"value" binding:"required"`
}

// UpdateLineItemRequest defines the data allowed for updating a line item.
type UpdateLineItemRequest struct {
	Kind  *string       `json:"kind" binding:"omitempty,oneof=ACCRUAL DEDUCTION"`
	Label *string       `json:"label" binding:"omitempty,min=1,max=200"`
	Value *MoneyRequest `json:"value" binding:"omitempty"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID    string        `json:"lineItemID"`
	EmployeeID    string        `json:"employeeID"`
	Kind          string        `json:"kind"`
	Label         string        `json:"label"`
	Value         MoneyResponse `json:"value"`
	CreatedAt     time.Time     `json:"createdAt"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    string             `json:"employeeID"`
	Name          string             `json:"name"`
	BaseSalary    MoneyResponse      `json:"baseSalary"`
	Items         []LineItemResponse `json:"items"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ListEmployeesResponse wraps the roster.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToLineItemResponse converts a domain.LineItem to LineItemResponse DTO
func ToLineItemResponse(item domain.LineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:    item.LineItemID,
		EmployeeID:    item.EmployeeID,
		Kind:          string(item.Kind),
		Label:         item.Label,
		Value:         ToMoneyResponse(item.Value),
		CreatedAt:     item.CreatedAt,
		LastUpdatedAt: item.LastUpdatedAt,
	}
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	items := make([]LineItemResponse, len(e.Items))
	for i, item := range e.Items {
		items[i] = ToLineItemResponse(item)
	}
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		BaseSalary:    ToMoneyResponse(e.Base),
		Items:         items,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeesResponse converts a slice of domain.Employee to ListEmployeesResponse DTO
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: responses}
}
