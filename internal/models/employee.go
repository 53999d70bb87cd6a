package models

import (
	"github.com/shopspring/decimal"
)

// Employee is a row of the employees table.
type Employee struct {
	EmployeeID   string          `db:"employee_id"`
	Name         string          `db:"name"`
	BaseAmount   decimal.Decimal `db:"base_amount"`
	BaseCurrency string          `db:"base_currency"`
	AuditFields
}

// LineItem is a row of the line_items table. Position orders items within an employee.
type LineItem struct {
	LineItemID string          `db:"line_item_id"`
	EmployeeID string          `db:"employee_id"`
	Position   int             `db:"position"`
	Kind       string          `db:"kind"`
	Label      string          `db:"label"`
	Amount     decimal.Decimal `db:"amount"`
	Currency   string          `db:"currency"`
	AuditFields
}
