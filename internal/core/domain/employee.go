package domain

// LineItemKind indicates whether a line item adds to or subtracts from pay.
type LineItemKind string

const (
	Accrual   LineItemKind = "ACCRUAL"
	Deduction LineItemKind = "DEDUCTION"
)

// IsValid reports whether k is a known kind.
func (k LineItemKind) IsValid() bool {
	return k == Accrual || k == Deduction
}

// LineItem is a labeled accrual or deduction owned by exactly one Employee.
type LineItem struct {
	LineItemID string       `json:"lineItemID"` // Primary Key (UUID)
	EmployeeID string       `json:"employeeID"` // FK -> Employee.EmployeeID
	Kind       LineItemKind `json:"kind"`
	Label      string       `json:"label"`
	Value      Money        `json:"value"`
	AuditFields
}

// Employee is a roster entry with a base salary and an ordered list of line items.
// Deleting an employee deletes its items.
type Employee struct {
	EmployeeID string     `json:"employeeID"` // Primary Key (UUID)
	Name       string     `json:"name"`
	Base       Money      `json:"base"`
	Items      []LineItem `json:"items"`
	AuditFields
}

// FindItem returns the index of the item with id, or -1.
func (e *Employee) FindItem(lineItemID string) int {
	for i := range e.Items {
		if e.Items[i].LineItemID == lineItemID {
			return i
		}
	}
	return -1
}
