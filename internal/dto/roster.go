package dto

// RosterDocumentVersion is the only document layout Import accepts.
const RosterDocumentVersion = 1

// RosterDocument is the portable form of the whole roster used by export and import.
type RosterDocument struct {
	Version      int              `json:"version" binding:"required,eq=1"`
	BaseCurrency string           `json:"baseCurrency" binding:"required,currency"`
	Employees    []RosterEmployee `json:"employees" binding:"dive"`
}

// RosterEmployee is one employee inside a RosterDocument.
type RosterEmployee struct {
	EmployeeID string           `json:"employeeID" binding:"omitempty,uuid"`
	Name       string           `json:"name" binding:"required,max=200"`
	BaseSalary RosterMoney      `json:"baseSalary" binding:"required"`
	Items      []RosterLineItem `json:"items" binding:"dive"`
}

// RosterLineItem is one line item inside a RosterDocument. Kind is case-sensitive.
type RosterLineItem struct {
	LineItemID string      `json:"lineItemID" binding:"omitempty,uuid"`
	Kind       string      `json:"kind" binding:"required,oneof=ACCRUAL DEDUCTION"`
	Label      string      `json:"label" binding:"required,max=200"`
	Value      RosterMoney `json:"value" binding:"required"`
}

// RosterMoney is an amount inside a RosterDocument. Zero amounts are allowed.
type RosterMoney struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency" binding:"required,currency"`
}

// ImportRosterResponse reports the outcome of a roster import.
type ImportRosterResponse struct {
	EmployeesImported int `json:"employeesImported"`
	LineItemsImported int `json:"lineItemsImported"`
}
