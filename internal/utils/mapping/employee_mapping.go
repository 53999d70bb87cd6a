package mapping

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelEmployee converts a domain Employee to a model Employee. Items are mapped separately.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:   d.EmployeeID,
		Name:         d.Name,
		BaseAmount:   decimal.NewFromFloat(d.Base.Amount),
		BaseCurrency: d.Base.Currency.String(),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee and its ordered items to a domain Employee
func ToDomainEmployee(m models.Employee, items []models.LineItem) domain.Employee {
	return domain.Employee{
		EmployeeID:  m.EmployeeID,
		Name:        m.Name,
		Base:        domain.Money{Amount: m.BaseAmount.InexactFloat64(), Currency: domain.Currency(m.BaseCurrency)},
		Items:       ToDomainLineItemSlice(items),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain LineItem at position to a model LineItem
func ToModelLineItem(d domain.LineItem, position int) models.LineItem {
	return models.LineItem{
		LineItemID:  d.LineItemID,
		EmployeeID:  d.EmployeeID,
		Position:    position,
		Kind:        string(d.Kind),
		Label:       d.Label,
		Amount:      decimal.NewFromFloat(d.Value.Amount),
		Currency:    d.Value.Currency.String(),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:  m.LineItemID,
		EmployeeID:  m.EmployeeID,
		Kind:        domain.LineItemKind(m.Kind),
		Label:       m.Label,
		Value:       domain.Money{Amount: m.Amount.InexactFloat64(), Currency: domain.Currency(m.Currency)},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineItemSlice converts a slice of model LineItems to a slice of domain LineItems
func ToDomainLineItemSlice(ms []models.LineItem) []domain.LineItem {
	ds := make([]domain.LineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
