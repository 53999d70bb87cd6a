package accounting

import (
	"fmt"

	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// ComputeTotals aggregates an employee's base salary and line items.
// Items are converted into the base-salary currency; gross = base + accruals and
// net = gross - deductions. Net is then expressed in every supported currency.
func ComputeTotals(employee domain.Employee, table *domain.RateTable, base domain.Currency) (domain.Totals, error) {
	salaryCurrency := employee.Base.Currency
	accruals := 0.0
	deductions := 0.0

	for _, item := range employee.Items {
		amount, err := Convert(item.Value.Amount, item.Value.Currency, salaryCurrency, table, base)
		if err != nil {
			return domain.Totals{}, fmt.Errorf("converting line item %s of employee %s: %w", item.LineItemID, employee.EmployeeID, err)
		}
		switch item.Kind {
		case domain.Accrual:
			accruals += amount
		default:
			deductions += amount
		}
	}

	gross := employee.Base.Amount + accruals
	netBase := gross - deductions

	net := make(map[domain.Currency]float64, len(domain.SupportedCurrencies()))
	for _, c := range domain.SupportedCurrencies() {
		amount, err := Convert(netBase, salaryCurrency, c, table, base)
		if err != nil {
			return domain.Totals{}, fmt.Errorf("converting net pay of employee %s to %s: %w", employee.EmployeeID, c, err)
		}
		net[c] = amount
	}

	return domain.Totals{
		EmployeeID: employee.EmployeeID,
		Accruals:   domain.Money{Amount: accruals, Currency: salaryCurrency},
		Deductions: domain.Money{Amount: deductions, Currency: salaryCurrency},
		Gross:      gross,
		NetBase:    netBase,
		Net:        net,
	}, nil
}
