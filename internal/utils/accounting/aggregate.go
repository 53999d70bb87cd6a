package accounting

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// Aggregate sums every employee's net pay independently per currency.
// An empty roster yields zero for every supported currency.
func Aggregate(employees []domain.Employee, table *domain.RateTable, base domain.Currency) (domain.CompanyTotals, error) {
	net := make(map[domain.Currency]float64, len(domain.SupportedCurrencies()))
	for _, c := range domain.SupportedCurrencies() {
		net[c] = 0
	}

	for _, employee := range employees {
		totals, err := ComputeTotals(employee, table, base)
		if err != nil {
			return domain.CompanyTotals{}, err
		}
		for c, amount := range totals.Net {
			net[c] += amount
		}
	}

	return domain.CompanyTotals{
		EmployeeCount: len(employees),
		Net:           net,
	}, nil
}
