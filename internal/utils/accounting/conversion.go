// Package accounting holds the pure money arithmetic of the payroll: currency conversion,
// per-employee totals and the company roll-up. Nothing here performs I/O or reads ambient
// state; callers pass the roster, the rate table and the base currency explicitly.
package accounting

import (
	"fmt"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
)

// Convert converts amount from one currency to another through the base currency.
//
// A nil table means no conversion is possible and the amount is returned unchanged.
// Identical currencies are returned unchanged regardless of the table.
// Rates are never rounded; a missing or non-positive rate for a currency that takes part in
// the conversion fails with apperrors.ErrInvalidRate.
func Convert(amount float64, from, to domain.Currency, table *domain.RateTable, base domain.Currency) (float64, error) {
	if from == to || table == nil {
		return amount, nil
	}
	if table.Base != base {
		return 0, fmt.Errorf("%w: table is expressed in %s, expected %s", apperrors.ErrInvalidRate, table.Base, base)
	}

	amountInBase := amount
	if from != base {
		rate, err := table.RateOf(from)
		if err != nil {
			return 0, err
		}
		amountInBase = amount / rate
	}

	if to == base {
		return amountInBase, nil
	}
	rate, err := table.RateOf(to)
	if err != nil {
		return 0, err
	}
	return amountInBase * rate, nil
}

// ConvertMoney converts m into currency to.
func ConvertMoney(m domain.Money, to domain.Currency, table *domain.RateTable, base domain.Currency) (domain.Money, error) {
	amount, err := Convert(m.Amount, m.Currency, to, table, base)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.Money{Amount: amount, Currency: to}, nil
}
