package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func uahTable(rates map[domain.Currency]float64) *domain.RateTable {
	return domain.NewRateTable("snap_1", domain.UAH, "test", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), rates)
}

func employee(base domain.Money, items ...domain.LineItem) domain.Employee {
	return domain.Employee{EmployeeID: "emp_1", Name: "Olena", Base: base, Items: items}
}

func item(id string, kind domain.LineItemKind, amount float64, currency domain.Currency) domain.LineItem {
	return domain.LineItem{LineItemID: id, Kind: kind, Label: id, Value: domain.Money{Amount: amount, Currency: currency}}
}

func TestConvert_SameCurrencyIsIdentity(t *testing.T) {
	table := uahTable(map[domain.Currency]float64{domain.USD: 0.025, domain.EUR: 0.023})
	for _, c := range domain.SupportedCurrencies() {
		for _, amount := range []float64{0, 1, -250.75, 123456.789} {
			withTable, err := accounting.Convert(amount, c, c, table, domain.UAH)
			require.NoError(t, err)
			assert.Equal(t, amount, withTable)

			withoutTable, err := accounting.Convert(amount, c, c, nil, domain.UAH)
			require.NoError(t, err)
			assert.Equal(t, amount, withoutTable)
		}
	}
}

func TestConvert_NoTableFallsBackToInput(t *testing.T) {
	got, err := accounting.Convert(100, domain.USD, domain.EUR, nil, domain.UAH)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestConvert_Formula(t *testing.T) {
	table := uahTable(map[domain.Currency]float64{domain.USD: 40, domain.EUR: 43})

	tests := []struct {
		name     string
		amount   float64
		from, to domain.Currency
		want     float64
	}{
		{name: "base to foreign multiplies", amount: 10, from: domain.UAH, to: domain.USD, want: 400},
		{name: "foreign to base divides", amount: 400, from: domain.USD, to: domain.UAH, want: 10},
		{name: "foreign to foreign goes through base", amount: 80, from: domain.USD, to: domain.EUR, want: 86},
		{name: "negative amounts are allowed", amount: -40, from: domain.USD, to: domain.UAH, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.Convert(tt.amount, tt.from, tt.to, table, domain.UAH)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tolerance)
		})
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	table := uahTable(map[domain.Currency]float64{domain.USD: 0.0243, domain.EUR: 0.0227})
	for _, x := range domain.SupportedCurrencies() {
		for _, y := range domain.SupportedCurrencies() {
			there, err := accounting.Convert(1234.56, x, y, table, domain.UAH)
			require.NoError(t, err)
			back, err := accounting.Convert(there, y, x, table, domain.UAH)
			require.NoError(t, err)
			assert.InDelta(t, 1234.56, back, 1e-6, "%s -> %s -> %s", x, y, x)
		}
	}
}

func TestConvert_InvalidRates(t *testing.T) {
	tests := []struct {
		name  string
		rates map[domain.Currency]float64
	}{
		{name: "missing rate", rates: map[domain.Currency]float64{domain.EUR: 0.023}},
		{name: "zero rate", rates: map[domain.Currency]float64{domain.USD: 0, domain.EUR: 0.023}},
		{name: "negative rate", rates: map[domain.Currency]float64{domain.USD: -1, domain.EUR: 0.023}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := accounting.Convert(100, domain.USD, domain.UAH, uahTable(tt.rates), domain.UAH)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
		})
	}
}

func TestConvert_TableWithDifferentBase(t *testing.T) {
	table := domain.NewRateTable("snap_usd", domain.USD, "test", time.Now(), map[domain.Currency]float64{domain.UAH: 41, domain.EUR: 0.92})
	_, err := accounting.Convert(100, domain.EUR, domain.UAH, table, domain.UAH)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}

func TestComputeTotals_NoItems(t *testing.T) {
	table := uahTable(map[domain.Currency]float64{domain.USD: 0.025, domain.EUR: 0.02})
	e := employee(domain.Money{Amount: 20000, Currency: domain.UAH})

	totals, err := accounting.ComputeTotals(e, table, domain.UAH)
	require.NoError(t, err)

	assert.Equal(t, 0.0, totals.Accruals.Amount)
	assert.Equal(t, 0.0, totals.Deductions.Amount)
	assert.Equal(t, domain.UAH, totals.Accruals.Currency)
	assert.InDelta(t, 20000, totals.Gross, tolerance)
	assert.InDelta(t, 20000, totals.Net[domain.UAH], tolerance)
	assert.InDelta(t, 500, totals.Net[domain.USD], tolerance)
	assert.InDelta(t, 400, totals.Net[domain.EUR], tolerance)
}

func TestComputeTotals_AccrualAndDeductionInSalaryCurrency(t *testing.T) {
	// Deductions are stored as positive magnitudes: a 40 deduction is the -40 of a +100/-40 = +60 change.
	table := uahTable(map[domain.Currency]float64{domain.USD: 0.025, domain.EUR: 0.02})
	e := employee(domain.Money{Amount: 1500, Currency: domain.USD},
		item("bonus", domain.Accrual, 100, domain.USD),
		item("tax", domain.Deduction, 40, domain.USD),
	)

	totals, err := accounting.ComputeTotals(e, table, domain.UAH)
	require.NoError(t, err)
	assert.InDelta(t, 1560, totals.Net[domain.USD], tolerance)
	assert.InDelta(t, 1600, totals.Gross, tolerance)
}

func TestComputeTotals_ConcreteScenario(t *testing.T) {
	// 1 UAH = 0.025 USD (40 UAH per dollar) and 1/43 EUR.
	table := uahTable(map[domain.Currency]float64{domain.USD: 1.0 / 40, domain.EUR: 1.0 / 43})
	e := employee(domain.Money{Amount: 20000, Currency: domain.UAH},
		item("bonus", domain.Accrual, 100, domain.USD),
		item("fine", domain.Deduction, 500, domain.UAH),
	)

	totals, err := accounting.ComputeTotals(e, table, domain.UAH)
	require.NoError(t, err)

	assert.InDelta(t, 4000, totals.Accruals.Amount, 1e-6)
	assert.InDelta(t, 500, totals.Deductions.Amount, tolerance)
	assert.InDelta(t, 24000, totals.Gross, 1e-6)
	assert.InDelta(t, 23500, totals.NetBase, 1e-6)
	assert.InDelta(t, 23500, totals.Net[domain.UAH], 1e-6)
	assert.InDelta(t, 587.5, totals.Net[domain.USD], 1e-6)
	assert.InDelta(t, 23500.0/43, totals.Net[domain.EUR], 1e-6)
}

func TestComputeTotals_LiteralRateValues(t *testing.T) {
	// Same roster with rates read literally as units of currency per one UAH.
	table := uahTable(map[domain.Currency]float64{domain.UAH: 1, domain.USD: 40, domain.EUR: 43})
	e := employee(domain.Money{Amount: 20000, Currency: domain.UAH},
		item("bonus", domain.Accrual, 100, domain.USD),
		item("fine", domain.Deduction, 500, domain.UAH),
	)

	totals, err := accounting.ComputeTotals(e, table, domain.UAH)
	require.NoError(t, err)

	netBase := 20000 + 100.0/40 - 500
	assert.InDelta(t, netBase, totals.NetBase, tolerance)
	assert.InDelta(t, netBase*40, totals.Net[domain.USD], 1e-6)
	assert.InDelta(t, netBase*43, totals.Net[domain.EUR], 1e-6)
}

func TestComputeTotals_NoTable(t *testing.T) {
	e := employee(domain.Money{Amount: 1000, Currency: domain.EUR},
		item("bonus", domain.Accrual, 50, domain.USD),
	)

	totals, err := accounting.ComputeTotals(e, nil, domain.UAH)
	require.NoError(t, err)
	for _, c := range domain.SupportedCurrencies() {
		assert.InDelta(t, 1050, totals.Net[c], tolerance)
	}
}

func TestComputeTotals_IsDeterministic(t *testing.T) {
	table := uahTable(map[domain.Currency]float64{domain.USD: 0.0243, domain.EUR: 0.0227})
	e := employee(domain.Money{Amount: 31000, Currency: domain.UAH},
		item("a", domain.Accrual, 120, domain.EUR),
		item("b", domain.Deduction, 15, domain.USD),
	)

	first, err := accounting.ComputeTotals(e, table, domain.UAH)
	require.NoError(t, err)
	second, err := accounting.ComputeTotals(e, table, domain.UAH)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, e.Items, 2)
}

func TestComputeTotals_InvalidRatePropagates(t *testing.T) {
	table := uahTable(map[domain.Currency]float64{domain.EUR: 0.0227})
	e := employee(domain.Money{Amount: 100, Currency: domain.UAH},
		item("bonus", domain.Accrual, 10, domain.USD),
	)

	_, err := accounting.ComputeTotals(e, table, domain.UAH)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
	assert.Contains(t, err.Error(), "bonus")
}

func TestAggregate_EmptyRoster(t *testing.T) {
	company, err := accounting.Aggregate(nil, uahTable(nil), domain.UAH)
	require.NoError(t, err)
	assert.Equal(t, 0, company.EmployeeCount)
	for _, c := range domain.SupportedCurrencies() {
		amount, ok := company.Net[c]
		assert.True(t, ok)
		assert.Equal(t, 0.0, amount)
	}
}

func TestAggregate_SumsPerCurrency(t *testing.T) {
	table := uahTable(map[domain.Currency]float64{domain.USD: 0.025, domain.EUR: 0.02})
	roster := []domain.Employee{
		{EmployeeID: "a", Base: domain.Money{Amount: 20000, Currency: domain.UAH}},
		{EmployeeID: "b", Base: domain.Money{Amount: 1000, Currency: domain.USD},
			Items: []domain.LineItem{item("tax", domain.Deduction, 4000, domain.UAH)}},
	}

	company, err := accounting.Aggregate(roster, table, domain.UAH)
	require.NoError(t, err)
	assert.Equal(t, 2, company.EmployeeCount)
	// b: 1000 USD - 100 USD = 900 USD = 36000 UAH
	assert.InDelta(t, 56000, company.Net[domain.UAH], 1e-6)
	assert.InDelta(t, 1400, company.Net[domain.USD], 1e-6)
	assert.InDelta(t, 1120, company.Net[domain.EUR], 1e-6)
}

func TestAggregate_StopsOnInvalidRate(t *testing.T) {
	roster := []domain.Employee{
		{EmployeeID: "a", Base: domain.Money{Amount: 100, Currency: domain.USD}},
	}
	_, err := accounting.Aggregate(roster, uahTable(nil), domain.UAH)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}
