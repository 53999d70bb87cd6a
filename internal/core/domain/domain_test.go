package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    domain.Currency
		wantErr bool
	}{
		{name: "upper case", code: "USD", want: domain.USD},
		{name: "lower case is normalized", code: "eur", want: domain.EUR},
		{name: "surrounding spaces", code: " uah ", want: domain.UAH},
		{name: "unsupported code", code: "GBP", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCurrency(tt.code)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedCurrencies_ReturnsCopy(t *testing.T) {
	list := domain.SupportedCurrencies()
	list[0] = "XXX"
	assert.Equal(t, []domain.Currency{domain.UAH, domain.USD, domain.EUR}, domain.SupportedCurrencies())
	assert.Equal(t, "$", domain.USD.Info().Symbol)
	assert.Len(t, domain.ListCurrencyInfo(), 3)
}

func TestNewMoney(t *testing.T) {
	m, err := domain.NewMoney(-12.5, domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, domain.Money{Amount: -12.5, Currency: domain.EUR}, m)

	_, err = domain.NewMoney(10, domain.Currency("GBP"))
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	_, err = domain.NewMoney(math.Inf(1), domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = domain.NewMoney(math.NaN(), domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRateTable(t *testing.T) {
	captured := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rates := map[domain.Currency]float64{domain.USD: 0.025, domain.EUR: 0.023}
	table := domain.NewRateTable("snap", domain.UAH, "src", captured, rates)

	rates[domain.USD] = 99
	got, err := table.RateOf(domain.USD)
	require.NoError(t, err)
	assert.Equal(t, 0.025, got, "table must not observe later changes to the input map")

	base, err := table.RateOf(domain.UAH)
	require.NoError(t, err)
	assert.Equal(t, 1.0, base)

	require.NoError(t, table.Validate())
	assert.Equal(t, map[domain.Currency]float64{domain.UAH: 1, domain.USD: 0.025, domain.EUR: 0.023}, table.Rates())

	assert.False(t, table.IsStale(captured.Add(time.Hour), 2*time.Hour))
	assert.True(t, table.IsStale(captured.Add(3*time.Hour), 2*time.Hour))
}

func TestRateTable_Validate(t *testing.T) {
	incomplete := domain.NewRateTable("snap", domain.UAH, "src", time.Now(), map[domain.Currency]float64{domain.USD: 0.025})
	assert.ErrorIs(t, incomplete.Validate(), apperrors.ErrInvalidRate)

	infinite := domain.NewRateTable("snap", domain.UAH, "src", time.Now(), map[domain.Currency]float64{domain.USD: math.Inf(1), domain.EUR: 0.02})
	assert.ErrorIs(t, infinite.Validate(), apperrors.ErrInvalidRate)

	badBase := domain.NewRateTable("snap", domain.Currency("GBP"), "src", time.Now(), nil)
	assert.ErrorIs(t, badBase.Validate(), apperrors.ErrUnknownCurrency)
}

func TestEmployee_FindItem(t *testing.T) {
	e := domain.Employee{Items: []domain.LineItem{{LineItemID: "a"}, {LineItemID: "b"}}}
	assert.Equal(t, 1, e.FindItem("b"))
	assert.Equal(t, -1, e.FindItem("z"))
	assert.True(t, domain.Accrual.IsValid())
	assert.False(t, domain.LineItemKind("BONUS").IsValid())
}
