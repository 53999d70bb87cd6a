package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateSnapshotMapping_PreservesRates(t *testing.T) {
	captured := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	table := domain.NewRateTable("snap_1", domain.UAH, "primary", captured,
		map[domain.Currency]float64{domain.USD: 0.0243, domain.EUR: 1.0 / 43})

	model := ToModelRateSnapshot(table)
	assert.NotContains(t, model.Rates, "UAH")
	assert.Equal(t, "0.0243", model.Rates["USD"].String())

	back := ToDomainRateTable(model)
	require.NoError(t, back.Validate())
	assert.Equal(t, table.Rates(), back.Rates())
	assert.Equal(t, "snap_1", back.SnapshotID)
	assert.Equal(t, captured, back.CapturedAt)
}

func TestEmployeeMapping_KeepsItemOrder(t *testing.T) {
	e := domain.Employee{
		EmployeeID: "e",
		Name:       "Olena",
		Base:       domain.Money{Amount: 20000.5, Currency: domain.UAH},
		Items: []domain.LineItem{
			{LineItemID: "b", EmployeeID: "e", Kind: domain.Deduction, Label: "fine", Value: domain.Money{Amount: -12.25, Currency: domain.EUR}},
			{LineItemID: "a", EmployeeID: "e", Kind: domain.Accrual, Label: "bonus", Value: domain.Money{Amount: 100, Currency: domain.USD}},
		},
	}

	model := ToModelEmployee(e)
	assert.Equal(t, "20000.5", model.BaseAmount.String())

	items := []models.LineItem{ToModelLineItem(e.Items[0], 0), ToModelLineItem(e.Items[1], 1)}
	assert.Equal(t, 1, items[1].Position)

	back := ToDomainEmployee(model, items)
	assert.Equal(t, e, back)

	empty := ToDomainEmployee(model, nil)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}
