package mapping

import (
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelRateSnapshot converts a domain RateTable to a model RateSnapshot
func ToModelRateSnapshot(t *domain.RateTable) models.RateSnapshot {
	rates := make(map[string]decimal.Decimal)
	for c, r := range t.Rates() {
		if c == t.Base {
			continue
		}
		rates[c.String()] = decimal.NewFromFloat(r)
	}
	return models.RateSnapshot{
		SnapshotID:   t.SnapshotID,
		BaseCurrency: t.Base.String(),
		Source:       t.Source,
		Rates:        rates,
		CapturedAt:   t.CapturedAt,
	}
}

// ToDomainRateTable converts a model RateSnapshot to a domain RateTable
func ToDomainRateTable(m models.RateSnapshot) *domain.RateTable {
	rates := make(map[domain.Currency]float64, len(m.Rates))
	for code, r := range m.Rates {
		rates[domain.Currency(code)] = r.InexactFloat64()
	}
	return domain.NewRateTable(m.SnapshotID, domain.Currency(m.BaseCurrency), m.Source, m.CapturedAt, rates)
}
