package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is a row of exchange_rate_snapshots. Rates is stored as JSONB keyed by currency code.
type RateSnapshot struct {
	SnapshotID   string                     `db:"snapshot_id"`
	BaseCurrency string                     `db:"base_currency"`
	Source       string                     `db:"source"`
	Rates        map[string]decimal.Decimal `db:"rates"`
	CapturedAt   time.Time                  `db:"captured_at"`
}
