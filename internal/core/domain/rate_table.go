package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
)

// RateTable is an immutable snapshot of conversion factors.
// Rates[c] is the number of units of c equal to one unit of Base.
// The base currency itself is implied to be 1 and need not be stored.
type RateTable struct {
	SnapshotID string
	Base       Currency
	Source     string
	CapturedAt time.Time
	rates      map[Currency]float64
}

// NewRateTable copies rates into a new table. Use Validate to check it is complete.
func NewRateTable(snapshotID string, base Currency, source string, capturedAt time.Time, rates map[Currency]float64) *RateTable {
	cp := make(map[Currency]float64, len(rates))
	for c, r := range rates {
		cp[c] = r
	}
	return &RateTable{
		SnapshotID: snapshotID,
		Base:       base,
		Source:     source,
		CapturedAt: capturedAt,
		rates:      cp,
	}
}

// RateOf returns the rate for c. The base currency always yields 1.
func (t *RateTable) RateOf(c Currency) (float64, error) {
	if c == t.Base {
		return 1, nil
	}
	r, ok := t.rates[c]
	if !ok {
		return 0, fmt.Errorf("%w: no rate for %s", apperrors.ErrInvalidRate, c)
	}
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("%w: rate for %s is %v", apperrors.ErrInvalidRate, c, r)
	}
	return r, nil
}

// Rates returns a copy of every supported currency's rate, including the implied base rate.
// Currencies without a usable rate are omitted.
func (t *RateTable) Rates() map[Currency]float64 {
	out := make(map[Currency]float64, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		if r, err := t.RateOf(c); err == nil {
			out[c] = r
		}
	}
	return out
}

// Validate checks that the table carries a usable rate for every supported currency.
func (t *RateTable) Validate() error {
	if !t.Base.IsValid() {
		return fmt.Errorf("%w: base '%s'", apperrors.ErrUnknownCurrency, t.Base)
	}
	for _, c := range supportedCurrencies {
		if _, err := t.RateOf(c); err != nil {
			return err
		}
	}
	return nil
}

// IsStale reports whether the table was captured more than maxAge before now.
func (t *RateTable) IsStale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(t.CapturedAt) > maxAge
}
