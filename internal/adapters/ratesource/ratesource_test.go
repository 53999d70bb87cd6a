package ratesource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, "UAH", r.URL.Query().Get("base"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestFetchRates_FirstCompleteSourceWins(t *testing.T) {
	primary, primaryHits := serve(t, http.StatusOK, `{"base":"UAH","rates":{"USD":0.0243,"EUR":0.0227,"PLN":0.1}}`)
	secondary, secondaryHits := serve(t, http.StatusOK, `{"base":"UAH","rates":{"USD":1,"EUR":1}}`)

	source := New([]string{primary.URL, secondary.URL}, time.Second)
	table, err := source.FetchRates(context.Background(), domain.UAH)

	require.NoError(t, err)
	assert.Equal(t, primary.URL, table.Source)
	assert.Equal(t, map[domain.Currency]float64{domain.UAH: 1, domain.USD: 0.0243, domain.EUR: 0.0227}, table.Rates())
	assert.EqualValues(t, 1, atomic.LoadInt32(primaryHits))
	assert.EqualValues(t, 0, atomic.LoadInt32(secondaryHits))
}

func TestFetchRates_FallsBackOnIncompleteOrFailingSource(t *testing.T) {
	failing, _ := serve(t, http.StatusInternalServerError, `oops`)
	incomplete, _ := serve(t, http.StatusOK, `{"base":"UAH","rates":{"USD":0.0243}}`)
	negative, _ := serve(t, http.StatusOK, `{"base":"UAH","rates":{"USD":-1,"EUR":0.02}}`)
	good, _ := serve(t, http.StatusOK, `{"base":"uah","rates":{"usd":0.025,"eur":0.02}}`)

	source := New([]string{failing.URL, incomplete.URL, negative.URL, good.URL}, time.Second)
	table, err := source.FetchRates(context.Background(), domain.UAH)

	require.NoError(t, err)
	assert.Equal(t, good.URL, table.Source)
	rate, err := table.RateOf(domain.USD)
	require.NoError(t, err)
	assert.Equal(t, 0.025, rate, "rates must come from a single source")
}

func TestFetchRates_AllSourcesFail(t *testing.T) {
	wrongBase, _ := serve(t, http.StatusOK, `{"base":"USD","rates":{"UAH":41,"EUR":0.92}}`)
	garbage, _ := serve(t, http.StatusOK, `not json`)

	source := New([]string{wrongBase.URL, garbage.URL}, time.Second)
	_, err := source.FetchRates(context.Background(), domain.UAH)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Contains(t, err.Error(), wrongBase.URL)
	assert.Contains(t, err.Error(), garbage.URL)
}

func TestFetchRates_NoSources(t *testing.T) {
	_, err := New(nil, time.Second).FetchRates(context.Background(), domain.UAH)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestToRateTable_ZeroRate(t *testing.T) {
	_, err := toRateTable(RatesAnswer{Base: "UAH", Rates: map[string]float64{"USD": 0, "EUR": 0.02}}, domain.UAH, "x", time.Now())
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}
