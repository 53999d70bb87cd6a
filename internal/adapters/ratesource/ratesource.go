// Package ratesource fetches exchange rate tables over HTTP from an ordered list of endpoints.
package ratesource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/payroll_app/internal/apperrors"
	"github.com/SscSPs/payroll_app/internal/core/domain"
	"github.com/SscSPs/payroll_app/internal/core/ports/clients"
	"github.com/SscSPs/payroll_app/internal/middleware"
	"github.com/go-resty/resty/v2"
)

// RatesAnswer is the JSON document every endpoint must serve:
//
//	{"base": "UAH", "rates": {"USD": 0.0243, "EUR": 0.0227}}
//
// Rates are units of the keyed currency per one unit of base. Unknown currencies are ignored.
type RatesAnswer struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

type httpRateSource struct {
	urls   []string
	client *resty.Client
	now    func() time.Time
}

// New returns a RateSource that asks urls in order and uses the first complete answer.
func New(urls []string, timeout time.Duration) clients.RateSource {
	return &httpRateSource{
		urls:   append([]string(nil), urls...),
		client: resty.New().SetTimeout(timeout).SetHeader("Accept", "application/json"),
		now:    time.Now,
	}
}

// FetchRates never merges answers: a source is either used whole or skipped.
func (s *httpRateSource) FetchRates(ctx context.Context, base domain.Currency) (*domain.RateTable, error) {
	if len(s.urls) == 0 {
		return nil, fmt.Errorf("%w: no rate sources configured", apperrors.ErrUpstream)
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	var errs []error
	for _, url := range s.urls {
		table, err := s.fetchOne(ctx, url, base)
		if err == nil {
			return table, nil
		}
		logger.Warn("Rate source rejected", slog.String("source", url), slog.String("error", err.Error()))
		errs = append(errs, fmt.Errorf("%s: %w", url, err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("%w: all rate sources failed: %w", apperrors.ErrUpstream, errors.Join(errs...))
}

func (s *httpRateSource) fetchOne(ctx context.Context, url string, base domain.Currency) (*domain.RateTable, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("base", base.String()).
		Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("rates request status: %d", resp.StatusCode())
	}

	var answer RatesAnswer
	if err := json.Unmarshal(resp.Body(), &answer); err != nil {
		return nil, fmt.Errorf("decoding rates: %w", err)
	}
	return toRateTable(answer, base, url, s.now())
}

// toRateTable keeps the supported currencies of answer and rejects it unless every one of them
// has a positive finite rate.
func toRateTable(answer RatesAnswer, base domain.Currency, source string, capturedAt time.Time) (*domain.RateTable, error) {
	if !strings.EqualFold(strings.TrimSpace(answer.Base), base.String()) {
		return nil, fmt.Errorf("%w: source reports base '%s', expected %s", apperrors.ErrInvalidRate, answer.Base, base)
	}

	normalized := make(map[domain.Currency]float64, len(answer.Rates))
	for code, rate := range answer.Rates {
		normalized[domain.Currency(strings.ToUpper(strings.TrimSpace(code)))] = rate
	}

	rates := make(map[domain.Currency]float64, len(domain.SupportedCurrencies()))
	for _, c := range domain.SupportedCurrencies() {
		if c == base {
			continue
		}
		rate, ok := normalized[c]
		if !ok {
			return nil, fmt.Errorf("%w: no rate for %s", apperrors.ErrInvalidRate, c)
		}
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("%w: rate for %s is %v", apperrors.ErrInvalidRate, c, rate)
		}
		rates[c] = rate
	}
	return domain.NewRateTable("", base, source, capturedAt.UTC(), rates), nil
}
