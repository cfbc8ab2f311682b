// Package provider holds the HTTP clients for the three external
// collaborators: price history, the indicator catalog, and the indicator
// calculation service.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"chart-composer/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultHTTPTimeout = 15 * time.Second

// apiBar is the wire shape of one price row. Time is an RFC-1123-style
// string ("Fri, 12 Jan 2024 15:30:00 GMT").
type apiBar struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

type PriceClient struct {
	tracer  trace.Tracer
	baseURL string
	client  *http.Client
}

func NewPriceClient(tracer trace.Tracer, baseURL string) *PriceClient {
	return &PriceClient{
		tracer:  tracer,
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// FetchBars loads the full bar history for a timeframe. Timestamps are
// decomposed with explicit UTC field extraction so a client in any
// timezone sees the same date/time labels.
func (p *PriceClient) FetchBars(ctx context.Context, timeframe string) ([]domain.Bar, error) {
	ctx, span := p.tracer.Start(ctx, "provider.fetch-bars")
	defer span.End()
	span.SetAttributes(attribute.String("timeframe", timeframe))

	url := p.baseURL
	if timeframe != "" {
		url += "?interval=" + timeframe
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{Endpoint: "prices", Err: err}
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Endpoint: "prices", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{Endpoint: "prices", Status: resp.StatusCode}
	}

	var raw []apiBar
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &domain.FetchError{Endpoint: "prices", Err: fmt.Errorf("decode: %w", err)}
	}
	if len(raw) == 0 {
		return nil, &domain.FetchError{Endpoint: "prices", Err: fmt.Errorf("empty price response")}
	}

	bars := make([]domain.Bar, 0, len(raw))
	for _, item := range raw {
		ts, err := parseBarTime(item.Time)
		if err != nil {
			return nil, &domain.FetchError{Endpoint: "prices", Err: fmt.Errorf("parse time %q: %w", item.Time, err)}
		}
		bar := domain.Bar{
			Date:   ts.Format("2006-01-02"),
			Open:   item.Open,
			High:   item.High,
			Low:    item.Low,
			Close:  item.Close,
			Volume: item.Volume,
		}
		// Midnight timestamps are daily bars; everything else keeps the
		// intraday clock for axis labels.
		if ts.Hour() != 0 || ts.Minute() != 0 {
			bar.Time = ts.Format("15:04")
		}
		bars = append(bars, bar)
	}

	span.SetAttributes(attribute.Int("bars", len(bars)))
	return bars, nil
}

var barTimeLayouts = []string{
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339,
}

func parseBarTime(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range barTimeLayouts {
		ts, err := time.Parse(layout, s)
		if err == nil {
			return ts.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
