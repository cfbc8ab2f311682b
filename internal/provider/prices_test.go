package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chart-composer/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func testTracer() trace.Tracer {
	return trace.NewNoopTracerProvider().Tracer("provider-test")
}

func TestFetchBarsParsesUTCFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "1m" {
			t.Errorf("expected interval=1m, got %q", got)
		}
		w.Write([]byte(`[
			{"time": "Fri, 12 Jan 2024 09:15:00 GMT", "open": 100, "high": 102, "low": 99, "close": 101, "volume": 5000},
			{"time": "Sat, 13 Jan 2024 00:00:00 GMT", "open": 101, "high": 103, "low": 100, "close": 102, "volume": 6000}
		]`))
	}))
	defer srv.Close()

	client := NewPriceClient(testTracer(), srv.URL)
	bars, err := client.FetchBars(context.Background(), "1m")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}

	intraday := bars[0]
	if intraday.Date != "2024-01-12" || intraday.Time != "09:15" {
		t.Fatalf("unexpected intraday fields: %+v", intraday)
	}
	if intraday.Label() != "2024-01-12 09:15" {
		t.Fatalf("unexpected label %q", intraday.Label())
	}

	// Midnight timestamps are daily bars: no clock in the label.
	daily := bars[1]
	if daily.Date != "2024-01-13" || daily.Time != "" {
		t.Fatalf("unexpected daily fields: %+v", daily)
	}
}

func TestFetchBarsOffsetTimezone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 05:45 at +0530 is 00:15 UTC the same day.
		w.Write([]byte(`[{"time": "Fri, 12 Jan 2024 05:45:00 +0530", "open": 1, "high": 2, "low": 1, "close": 2, "volume": 10}]`))
	}))
	defer srv.Close()

	client := NewPriceClient(testTracer(), srv.URL)
	bars, err := client.FetchBars(context.Background(), "1m")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if bars[0].Date != "2024-01-12" || bars[0].Time != "00:15" {
		t.Fatalf("expected UTC field extraction, got %+v", bars[0])
	}
}

func TestFetchBarsErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"empty array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}},
		{"bad timestamp", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"time": "yesterday", "open": 1, "high": 1, "low": 1, "close": 1, "volume": 1}]`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client := NewPriceClient(testTracer(), srv.URL)
			_, err := client.FetchBars(context.Background(), "1m")
			if err == nil {
				t.Fatal("expected error")
			}
			if !domain.IsFetchError(err) {
				t.Fatalf("expected FetchError, got %T", err)
			}
		})
	}
}
