package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chart-composer/internal/domain"
)

func TestCalculateRequestShape(t *testing.T) {
	var got calcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"indicators": {"sma": {"value": [1, 2, 3]}}}`))
	}))
	defer srv.Close()

	client := NewCalcClient(testTracer(), srv.URL)
	active := []domain.SelectedIndicator{{
		ID:          "sma",
		DisplayName: "Simple Moving Average",
		ParameterValues: map[string]any{
			"length": 20.0,
			"source": "open",
		},
		Enabled: true,
	}}

	payload, err := client.Calculate(context.Background(), "3045", "1m", active)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if got.Symbol != "3045" || got.Timeframe != "1m" {
		t.Fatalf("unexpected request header: %+v", got)
	}
	if len(got.Indicators) != 1 {
		t.Fatalf("expected one indicator row, got %d", len(got.Indicators))
	}
	row := got.Indicators[0]
	if row.Type != "sma" || row.Name != "Simple Moving Average" {
		t.Fatalf("unexpected row identity: %+v", row)
	}
	// "source" leaves the parameter map and becomes a top-level field.
	if row.Source != "open" {
		t.Fatalf("expected lifted source=open, got %q", row.Source)
	}
	if _, ok := row.Parameters["source"]; ok {
		t.Fatal("source must not stay in the parameter map")
	}
	if row.Parameters["length"] != 20.0 {
		t.Fatalf("expected length forwarded, got %v", row.Parameters)
	}

	if _, ok := payload["sma"]; !ok {
		t.Fatalf("expected raw sma payload, got %v", payload)
	}
}

func TestCalculateDefaultSource(t *testing.T) {
	var got calcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"indicators": {}}`))
	}))
	defer srv.Close()

	client := NewCalcClient(testTracer(), srv.URL)
	active := []domain.SelectedIndicator{{ID: "rsi", DisplayName: "RSI", Enabled: true}}

	if _, err := client.Calculate(context.Background(), "3045", "1m", active); err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if got.Indicators[0].Source != "close" {
		t.Fatalf("expected default source close, got %q", got.Indicators[0].Source)
	}
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"upstream failure", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}},
		{"missing indicators key", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}},
		{"bad json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`nope`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client := NewCalcClient(testTracer(), srv.URL)
			_, err := client.Calculate(context.Background(), "3045", "1m", nil)
			if !domain.IsFetchError(err) {
				t.Fatalf("expected FetchError, got %v", err)
			}
		})
	}
}
