package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"chart-composer/internal/domain"
)

func TestFetchCatalogAssignsIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"ema": {"description": "Exponential Moving Average", "position": "on_chart",
				"parameters": {"length": {"default": 9, "type": "int", "description": "Period"}},
				"output": {"value": {"description": "EMA line", "type": "float"}}},
			"stochastic": {"description": "Stochastic Oscillator", "position": "below",
				"parameters": {}, "output": {}}
		}`))
	}))
	defer srv.Close()

	client := NewCatalogClient(testTracer(), srv.URL)
	catalog, err := client.FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(catalog))
	}

	ema := catalog["ema"]
	if ema.ID != "ema" {
		t.Fatalf("expected map key copied into ID, got %q", ema.ID)
	}
	if ema.Placement != domain.PlacementOnChart {
		t.Fatalf("unexpected placement %q", ema.Placement)
	}
	if catalog["stochastic"].Placement != domain.PlacementBelow {
		t.Fatalf("unexpected placement %q", catalog["stochastic"].Placement)
	}
}

func TestFetchCatalogFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewCatalogClient(testTracer(), srv.URL)
	catalog, err := client.FetchCatalog(context.Background())
	if err == nil {
		t.Fatal("expected error alongside the fallback")
	}
	if !domain.IsFetchError(err) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	// Degraded mode still serves the built-in set.
	for _, id := range []string{"sma", "rsi", "macd", "bollinger_band"} {
		if _, ok := catalog[id]; !ok {
			t.Fatalf("fallback catalog missing %q", id)
		}
	}
}

func TestFallbackCatalogShape(t *testing.T) {
	catalog := FallbackCatalog()

	macd := catalog["macd"]
	if macd.Placement != domain.PlacementBelow {
		t.Fatalf("macd must render below the chart, got %q", macd.Placement)
	}
	for _, field := range []string{"value", "signal", "histogram"} {
		if _, ok := macd.Outputs[field]; !ok {
			t.Fatalf("macd missing output %q", field)
		}
	}

	bb := catalog["bollinger_band"]
	if bb.Placement != domain.PlacementOnChart {
		t.Fatalf("bollinger bands overlay the price pane, got %q", bb.Placement)
	}
	if _, ok := bb.Parameters["std"]; !ok {
		t.Fatal("bollinger bands missing std parameter")
	}
}
