package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"chart-composer/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CatalogClient struct {
	tracer  trace.Tracer
	baseURL string
	client  *http.Client
}

func NewCatalogClient(tracer trace.Tracer, baseURL string) *CatalogClient {
	return &CatalogClient{
		tracer:  tracer,
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// FetchCatalog loads the indicator descriptors. On any failure it returns
// the built-in fallback catalog together with the error, so the caller can
// keep the UI usable in degraded mode while still surfacing the failure.
func (c *CatalogClient) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	ctx, span := c.tracer.Start(ctx, "provider.fetch-catalog")
	defer span.End()

	catalog, err := c.fetch(ctx)
	if err != nil {
		span.SetAttributes(attribute.Bool("fallback", true))
		return FallbackCatalog(), err
	}
	span.SetAttributes(attribute.Int("indicators", len(catalog)))
	return catalog, nil
}

func (c *CatalogClient) fetch(ctx context.Context) (domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, &domain.FetchError{Endpoint: "catalog", Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Endpoint: "catalog", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{Endpoint: "catalog", Status: resp.StatusCode}
	}

	var catalog domain.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return nil, &domain.FetchError{Endpoint: "catalog", Err: fmt.Errorf("decode: %w", err)}
	}
	for id, desc := range catalog {
		desc.ID = id
		catalog[id] = desc
	}
	return catalog, nil
}

// FallbackCatalog is the minimal hard-coded descriptor set used when the
// catalog service is unreachable, enough to keep the common indicators
// selectable offline.
func FallbackCatalog() domain.Catalog {
	lengthParam := domain.ParamSpec{Default: float64(14), Type: "int", Description: "Period length"}
	sourceParam := domain.ParamSpec{
		Default:     "close",
		Type:        "str",
		Description: "Source data",
		Options:     []string{"open", "high", "low", "close"},
	}
	valueOutput := map[string]domain.OutputSpec{
		"value": {Description: "Indicator line", Type: "float"},
	}

	return domain.Catalog{
		"sma": {
			ID:          "sma",
			Description: "Simple Moving Average",
			Placement:   domain.PlacementOnChart,
			Parameters:  map[string]domain.ParamSpec{"length": lengthParam, "source": sourceParam},
			Outputs:     valueOutput,
		},
		"rsi": {
			ID:          "rsi",
			Description: "Relative Strength Index",
			Placement:   domain.PlacementBelow,
			Parameters:  map[string]domain.ParamSpec{"length": lengthParam, "source": sourceParam},
			Outputs:     valueOutput,
		},
		"macd": {
			ID:          "macd",
			Description: "Moving Average Convergence Divergence",
			Placement:   domain.PlacementBelow,
			Parameters: map[string]domain.ParamSpec{
				"fast_length":   {Default: float64(12), Type: "int", Description: "Fast EMA Length"},
				"slow_length":   {Default: float64(26), Type: "int", Description: "Slow EMA Length"},
				"signal_length": {Default: float64(9), Type: "int", Description: "Signal Length"},
				"source":        sourceParam,
			},
			Outputs: map[string]domain.OutputSpec{
				"value":     {Description: "MACD Line", Type: "float"},
				"signal":    {Description: "Signal Line", Type: "float"},
				"histogram": {Description: "Histogram", Type: "float"},
			},
		},
		"bollinger_band": {
			ID:          "bollinger_band",
			Description: "Bollinger Bands",
			Placement:   domain.PlacementOnChart,
			Parameters: map[string]domain.ParamSpec{
				"length": {Default: float64(20), Type: "int", Description: "Period length"},
				"std":    {Default: float64(2), Type: "float", Description: "Standard deviations"},
				"source": sourceParam,
			},
			Outputs: map[string]domain.OutputSpec{
				"upper_band":  {Description: "Upper Band", Type: "float"},
				"middle_band": {Description: "Middle Band", Type: "float"},
				"lower_band":  {Description: "Lower Band", Type: "float"},
			},
		},
	}
}
