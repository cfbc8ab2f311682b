package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"chart-composer/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// calcIndicator is one indicator request row. The "source" parameter is
// lifted out of the parameter map into its own field, which is what the
// calculation service expects.
type calcIndicator struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Source     string         `json:"source"`
	Parameters map[string]any `json:"parameters"`
}

type calcRequest struct {
	Symbol     string          `json:"symbol"`
	Timeframe  string          `json:"timeframe"`
	Indicators []calcIndicator `json:"indicators"`
}

type calcResponse struct {
	Indicators map[string]any `json:"indicators"`
}

type CalcClient struct {
	tracer  trace.Tracer
	baseURL string
	client  *http.Client
}

func NewCalcClient(tracer trace.Tracer, baseURL string) *CalcClient {
	return &CalcClient{
		tracer:  tracer,
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
	}
}

// Calculate posts the active selections and returns the raw per-indicator
// payload, untyped: response keys and shapes vary by deployment and are
// resolved by the normalizer.
func (c *CalcClient) Calculate(ctx context.Context, symbol, timeframe string, active []domain.SelectedIndicator) (map[string]any, error) {
	ctx, span := c.tracer.Start(ctx, "provider.calculate-indicators")
	defer span.End()
	span.SetAttributes(
		attribute.String("symbol", symbol),
		attribute.String("timeframe", timeframe),
		attribute.Int("indicators", len(active)),
	)

	body := calcRequest{Symbol: symbol, Timeframe: timeframe}
	for _, sel := range active {
		row := calcIndicator{
			Name:       sel.DisplayName,
			Type:       sel.ID,
			Source:     "close",
			Parameters: make(map[string]any, len(sel.ParameterValues)),
		}
		for name, value := range sel.ParameterValues {
			if name == "source" {
				if s, ok := value.(string); ok {
					row.Source = s
				}
				continue
			}
			row.Parameters[name] = value
		}
		body.Indicators = append(body.Indicators, row)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &domain.FetchError{Endpoint: "calculate", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, &domain.FetchError{Endpoint: "calculate", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Endpoint: "calculate", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.FetchError{Endpoint: "calculate", Status: resp.StatusCode}
	}

	var decoded calcResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &domain.FetchError{Endpoint: "calculate", Err: fmt.Errorf("decode: %w", err)}
	}
	if decoded.Indicators == nil {
		return nil, &domain.FetchError{Endpoint: "calculate", Err: fmt.Errorf("response missing indicators")}
	}
	return decoded.Indicators, nil
}
