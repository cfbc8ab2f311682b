package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"chart-composer/internal/chartspec"
	"chart-composer/internal/domain"
	"chart-composer/internal/indicator"
	"chart-composer/internal/provider"
	"chart-composer/internal/view"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type PriceSource interface {
	FetchBars(ctx context.Context, timeframe string) ([]domain.Bar, error)
}

type CatalogSource interface {
	FetchCatalog(ctx context.Context) (domain.Catalog, error)
}

type Calculator interface {
	Calculate(ctx context.Context, symbol, timeframe string, active []domain.SelectedIndicator) (map[string]any, error)
}

// ChartService wires the collaborators together: it owns the session
// registry, caches bar history in redis, memoizes the catalog for the
// process lifetime, runs calculations and hands everything to the
// synthesizer.
type ChartService struct {
	tracer     trace.Tracer
	prices     PriceSource
	catalogSrc CatalogSource
	calc       Calculator
	sessions   *view.Manager
	normalizer *indicator.Normalizer
	redis      *redis.Client

	symbol     string
	chartTitle string
	barsTTL    time.Duration

	mu      sync.Mutex
	catalog domain.Catalog
}

func NewChartService(
	tracer trace.Tracer,
	prices PriceSource,
	catalogSrc CatalogSource,
	calc Calculator,
	redisClient *redis.Client,
	symbol, chartTitle string,
	barsTTL time.Duration,
) *ChartService {
	return &ChartService{
		tracer:     tracer,
		prices:     prices,
		catalogSrc: catalogSrc,
		calc:       calc,
		sessions:   view.NewManager(),
		normalizer: indicator.NewNormalizer(nil),
		redis:      redisClient,
		symbol:     symbol,
		chartTitle: chartTitle,
		barsTTL:    barsTTL,
	}
}

func (s *ChartService) CreateSession() *view.Session {
	return s.sessions.Create(s.chartTitle)
}

func (s *ChartService) Session(id string) (*view.Session, bool) {
	return s.sessions.Get(id)
}

func (s *ChartService) DeleteSession(id string) {
	s.sessions.Delete(id)
}

// Catalog returns the descriptor set, fetching it once per process. A
// fetch failure leaves the fallback catalog in place but is not cached, so
// a later call can recover the real catalog.
func (s *ChartService) Catalog(ctx context.Context) domain.Catalog {
	s.mu.Lock()
	cached := s.catalog
	s.mu.Unlock()
	if cached != nil {
		return cached
	}

	_, span := s.tracer.Start(ctx, "chart-service.load-catalog")
	defer span.End()

	catalog, err := s.catalogSrc.FetchCatalog(ctx)
	if err != nil {
		log.Printf("catalog fetch failed, serving fallback: %v", err)
		if catalog == nil {
			catalog = provider.FallbackCatalog()
		}
		return catalog
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()
	return catalog
}

// Bars loads the price history for a timeframe, consulting the redis cache
// first. The series is replaced wholesale on every refetch.
func (s *ChartService) Bars(ctx context.Context, timeframe string) ([]domain.Bar, error) {
	ctx, span := s.tracer.Start(ctx, "chart-service.load-bars")
	defer span.End()
	span.SetAttributes(attribute.String("timeframe", timeframe))

	key := fmt.Sprintf("bars:%s:%s", s.symbol, timeframe)
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var bars []domain.Bar
			if err := json.Unmarshal(raw, &bars); err == nil && len(bars) > 0 {
				span.SetAttributes(attribute.Bool("cache_hit", true))
				return bars, nil
			}
		}
	}

	bars, err := s.prices.FetchBars(ctx, timeframe)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if raw, err := json.Marshal(bars); err == nil {
			if err := s.redis.Set(ctx, key, raw, s.barsTTL).Err(); err != nil {
				log.Printf("bar cache write failed: %v", err)
			}
		}
	}
	return bars, nil
}

// AddIndicator looks the id up in the catalog and adds it to the session
// with descriptor-default parameters.
func (s *ChartService) AddIndicator(ctx context.Context, sessionID, indicatorID string) error {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrUnknownSession
	}
	desc, ok := s.Catalog(ctx)[indicatorID]
	if !ok {
		return domain.ErrUnknownIndicator
	}
	sess.AddIndicator(desc)
	return nil
}

// SetParameter validates the parameter against the catalog descriptor
// before updating the selection.
func (s *ChartService) SetParameter(ctx context.Context, sessionID, indicatorID, name string, value any) error {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrUnknownSession
	}
	desc, ok := s.Catalog(ctx)[indicatorID]
	if !ok {
		return domain.ErrUnknownIndicator
	}
	return sess.SetParameter(desc, name, value)
}

// Calculate runs one user-triggered calculation for the session. The
// session's busy flag blocks duplicate submissions; the token drops stale
// completions; a failure keeps the previous results intact.
func (s *ChartService) Calculate(ctx context.Context, sessionID string) error {
	ctx, span := s.tracer.Start(ctx, "chart-service.calculate")
	defer span.End()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrUnknownSession
	}

	token, active, err := sess.BeginCalculation()
	if err != nil {
		return err
	}

	timeframe := sess.Timeframe()
	bars, err := s.Bars(ctx, timeframe)
	if err != nil {
		sess.CompleteCalculation(token, nil, err)
		return err
	}

	payload, err := s.calc.Calculate(ctx, s.symbol, timeframe, active)
	if err != nil {
		sess.CompleteCalculation(token, nil, err)
		return err
	}

	results := s.normalizer.Normalize(payload, s.Catalog(ctx), active, len(bars))
	span.SetAttributes(attribute.Int("results", len(results)))
	sess.CompleteCalculation(token, results, nil)
	return nil
}

// BuildChartSpec synthesizes the current chart option for the session. A
// price-fetch failure degrades to the empty spec rather than failing the
// request; the fetch error rides along for the UI to surface.
func (s *ChartService) BuildChartSpec(ctx context.Context, sessionID string) (chartspec.ChartSpec, error) {
	ctx, span := s.tracer.Start(ctx, "chart-service.build-spec")
	defer span.End()

	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return chartspec.ChartSpec{}, domain.ErrUnknownSession
	}

	snap := sess.Snapshot()
	bars, err := s.Bars(ctx, snap.Timeframe)
	if err != nil {
		return chartspec.Synthesize(nil, nil, nil, snap), err
	}

	spec := chartspec.Synthesize(bars, sess.Results(), s.Catalog(ctx), snap)
	return spec, nil
}
