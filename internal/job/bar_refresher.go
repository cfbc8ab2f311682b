package job

import (
	"context"
	"log"
	"time"

	"chart-composer/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BarLoader is the slice of the chart service the refresher needs: loading
// bars writes through to the redis cache.
type BarLoader interface {
	Bars(ctx context.Context, timeframe string) ([]domain.Bar, error)
}

// BarRefresher keeps the bar cache warm for the configured timeframe so
// interactive chart requests rarely pay the upstream fetch.
type BarRefresher struct {
	tracer    trace.Tracer
	loader    BarLoader
	timeframe string
	interval  time.Duration
}

func NewBarRefresher(tracer trace.Tracer, loader BarLoader, timeframe string, interval time.Duration) *BarRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &BarRefresher{
		tracer:    tracer,
		loader:    loader,
		timeframe: timeframe,
		interval:  interval,
	}
}

// Start refreshes immediately, then on every tick. Blocks until ctx is
// cancelled.
func (r *BarRefresher) Start(ctx context.Context) {
	if r.loader == nil {
		log.Println("Bar refresher disabled: no bar loader")
		<-ctx.Done()
		return
	}

	log.Println("Bar refresher starting...")
	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Bar refresher stopped")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *BarRefresher) refresh(ctx context.Context) {
	ctx, span := r.tracer.Start(ctx, "job.refresh-bars")
	defer span.End()
	span.SetAttributes(attribute.String("timeframe", r.timeframe))

	if _, err := r.loader.Bars(ctx, r.timeframe); err != nil {
		log.Printf("bar refresh error for %s: %v", r.timeframe, err)
	}
}
