package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"chart-composer/internal/config"
	"chart-composer/internal/domain"
	"chart-composer/internal/job"
	"chart-composer/internal/service"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := stubServerDeps()
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func stubServerDeps() func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitRedis := initRedisFunc
	origInitTracer := initTracerFunc
	origNewPriceClient := newPriceClientFunc
	origNewCatalogClient := newCatalogClientFunc
	origNewCalcClient := newCalcClientFunc
	origStartRefresher := startBarRefresherFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{
			Symbol:        "3045",
			Timeframe:     "1m",
			ChartTitle:    "Test Chart",
			BarsCacheSecs: 1,
			HTTPPort:      8080,
		}
	}
	initRedisFunc = func(context.Context) {}
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newPriceClientFunc = func(trace.Tracer, string) service.PriceSource { return stubBarSource{} }
	newCatalogClientFunc = func(trace.Tracer, string) service.CatalogSource { return stubCatalogSource{} }
	newCalcClientFunc = func(trace.Tracer, string) service.Calculator { return stubCalculator{} }
	startBarRefresherFunc = func(*job.BarRefresher, context.Context) {}
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) {}
	startHTTPServerFunc = func(*http.Server) error { return http.ErrServerClosed }
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		startBarRefresherFunc = origStartRefresher
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initRedisFunc = origInitRedis
		initTracerFunc = origInitTracer
		newPriceClientFunc = origNewPriceClient
		newCatalogClientFunc = origNewCatalogClient
		newCalcClientFunc = origNewCalcClient
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	}
}

type stubBarSource struct{}

func (stubBarSource) FetchBars(ctx context.Context, timeframe string) ([]domain.Bar, error) {
	return []domain.Bar{{Date: "2024-01-12", Time: "09:15", Open: 1, High: 2, Low: 1, Close: 2, Volume: 100}}, nil
}

type stubCatalogSource struct{}

func (stubCatalogSource) FetchCatalog(ctx context.Context) (domain.Catalog, error) {
	return domain.Catalog{}, nil
}

type stubCalculator struct{}

func (stubCalculator) Calculate(ctx context.Context, symbol, timeframe string, active []domain.SelectedIndicator) (map[string]any, error) {
	return map[string]any{}, nil
}
