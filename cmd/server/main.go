package main

import (
	"context"
	"log"
	"net/http"
	"os"
	ossignal "os/signal"
	"strconv"
	"syscall"
	"time"

	"chart-composer/internal/cache"
	"chart-composer/internal/config"
	"chart-composer/internal/handler"
	"chart-composer/internal/job"
	"chart-composer/internal/provider"
	"chart-composer/internal/service"
	"chart-composer/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "chart-composer/docs"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initRedisFunc  = cache.InitRedis
	initTracerFunc = tracing.InitTracer

	newPriceClientFunc = func(tracer trace.Tracer, baseURL string) service.PriceSource {
		return provider.NewPriceClient(tracer, baseURL)
	}
	newCatalogClientFunc = func(tracer trace.Tracer, baseURL string) service.CatalogSource {
		return provider.NewCatalogClient(tracer, baseURL)
	}
	newCalcClientFunc = func(tracer trace.Tracer, baseURL string) service.Calculator {
		return provider.NewCalcClient(tracer, baseURL)
	}
	newChartServiceFunc    = service.NewChartService
	newBarRefresherFunc    = job.NewBarRefresher
	startBarRefresherFunc  = func(r *job.BarRefresher, ctx context.Context) { go r.Start(ctx) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default

	setupSignalNotify      = ossignal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Chart Composer API
// @version         1.0
// @description     Candlestick chart option synthesis service with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Redis
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create providers and the chart service
	prices := newPriceClientFunc(tracer, cfg.PriceAPIURL)
	catalog := newCatalogClientFunc(tracer, cfg.CatalogAPIURL)
	calc := newCalcClientFunc(tracer, cfg.CalcAPIURL)
	chartService := newChartServiceFunc(
		tracer,
		prices,
		catalog,
		calc,
		cache.Client,
		cfg.Symbol,
		cfg.ChartTitle,
		time.Duration(cfg.BarsCacheSecs)*time.Second,
	)

	// Start the bar cache refresher (stopped by ctx cancel)
	refresher := newBarRefresherFunc(tracer, chartService, cfg.Timeframe, time.Duration(cfg.BarsCacheSecs)*time.Second)
	startBarRefresherFunc(refresher, ctx)

	// Create handlers and routes
	h := newHandlerFunc(tracer, chartService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("chart-composer"))
	r.Use(cors.Default())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
