package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"chart-composer/internal/domain"
)

const (
	defaultPriceAPIURL   = "https://dev.api.tusta.co/charts/get_csv_data"
	defaultCatalogAPIURL = "https://dev.api.tusta.co/charts/get_all_indicators"
	defaultCalcAPIURL    = "https://dev.api.tusta.co/charts/calculate_indicators_csv"
)

type Config struct {
	PriceAPIURL   string
	CatalogAPIURL string
	CalcAPIURL    string
	RedisURL      string

	Symbol        string
	Timeframe     string
	ChartTitle    string
	BarsCacheSecs int

	HTTPPort int
}

func Load() *Config {
	cfg := &Config{
		PriceAPIURL:   strings.TrimSpace(os.Getenv("PRICE_API_URL")),
		CatalogAPIURL: strings.TrimSpace(os.Getenv("CATALOG_API_URL")),
		CalcAPIURL:    strings.TrimSpace(os.Getenv("CALC_API_URL")),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	if cfg.PriceAPIURL == "" {
		cfg.PriceAPIURL = defaultPriceAPIURL
	}
	if cfg.CatalogAPIURL == "" {
		cfg.CatalogAPIURL = defaultCatalogAPIURL
	}
	if cfg.CalcAPIURL == "" {
		cfg.CalcAPIURL = defaultCalcAPIURL
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	cfg.Symbol = strings.TrimSpace(os.Getenv("CHART_SYMBOL"))
	if cfg.Symbol == "" {
		cfg.Symbol = "3045"
	}

	cfg.Timeframe = strings.TrimSpace(os.Getenv("CHART_TIMEFRAME"))
	if cfg.Timeframe == "" {
		cfg.Timeframe = "1m"
	}
	if !domain.IsSupportedTimeframe(cfg.Timeframe) {
		log.Printf("Warning: unsupported CHART_TIMEFRAME=%q, defaulting to 1m", cfg.Timeframe)
		cfg.Timeframe = "1m"
	}

	cfg.ChartTitle = strings.TrimSpace(os.Getenv("CHART_TITLE"))
	if cfg.ChartTitle == "" {
		cfg.ChartTitle = "Nifty 50 Index"
	}

	cfg.BarsCacheSecs = 60
	if v := strings.TrimSpace(os.Getenv("BARS_CACHE_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.BarsCacheSecs = n
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	return cfg
}
