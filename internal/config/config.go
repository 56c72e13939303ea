package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/stepfolio/stepfolio/internal/rates"
)

const (
	defaultAppName       = "Stepfolio"
	defaultAppEnv        = "development"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultShutdownDelay = 10 * time.Second
	defaultPriceCacheTTL = 5 * time.Minute
	defaultMarketBaseURL = "https://api.coingecko.com/api/v3"

	priceTTLSecondsEnvVar  = "PRICE_CACHE_TTL_SECONDS"
	priceTTLDurEnvVar      = "PRICE_CACHE_TTL"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
	exchangeRatesEnvVar    = "EXCHANGE_RATES"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName        string
	AppEnv         string
	Port           string
	LogLevel       string
	DatabaseURL    string
	RedisURL       string
	MarketBaseURL  string
	ShutdownPeriod time.Duration
	PriceCacheTTL  time.Duration
	ExchangeRates  rates.Table
}

// Load reads configuration values from the environment and populates a Config
// instance. DATABASE_URL and REDIS_URL may be left unset outside production,
// in which case the service runs against in-memory stores.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		AppEnv:         getEnv("APP_ENV", defaultAppEnv),
		Port:           getEnv("PORT", defaultPort),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		MarketBaseURL:  getEnv("MARKET_BASE_URL", defaultMarketBaseURL),
		ShutdownPeriod: defaultShutdownDelay,
		PriceCacheTTL:  defaultPriceCacheTTL,
		ExchangeRates:  rates.Default(),
	}

	if v := os.Getenv(shutdownSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownSecondsEnvVar, err)
		}
		cfg.ShutdownPeriod = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(shutdownDurationEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", shutdownDurationEnvVar, err)
		}
		cfg.ShutdownPeriod = d
	}

	if v := os.Getenv(priceTTLSecondsEnvVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", priceTTLSecondsEnvVar, err)
		}
		cfg.PriceCacheTTL = time.Duration(seconds) * time.Second
	} else if v := os.Getenv(priceTTLDurEnvVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", priceTTLDurEnvVar, err)
		}
		cfg.PriceCacheTTL = d
	}

	if v := os.Getenv(exchangeRatesEnvVar); v != "" {
		var overrides map[string]float64
		if err := json.Unmarshal([]byte(v), &overrides); err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", exchangeRatesEnvVar, err)
		}
		table, err := rates.New(overrides)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", exchangeRatesEnvVar, err)
		}
		cfg.ExchangeRates = table
	}

	if !cfg.IsDev() {
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
		if cfg.RedisURL == "" {
			return Config{}, fmt.Errorf("REDIS_URL must be set when APP_ENV=%s", cfg.AppEnv)
		}
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// IsDev reports whether the configured environment is a development one.
func (c Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
