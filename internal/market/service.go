package market

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pricesCacheKey    = "market:prices:v1"
	historyCacheKeyFm = "market:history:v1:%s:%d"
)

// Service serves market data with a Redis cache in front of the provider and
// static fallback data behind it. Provider failures degrade to the fallback
// set rather than erroring.
type Service struct {
	source Source
	cache  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewService builds a market data service. cache may be nil, in which case
// every request goes to the provider.
func NewService(source Source, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *Service {
	return &Service{source: source, cache: cache, ttl: ttl, logger: logger}
}

// Prices returns market snapshots for the tracked coins.
func (s *Service) Prices(ctx context.Context) []Coin {
	var coins []Coin
	if s.cacheGet(ctx, pricesCacheKey, &coins) {
		return coins
	}

	coins, err := s.source.Markets(ctx, TrackedCoins)
	if err != nil {
		s.logger.Warn("market provider unavailable, serving fallback prices", "error", err)
		return FallbackCoins()
	}

	s.cacheSet(ctx, pricesCacheKey, coins)
	return coins
}

// History returns the market chart for one coin over the given number of days.
func (s *Service) History(ctx context.Context, id string, days int) History {
	key := fmt.Sprintf(historyCacheKeyFm, id, days)

	var history History
	if s.cacheGet(ctx, key, &history) {
		return history
	}

	history, err := s.source.MarketChart(ctx, id, days)
	if err != nil {
		s.logger.Warn("market provider unavailable, serving fallback history", "coin", id, "error", err)
		return FallbackHistory(id, days)
	}

	s.cacheSet(ctx, key, history)
	return history
}

func (s *Service) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	payload, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("market cache lookup failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		s.logger.Warn("market cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("market cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.logger.Warn("market cache write failed", "key", key, "error", err)
	}
}
