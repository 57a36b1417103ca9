// Package rates implements domain.RateSource: a Redis-cached HTTP lookup
// against an external rate feed, falling back to fixed published rates when
// both the cache and the feed are unavailable.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/huuhoait/credit-structuring-core/domain"
)

// fallbackRates are the published rates used when neither the cache nor the
// feed can answer. They are not a substitute for a live feed in production;
// they exist so the rules engine never blocks on a single external call.
var fallbackRates = map[domain.BaseRateKind]float64{
	domain.BaseRatePrime:    0.0750,
	domain.BaseRateSOFR:     0.0520,
	domain.BaseRateTreasury: 0.0430,
}

const cacheTTL = 15 * time.Minute
const cacheKeyPrefix = "rate:"

// Source is the HTTP+Redis-backed domain.RateSource implementation.
type Source struct {
	logger     *zap.Logger
	httpClient *http.Client
	cache      *redis.Client
	feedURL    string
}

// Config configures a Source.
type Config struct {
	FeedURL      string
	RedisAddr    string
	RedisPassword string
	RedisDB      int
	Timeout      time.Duration
}

// New constructs a Source. When cfg.RedisAddr is empty no Redis client is
// created and the cache layer is a pass-through.
func New(logger *zap.Logger, cfg Config) *Source {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	return &Source{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		feedURL:    cfg.FeedURL,
	}
}

type feedResponse struct {
	Rate float64 `json:"rate"`
}

// GetBaseRate implements domain.RateSource. Lookup order: Redis cache, HTTP
// feed (populating the cache on success), fixed fallback table.
func (s *Source) GetBaseRate(ctx context.Context, kind domain.BaseRateKind) (float64, error) {
	key := cacheKeyPrefix + string(kind)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var rate float64
			if jsonErr := json.Unmarshal([]byte(cached), &rate); jsonErr == nil {
				return rate, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("rate cache read failed", zap.String("kind", string(kind)), zap.Error(err))
		}
	}

	rate, err := s.fetchFromFeed(ctx, kind)
	if err != nil {
		s.logger.Warn("rate feed unavailable, using fallback rate",
			zap.String("kind", string(kind)), zap.Error(err))
		fallback, ok := fallbackRates[kind]
		if !ok {
			return 0, fmt.Errorf("no fallback rate configured for %s: %w", kind, err)
		}
		return fallback, nil
	}

	if s.cache != nil {
		if data, marshalErr := json.Marshal(rate); marshalErr == nil {
			if setErr := s.cache.Set(ctx, key, data, cacheTTL).Err(); setErr != nil {
				s.logger.Warn("rate cache write failed", zap.String("kind", string(kind)), zap.Error(setErr))
			}
		}
	}

	return rate, nil
}

func (s *Source) fetchFromFeed(ctx context.Context, kind domain.BaseRateKind) (float64, error) {
	if s.feedURL == "" {
		return 0, fmt.Errorf("no rate feed configured")
	}

	url := fmt.Sprintf("%s/rates/%s", s.feedURL, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate feed returned status %d", resp.StatusCode)
	}

	var parsed feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("failed to decode rate feed response: %w", err)
	}

	return parsed.Rate, nil
}
