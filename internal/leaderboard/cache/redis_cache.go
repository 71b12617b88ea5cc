// Package cache provides a Redis cache-aside layer for leaderboard rankings.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	gameDomain "github.com/allisson/quiz/internal/game/domain"
	leaderboardDomain "github.com/allisson/quiz/internal/leaderboard/domain"
	leaderboardUseCase "github.com/allisson/quiz/internal/leaderboard/usecase"
	"github.com/allisson/quiz/internal/metrics"
)

const (
	keyPrefix = "quiz:leaderboard:top"
	cacheName = "leaderboard"
)

// NewClient parses a redis:// URL and checks the server is reachable.
func NewClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// cachedLeaderboardUseCase serves top lists from Redis and falls back to the
// wrapped use case on a miss. Redis failures are logged and never surface to
// the caller. Statistics are always read through.
type cachedLeaderboardUseCase struct {
	next    leaderboardUseCase.LeaderboardUseCase
	client  redis.Cmdable
	ttl     time.Duration
	metrics metrics.BusinessMetrics
	logger  *slog.Logger
}

// NewCachedLeaderboardUseCase wraps useCase with a Redis cache whose entries
// expire after ttl.
func NewCachedLeaderboardUseCase(
	useCase leaderboardUseCase.LeaderboardUseCase,
	client redis.Cmdable,
	ttl time.Duration,
	m metrics.BusinessMetrics,
	logger *slog.Logger,
) leaderboardUseCase.LeaderboardUseCase {
	return &cachedLeaderboardUseCase{
		next:    useCase,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

func topKey(category string, limit int) string {
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("%s:%s:%d", keyPrefix, category, limit)
}

func (c *cachedLeaderboardUseCase) cached(
	ctx context.Context,
	key string,
	load func() ([]*leaderboardDomain.Entry, error),
) ([]*leaderboardDomain.Entry, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var entries []*leaderboardDomain.Entry
		if jsonErr := json.Unmarshal(data, &entries); jsonErr == nil {
			c.metrics.RecordCacheLookup(ctx, cacheName, true)
			return entries, nil
		}
		c.logger.Warn("discarding undecodable leaderboard cache entry", slog.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("leaderboard cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	c.metrics.RecordCacheLookup(ctx, cacheName, false)

	entries, err := load()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("leaderboard cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}
	return entries, nil
}

func (c *cachedLeaderboardUseCase) Top(ctx context.Context, limit int) ([]*leaderboardDomain.Entry, error) {
	return c.cached(ctx, topKey("", limit), func() ([]*leaderboardDomain.Entry, error) {
		return c.next.Top(ctx, limit)
	})
}

func (c *cachedLeaderboardUseCase) TopByCategory(
	ctx context.Context,
	category string,
	limit int,
) ([]*leaderboardDomain.Entry, error) {
	// Invalid categories are rejected by the wrapped use case and never cached.
	return c.cached(ctx, topKey(gameDomain.NormalizeCategory(category), limit), func() ([]*leaderboardDomain.Entry, error) {
		return c.next.TopByCategory(ctx, category, limit)
	})
}

func (c *cachedLeaderboardUseCase) UserStats(
	ctx context.Context,
	userID uuid.UUID,
) (*leaderboardDomain.UserStats, error) {
	return c.next.UserStats(ctx, userID)
}

func (c *cachedLeaderboardUseCase) CategoryStats(ctx context.Context) ([]*leaderboardDomain.CategoryStats, error) {
	return c.next.CategoryStats(ctx)
}
