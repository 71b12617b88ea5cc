package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	leaderboardCache "github.com/allisson/quiz/internal/leaderboard/cache"
	leaderboardHTTP "github.com/allisson/quiz/internal/leaderboard/http"
	leaderboardRepository "github.com/allisson/quiz/internal/leaderboard/repository"
	leaderboardUseCase "github.com/allisson/quiz/internal/leaderboard/usecase"
)

// RedisClient returns the leaderboard cache client. It is only created when
// LEADERBOARD_CACHE_ENABLED is set.
func (c *Container) RedisClient() (*redis.Client, error) {
	var err error
	c.redisClientInit.Do(func() {
		c.redisClient, err = leaderboardCache.NewClient(c.ctx, c.config.RedisURL)
		if err != nil {
			c.initErrors["redisClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["redisClient"]; exists {
		return nil, storedErr
	}
	return c.redisClient, nil
}

// LeaderboardRepository returns the leaderboard repository for the configured driver.
func (c *Container) LeaderboardRepository() (leaderboardUseCase.LeaderboardRepository, error) {
	var err error
	c.leaderboardRepositoryInit.Do(func() {
		c.leaderboardRepository, err = c.initLeaderboardRepository()
		if err != nil {
			c.initErrors["leaderboardRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["leaderboardRepository"]; exists {
		return nil, storedErr
	}
	return c.leaderboardRepository, nil
}

// LeaderboardUseCase returns the leaderboard use case, cached in redis when enabled.
func (c *Container) LeaderboardUseCase() (leaderboardUseCase.LeaderboardUseCase, error) {
	var err error
	c.leaderboardUseCaseInit.Do(func() {
		c.leaderboardUseCase, err = c.initLeaderboardUseCase()
		if err != nil {
			c.initErrors["leaderboardUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["leaderboardUseCase"]; exists {
		return nil, storedErr
	}
	return c.leaderboardUseCase, nil
}

// LeaderboardHandler returns the /api/leaderboard handler.
func (c *Container) LeaderboardHandler() (*leaderboardHTTP.LeaderboardHandler, error) {
	var err error
	c.leaderboardHandlerInit.Do(func() {
		var uc leaderboardUseCase.LeaderboardUseCase
		uc, err = c.LeaderboardUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get leaderboard use case for leaderboard handler: %w", err)
			c.initErrors["leaderboardHandler"] = err
			return
		}
		c.leaderboardHandler = leaderboardHTTP.NewLeaderboardHandler(uc, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["leaderboardHandler"]; exists {
		return nil, storedErr
	}
	return c.leaderboardHandler, nil
}

func (c *Container) initLeaderboardRepository() (leaderboardUseCase.LeaderboardRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for leaderboard repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return leaderboardRepository.NewMySQLLeaderboardRepository(db), nil
	case "postgres":
		return leaderboardRepository.NewPostgreSQLLeaderboardRepository(db), nil
	default:
		return nil, c.unsupportedDriver()
	}
}

// initLeaderboardUseCase stacks the cache under the metrics decorator so cache
// hits are measured too.
func (c *Container) initLeaderboardUseCase() (leaderboardUseCase.LeaderboardUseCase, error) {
	repo, err := c.LeaderboardRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard repository for leaderboard use case: %w", err)
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for leaderboard use case: %w", err)
	}

	useCase := leaderboardUseCase.NewLeaderboardUseCase(repo)

	if c.config.LeaderboardCacheEnabled {
		client, err := c.RedisClient()
		if err != nil {
			return nil, fmt.Errorf("failed to get redis client for leaderboard use case: %w", err)
		}
		useCase = leaderboardCache.NewCachedLeaderboardUseCase(
			useCase, client, c.config.LeaderboardCacheTTL, businessMetrics, c.Logger(),
		)
	}

	return leaderboardUseCase.NewLeaderboardUseCaseWithMetrics(useCase, businessMetrics), nil
}
