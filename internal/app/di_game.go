package app

import (
	"fmt"

	gameHTTP "github.com/allisson/quiz/internal/game/http"
	gameRepository "github.com/allisson/quiz/internal/game/repository"
	gameUseCase "github.com/allisson/quiz/internal/game/usecase"
)

// SessionRepository returns the game session repository for the configured driver.
func (c *Container) SessionRepository() (gameUseCase.SessionRepository, error) {
	var err error
	c.sessionRepositoryInit.Do(func() {
		c.sessionRepository, err = c.initSessionRepository()
		if err != nil {
			c.initErrors["sessionRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionRepository"]; exists {
		return nil, storedErr
	}
	return c.sessionRepository, nil
}

// GameUseCase returns the game use case.
func (c *Container) GameUseCase() (gameUseCase.GameUseCase, error) {
	var err error
	c.gameUseCaseInit.Do(func() {
		c.gameUseCase, err = c.initGameUseCase()
		if err != nil {
			c.initErrors["gameUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gameUseCase"]; exists {
		return nil, storedErr
	}
	return c.gameUseCase, nil
}

// GameHandler returns the /api/game handler.
func (c *Container) GameHandler() (*gameHTTP.GameHandler, error) {
	var err error
	c.gameHandlerInit.Do(func() {
		var uc gameUseCase.GameUseCase
		uc, err = c.GameUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get game use case for game handler: %w", err)
			c.initErrors["gameHandler"] = err
			return
		}
		c.gameHandler = gameHTTP.NewGameHandler(uc, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["gameHandler"]; exists {
		return nil, storedErr
	}
	return c.gameHandler, nil
}

func (c *Container) initSessionRepository() (gameUseCase.SessionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for session repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return gameRepository.NewMySQLSessionRepository(db), nil
	case "postgres":
		return gameRepository.NewPostgreSQLSessionRepository(db), nil
	default:
		return nil, c.unsupportedDriver()
	}
}

func (c *Container) initGameUseCase() (gameUseCase.GameUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for game use case: %w", err)
	}
	repo, err := c.SessionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get session repository for game use case: %w", err)
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for game use case: %w", err)
	}

	return gameUseCase.NewGameUseCaseWithMetrics(gameUseCase.NewGameUseCase(txManager, repo), businessMetrics), nil
}
