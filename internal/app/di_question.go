package app

import (
	"fmt"

	questionHTTP "github.com/allisson/quiz/internal/question/http"
	questionRepository "github.com/allisson/quiz/internal/question/repository"
	questionUseCase "github.com/allisson/quiz/internal/question/usecase"
)

// QuestionRepository returns the question repository for the configured driver.
func (c *Container) QuestionRepository() (questionUseCase.QuestionRepository, error) {
	var err error
	c.questionRepositoryInit.Do(func() {
		c.questionRepository, err = c.initQuestionRepository()
		if err != nil {
			c.initErrors["questionRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["questionRepository"]; exists {
		return nil, storedErr
	}
	return c.questionRepository, nil
}

// QuestionUseCase returns the question use case.
func (c *Container) QuestionUseCase() (questionUseCase.QuestionUseCase, error) {
	var err error
	c.questionUseCaseInit.Do(func() {
		c.questionUseCase, err = c.initQuestionUseCase()
		if err != nil {
			c.initErrors["questionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["questionUseCase"]; exists {
		return nil, storedErr
	}
	return c.questionUseCase, nil
}

// QuestionHandler returns the /api/questions handler.
func (c *Container) QuestionHandler() (*questionHTTP.QuestionHandler, error) {
	var err error
	c.questionHandlerInit.Do(func() {
		var uc questionUseCase.QuestionUseCase
		uc, err = c.QuestionUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get question use case for question handler: %w", err)
			c.initErrors["questionHandler"] = err
			return
		}
		c.questionHandler = questionHTTP.NewQuestionHandler(uc, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["questionHandler"]; exists {
		return nil, storedErr
	}
	return c.questionHandler, nil
}

func (c *Container) initQuestionRepository() (questionUseCase.QuestionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for question repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return questionRepository.NewMySQLQuestionRepository(db), nil
	case "postgres":
		return questionRepository.NewPostgreSQLQuestionRepository(db), nil
	default:
		return nil, c.unsupportedDriver()
	}
}

func (c *Container) initQuestionUseCase() (questionUseCase.QuestionUseCase, error) {
	repo, err := c.QuestionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get question repository for question use case: %w", err)
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for question use case: %w", err)
	}

	return questionUseCase.NewQuestionUseCaseWithMetrics(questionUseCase.NewQuestionUseCase(repo), businessMetrics), nil
}
