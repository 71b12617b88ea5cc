package app

import (
	"context"
	"fmt"
	"time"

	authDomain "github.com/allisson/quiz/internal/auth/domain"
	authHTTP "github.com/allisson/quiz/internal/auth/http"
	authService "github.com/allisson/quiz/internal/auth/service"
	authUseCase "github.com/allisson/quiz/internal/auth/usecase"
	userRepository "github.com/allisson/quiz/internal/user/repository"
)

// signingKeyTimeout bounds the KMS round trip that unwraps the signing key.
const signingKeyTimeout = 30 * time.Second

// Policy returns the route authorization policy.
func (c *Container) Policy() *authDomain.Policy {
	return authDomain.DefaultPolicy()
}

// CredentialStore returns the user repository for the configured driver.
func (c *Container) CredentialStore() (authUseCase.CredentialStore, error) {
	var err error
	c.credentialStoreInit.Do(func() {
		c.credentialStore, err = c.initCredentialStore()
		if err != nil {
			c.initErrors["credentialStore"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialStore"]; exists {
		return nil, storedErr
	}
	return c.credentialStore, nil
}

// PasswordHasher returns the hasher for the configured algorithm and cost.
func (c *Container) PasswordHasher() (authService.PasswordHasher, error) {
	var err error
	c.passwordHasherInit.Do(func() {
		c.passwordHasher, err = authService.NewPasswordHasher(c.config.PasswordHashAlgorithm, c.config.PasswordHashCost)
		if err != nil {
			c.initErrors["passwordHasher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordHasher"]; exists {
		return nil, storedErr
	}
	return c.passwordHasher, nil
}

// TokenService returns the JWT service. The signing key is loaded once,
// through KMS when AUTH_TOKEN_SECRET_KMS_URI is set.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// AuthUseCase returns the auth use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the /api/auth handler.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		var uc authUseCase.AuthUseCase
		uc, err = c.AuthUseCase()
		if err != nil {
			err = fmt.Errorf("failed to get auth use case for auth handler: %w", err)
			c.initErrors["authHandler"] = err
			return
		}
		c.authHandler = authHTTP.NewAuthHandler(uc, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

func (c *Container) initCredentialStore() (authUseCase.CredentialStore, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for credential store: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, c.unsupportedDriver()
	}
}

func (c *Container) initTokenService() (authService.TokenService, error) {
	ctx, cancel := context.WithTimeout(c.ctx, signingKeyTimeout)
	defer cancel()

	key, err := authService.LoadSigningKey(ctx, c.config.AuthTokenSecret, c.config.AuthTokenSecretKMSURI)
	if err != nil {
		return nil, fmt.Errorf("failed to load token signing key: %w", err)
	}

	return authService.NewTokenService(authService.TokenServiceConfig{
		SigningKey: key,
		Issuer:     c.config.AuthTokenIssuer,
		TTL:        c.config.AuthTokenExpiration,
		ClockSkew:  c.config.AuthTokenClockSkew,
	})
}

func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	store, err := c.CredentialStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential store for auth use case: %w", err)
	}
	hasher, err := c.PasswordHasher()
	if err != nil {
		return nil, fmt.Errorf("failed to get password hasher for auth use case: %w", err)
	}
	tokens, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}
	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
	}

	return authUseCase.NewAuthUseCaseWithMetrics(
		authUseCase.NewAuthUseCase(store, hasher, tokens),
		businessMetrics,
	), nil
}
