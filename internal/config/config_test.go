package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 8080, cfg.ServerPort)
				assert.Equal(t, "postgres", cfg.DBDriver)
				assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, 24*time.Hour, cfg.AuthTokenExpiration)
				assert.Equal(t, 30*time.Second, cfg.AuthTokenClockSkew)
				assert.Equal(t, "quiz", cfg.AuthTokenIssuer)
				assert.Equal(t, PasswordHashBcrypt, cfg.PasswordHashAlgorithm)
				assert.Equal(t, 12, cfg.PasswordHashCost)
				assert.True(t, cfg.RateLimitLoginEnabled)
				assert.Equal(t, 5.0, cfg.RateLimitLoginRequestsPerSec)
				assert.Equal(t, 10, cfg.RateLimitLoginBurst)
				assert.False(t, cfg.LeaderboardCacheEnabled)
				assert.Equal(t, time.Minute, cfg.LeaderboardCacheTTL)
				assert.Equal(t, 8081, cfg.MetricsPort)
			},
		},
		{
			name: "load custom database configuration",
			envVars: map[string]string{
				"DB_DRIVER":                    "mysql",
				"DB_CONNECTION_STRING":         "user:password@tcp(localhost:3306)/quiz",
				"DB_MAX_OPEN_CONNECTIONS":      "50",
				"DB_MAX_IDLE_CONNECTIONS":      "10",
				"DB_CONN_MAX_LIFETIME_MINUTES": "10",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "mysql", cfg.DBDriver)
				assert.Equal(t, "user:password@tcp(localhost:3306)/quiz", cfg.DBConnectionString)
				assert.Equal(t, 50, cfg.DBMaxOpenConnections)
				assert.Equal(t, 10, cfg.DBMaxIdleConnections)
				assert.Equal(t, 10*time.Minute, cfg.DBConnMaxLifetime)
			},
		},
		{
			name: "load custom auth configuration",
			envVars: map[string]string{
				"AUTH_TOKEN_SECRET":             "0123456789abcdef0123456789abcdef",
				"AUTH_TOKEN_EXPIRATION_SECONDS": "60",
				"AUTH_TOKEN_CLOCK_SKEW_SECONDS": "0",
				"PASSWORD_HASH_ALGORITHM":       "argon2id",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0123456789abcdef0123456789abcdef", cfg.AuthTokenSecret)
				assert.Equal(t, time.Minute, cfg.AuthTokenExpiration)
				assert.Equal(t, time.Duration(0), cfg.AuthTokenClockSkew)
				assert.Equal(t, PasswordHashArgon2id, cfg.PasswordHashAlgorithm)
			},
		},
		{
			name: "load leaderboard cache configuration",
			envVars: map[string]string{
				"LEADERBOARD_CACHE_ENABLED":     "true",
				"REDIS_URL":                     "redis://cache:6379/1",
				"LEADERBOARD_CACHE_TTL_SECONDS": "15",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.LeaderboardCacheEnabled)
				assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
				assert.Equal(t, 15*time.Second, cfg.LeaderboardCacheTTL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for key, value := range tt.envVars {
				require.NoError(t, os.Setenv(key, value))
			}

			tt.validate(t, Load())
		})
	}
}

func validConfig() *Config {
	return &Config{
		ServerPort:            8080,
		DBDriver:              "postgres",
		DBConnectionString:    "postgres://localhost/quiz",
		AuthTokenSecret:       strings.Repeat("s", MinTokenSecretLength),
		AuthTokenExpiration:   time.Hour,
		AuthTokenClockSkew:    30 * time.Second,
		PasswordHashAlgorithm: PasswordHashBcrypt,
		PasswordHashCost:      12,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid configuration", mutate: func(cfg *Config) {}},
		{
			name:    "missing token secret",
			mutate:  func(cfg *Config) { cfg.AuthTokenSecret = "" },
			wantErr: "AuthTokenSecret",
		},
		{
			name:    "short token secret",
			mutate:  func(cfg *Config) { cfg.AuthTokenSecret = "too-short" },
			wantErr: "AuthTokenSecret",
		},
		{
			name: "short ciphertext is accepted when a KMS keeper is configured",
			mutate: func(cfg *Config) {
				cfg.AuthTokenSecret = "Y2lwaGVy"
				cfg.AuthTokenSecretKMSURI = "base64key://"
			},
		},
		{
			name: "ciphertext must be base64 when a KMS keeper is configured",
			mutate: func(cfg *Config) {
				cfg.AuthTokenSecret = "not base64!"
				cfg.AuthTokenSecretKMSURI = "base64key://"
			},
			wantErr: "AuthTokenSecret",
		},
		{
			name:    "unknown password hash algorithm",
			mutate:  func(cfg *Config) { cfg.PasswordHashAlgorithm = "md5" },
			wantErr: "PasswordHashAlgorithm",
		},
		{
			name:    "bcrypt cost out of range",
			mutate:  func(cfg *Config) { cfg.PasswordHashCost = 40 },
			wantErr: "PasswordHashCost",
		},
		{
			name:    "unknown database driver",
			mutate:  func(cfg *Config) { cfg.DBDriver = "sqlite" },
			wantErr: "DBDriver",
		},
		{
			name: "cache enabled without redis url",
			mutate: func(cfg *Config) {
				cfg.LeaderboardCacheEnabled = true
				cfg.RedisURL = ""
			},
			wantErr: "RedisURL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_GetGinMode(t *testing.T) {
	assert.Equal(t, "debug", (&Config{LogLevel: "debug"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: "info"}).GetGinMode())
	assert.Equal(t, "release", (&Config{LogLevel: ""}).GetGinMode())
}
