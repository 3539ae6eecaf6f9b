package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
	StoreTimeoutSeconds   int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines authentication parameters. JWTSecret, JWTIssuer and
// JWTAudience have no defaults: a missing value is a configuration error
// that aborts startup.
type AuthConfig struct {
	JWTSecret             string
	JWTIssuer             string
	JWTAudience           string
	AccessTokenTTLMinutes int
	BcryptCost            int
	MinPasswordLength     int
	LoginFailureLimit     int
	LoginFailureWindowSec int
}

// Load reads configuration from environment variables, applying defaults
// where possible and validating settings that have none.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "attendance-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
			StoreTimeoutSeconds:   getEnvAsInt("STORE_TIMEOUT_SECONDS", 5),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             os.Getenv("AUTH_JWT_SECRET"),
			JWTIssuer:             os.Getenv("AUTH_JWT_ISSUER"),
			JWTAudience:           os.Getenv("AUTH_JWT_AUDIENCE"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 30),
			BcryptCost:            getEnvAsInt("AUTH_BCRYPT_COST", 12),
			MinPasswordLength:     getEnvAsInt("AUTH_MIN_PASSWORD_LENGTH", 8),
			LoginFailureLimit:     getEnvAsInt("AUTH_LOGIN_FAILURE_LIMIT", 10),
			LoginFailureWindowSec: getEnvAsInt("AUTH_LOGIN_FAILURE_WINDOW_SECONDS", 300),
		},
	}

	if err := cfg.Auth.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that must be present for tokens to be issued.
func (a AuthConfig) Validate() error {
	if a.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}
	if a.JWTIssuer == "" {
		return errors.New("AUTH_JWT_ISSUER is required")
	}
	if a.JWTAudience == "" {
		return errors.New("AUTH_JWT_AUDIENCE is required")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// StoreTimeout bounds every credential/session store round trip.
func (a AppConfig) StoreTimeout() time.Duration {
	if a.StoreTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(a.StoreTimeoutSeconds) * time.Second
}

// LoginFailureWindow returns the sliding window for the login throttle.
func (a AuthConfig) LoginFailureWindow() time.Duration {
	if a.LoginFailureWindowSec <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(a.LoginFailureWindowSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
