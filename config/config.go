package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
		Port     string `envconfig:"PORT"      default:"5000"`
		Host     string `envconfig:"HOST"      default:"0.0.0.0"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"5"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name string `envconfig:"NAME" default:"todolist"`
		CORS struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"60"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Host     string `envconfig:"HOST" default:"localhost"`
			Port     string `envconfig:"PORT" default:"6379"`
			Password string `envconfig:"PASSWORD"`
			DB       int    `envconfig:"DB"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	DB struct {
		Host                   string `envconfig:"HOST"                      default:"localhost"`
		Port                   string `envconfig:"PORT"                      default:"5432"`
		Name                   string `envconfig:"NAME"                      default:"todolistdb"`
		Username               string `envconfig:"USER"                      default:"admin"`
		Password               string `envconfig:"PASSWORD"                  default:"admin123"`
		SSLMode                string `envconfig:"SSL_MODE"                  default:"disable"`
		MaxRetry               int    `envconfig:"MAX_RETRY"                 default:"30"`
		RetryWaitTime          int    `envconfig:"RETRY_WAIT_TIME"           default:"2"`
		ConnectTimeout         int    `envconfig:"CONNECT_TIMEOUT"           default:"3"`
		MaxOpenConns           int    `envconfig:"MAX_OPEN_CONNS"            default:"10"`
		MaxIdleConns           int    `envconfig:"MAX_IDLE_CONNS"            default:"10"`
		ConnMaxLifetimeSeconds int    `envconfig:"CONN_MAX_LIFETIME_SECONDS" default:"300"`
		MigrationTable         string `envconfig:"MIGRATION_TABLE"           default:"schema_migrations"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// IsTesting reports whether the process runs in test mode, where the
// startup gate and schema initialization are skipped.
func (c *Config) IsTesting() bool {
	return c.Server.Env == EnvTesting
}

// Load reads an optional .env file and then the process environment into a
// new Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
	} else {
		log.Info().Msg("Successfully loaded variables from .env file into environment")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment variables: %w", err)
	}

	return cfg, nil
}

var (
	conf *Config
	once sync.Once
)

// Get loads the configuration once and returns the same instance on every
// call. The process exits if the environment cannot be parsed.
func Get() *Config {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}

		conf = cfg

		log.Info().Msg("Service configuration initialized successfully")
	})

	return conf
}
