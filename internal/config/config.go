package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownBackend              = errors.New("unknown content backend")
	ErrUnknownStorageDriver        = errors.New("unknown storage driver")
)

const (
	BackendGemini    = "gemini"
	BackendAnthropic = "anthropic"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"` // current application environment (local, dev, prod etc)
	TelegramAPIToken string   `mapstructure:"-"`   // Telegram API token loaded from environment
	Content          Content  `mapstructure:"content"`
	Storage          Storage  `mapstructure:"storage"`
	DB               DB       `mapstructure:"database"`
	Game             Game     `mapstructure:"game"`
	Sessions         Sessions `mapstructure:"sessions"`
	HTTP             HTTP     `mapstructure:"http"`
}

// Content configures the riddle generation backend.
type Content struct {
	Backend string        `mapstructure:"backend"` // gemini or anthropic
	Model   string        `mapstructure:"model"`   // model name; backend default when empty
	Timeout time.Duration `mapstructure:"timeout"` // upper bound of one generation request
	APIKey  string        `mapstructure:"-"`       // credential of the selected backend
}

// Storage selects where progress is persisted.
type Storage struct {
	Driver     string `mapstructure:"driver"`      // postgres, sqlite or memory
	SQLitePath string `mapstructure:"sqlite_path"` // database file for the sqlite driver
	Namespace  string `mapstructure:"namespace"`   // fixed namespace of progress keys
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Game contains gameplay timing.
type Game struct {
	FeedbackDelay time.Duration `mapstructure:"feedback_delay"` // how long answer feedback is shown
}

// Sessions controls how long idle chats keep their game in memory.
type Sessions struct {
	SweepSchedule string        `mapstructure:"sweep_schedule"` // cron schedule of the idle sweep
	IdleTTL       time.Duration `mapstructure:"idle_ttl"`       // idle time after which a game is dropped
}

// HTTP configures the health endpoint.
type HTTP struct {
	Addr string `mapstructure:"addr"`
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// A local .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("content.backend", BackendGemini)
	v.SetDefault("content.timeout", "60s")
	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("storage.sqlite_path", "./data/fawazir.db")
	v.SetDefault("storage.namespace", "fawazir_progress")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("game.feedback_delay", "800ms")
	v.SetDefault("sessions.sweep_schedule", "*/10 * * * *")
	v.SetDefault("sessions.idle_ttl", "30m")
	v.SetDefault("http.addr", ":8080")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("gemini_api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("anthropic_api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("env", "APP_ENV")

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, fmt.Errorf("%w: TELEGRAM_API_TOKEN", ErrMissingEnvironmentVariables)
	}

	cfg.Content.Backend = strings.ToLower(strings.TrimSpace(cfg.Content.Backend))
	switch cfg.Content.Backend {
	case BackendGemini:
		cfg.Content.APIKey = v.GetString("gemini_api_key")
		if cfg.Content.APIKey == "" {
			return nil, fmt.Errorf("%w: GEMINI_API_KEY", ErrMissingEnvironmentVariables)
		}
	case BackendAnthropic:
		cfg.Content.APIKey = v.GetString("anthropic_api_key")
		if cfg.Content.APIKey == "" {
			return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY", ErrMissingEnvironmentVariables)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Content.Backend)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	switch cfg.Storage.Driver {
	case DriverPostgres:
		cfg.DB.URL = v.GetString("database_url")
		if cfg.DB.URL == "" {
			return nil, fmt.Errorf("%w: DATABASE_URL", ErrMissingEnvironmentVariables)
		}
	case DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	return &cfg, nil
}
