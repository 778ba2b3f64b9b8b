package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
	Log      LogConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	Path            string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Seed            bool
	MigrationsPath  string
	SeedsPath       string
}

// LedgerConfig tunes the movement engine
type LedgerConfig struct {
	MaxConflictRetries  int
	LockTimeout         time.Duration
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	BodyLimit          string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first; real environment variables take precedence.
func Load() *Config {
	_ = godotenv.Load()
	return loadFrom(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "localhost")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOW_ORIGINS", "")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "ledger_user")
	v.SetDefault("DB_PASSWORD", "ledger_password")
	v.SetDefault("DB_NAME", "ledger_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_PATH", "ledger.db")
	v.SetDefault("DB_MAX_CONNECTIONS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("SEED_DATABASE", false)
	v.SetDefault("DB_MIGRATIONS_PATH", "db/migrations")
	v.SetDefault("DB_SEEDS_PATH", "db/seeds")

	v.SetDefault("LEDGER_MAX_CONFLICT_RETRIES", 3)
	v.SetDefault("LEDGER_LOCK_TIMEOUT", "5s")
	v.SetDefault("LEDGER_BREAKER_MAX_FAILURES", 5)
	v.SetDefault("LEDGER_BREAKER_RESET_TIMEOUT", "30s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("RATE_LIMIT_PER_SECOND", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("BODY_LIMIT", "1M")

	v.AutomaticEnv()
	return v
}

func loadFrom(v *viper.Viper) *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			Environment:     v.GetString("APP_ENV"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSL_MODE"),
			Path:            v.GetString("DB_PATH"),
			MaxConnections:  v.GetInt("DB_MAX_CONNECTIONS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
			Seed:            v.GetBool("SEED_DATABASE"),
			MigrationsPath:  v.GetString("DB_MIGRATIONS_PATH"),
			SeedsPath:       v.GetString("DB_SEEDS_PATH"),
		},
		Ledger: LedgerConfig{
			MaxConflictRetries:  v.GetInt("LEDGER_MAX_CONFLICT_RETRIES"),
			LockTimeout:         v.GetDuration("LEDGER_LOCK_TIMEOUT"),
			BreakerMaxFailures:  v.GetInt("LEDGER_BREAKER_MAX_FAILURES"),
			BreakerResetTimeout: v.GetDuration("LEDGER_BREAKER_RESET_TIMEOUT"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: v.GetInt("RATE_LIMIT_PER_SECOND"),
			RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
			BodyLimit:          v.GetString("BODY_LIMIT"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins(v.GetString("CORS_ALLOW_ORIGINS"))

	return config
}

// Validate rejects settings the server cannot start with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Ledger.MaxConflictRetries < 0 {
		return errors.New("LEDGER_MAX_CONFLICT_RETRIES cannot be negative")
	}

	if c.Ledger.LockTimeout <= 0 {
		return errors.New("LEDGER_LOCK_TIMEOUT must be positive")
	}

	if c.Ledger.BreakerMaxFailures <= 0 {
		return errors.New("LEDGER_BREAKER_MAX_FAILURES must be positive")
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the postgres connection URL used by the migration tooling
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// loadCORSAllowOrigins splits a comma separated origin list, defaulting to '*'
func (c *Config) loadCORSAllowOrigins(corsOrigins string) []string {
	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins)")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
