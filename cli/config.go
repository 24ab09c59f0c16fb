package cli

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/color-game/schemefinder/api"
	"github.com/color-game/schemefinder/datastore"
	"github.com/color-game/schemefinder/migrations"
	"github.com/joho/godotenv"
)

const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

type Config struct {
	API           api.Config
	SchemeSource  string
	DatabaseType  string
	DatabaseHost  string
	DatabaseUser  string
	DatabasePass  string
	DatabaseName  string
	SSLMode       string
	SweepInterval time.Duration
}

// loadConfig reads the environment, after an optional .env file
func loadConfig() Config {
	_ = godotenv.Load()

	return Config{
		API: api.Config{
			HTTPPort:       getEnv("HTTP_PORT", ":8080"),
			SessionSecret:  getEnv("SESSION_SECRET", "change-this-session-secret"),
			SessionTTL:     getEnvDuration("SESSION_TTL", 3600),
			AdminKeyHash:   getEnv("ADMIN_KEY_HASH", ""),
			AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
			DevMode:        getEnvBool("DEV_MODE", true),
		},
		SchemeSource:  getEnv("SCHEME_SOURCE", SourceEmbedded),
		DatabaseType:  getEnv("DB_TYPE", "postgres"),
		DatabaseHost:  getEnv("DB_HOST", "localhost"),
		DatabaseUser:  getEnv("DB_USER", "postgres"),
		DatabasePass:  getEnv("DB_PASSWORD", ""),
		DatabaseName:  getEnv("DB_NAME", "schemefinder"),
		SSLMode:       getEnv("SSL_MODE", "disable"),
		SweepInterval: getEnvDuration("SESSION_SWEEP_INTERVAL", 300),
	}
}

// openSchemeRepo returns the configured scheme source and a func releasing it
func openSchemeRepo(cfg Config) (datastore.SchemeRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.SchemeSource {
	case SourceEmbedded:
		repo, err := datastore.NewCatalogSchemeDatabase()
		return repo, noop, err
	case SourcePostgres:
		connStr := datastore.BuildDBConnStr(cfg.DatabaseHost, cfg.DatabasePass, cfg.DatabaseUser, cfg.DatabaseName, cfg.SSLMode)
		db, err := datastore.NewDB(cfg.DatabaseType, connStr)
		if err != nil {
			return nil, noop, err
		}

		log.Println("Running database migrations...")
		if err := migrations.RunMigrations(db); err != nil {
			db.Close()
			return nil, noop, fmt.Errorf("failed to run migrations: %w", err)
		}

		repo, err := datastore.NewSchemeDatabase(db)
		if err != nil {
			db.Close()
			return nil, noop, err
		}
		return repo, db.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown scheme source %q (want %s or %s)", cfg.SchemeSource, SourceEmbedded, SourcePostgres)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

// getEnvDuration reads a number of seconds
func getEnvDuration(key string, defaultSeconds int) time.Duration {
	return time.Duration(getEnvInt(key, defaultSeconds)) * time.Second
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
