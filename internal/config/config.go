// Package config loads the service configuration from an optional dotenv file
// and the environment. APP_SETTINGS selects one of the profiles below.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Profiles.
const (
	Development = "development"
	Testing     = "testing"
	Production  = "production"
)

// MemoryDatabaseURL selects the in-memory user store instead of postgres.
const MemoryDatabaseURL = "memory://"

type profile struct {
	debug    bool
	testing  bool
	database string
	logLevel string
}

var profiles = map[string]profile{
	Development: {debug: true, database: "users_dev", logLevel: "debug"},
	Testing:     {debug: true, testing: true, database: "users_test", logLevel: "debug"},
	Production:  {database: "users_prod", logLevel: "info"},
}

// Config holds every setting of the service.
type Config struct {
	Profile   string
	Debug     bool
	Testing   bool
	SecretKey string

	AppHost  string
	AppPort  string
	LogLevel string

	DatabaseURL    string
	PGMaxOpenConns int
	PGMaxIdleConns int

	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads the dotenv file at path, if present, and builds the Config from the environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)
	return FromEnv()
}

// FromEnv builds the Config from the environment only.
func FromEnv() (*Config, error) {
	name := getEnv("APP_SETTINGS", Development)
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown APP_SETTINGS profile %q", name)
	}

	cfg := &Config{
		Profile:    name,
		Debug:      p.debug,
		Testing:    p.testing,
		SecretKey:  getEnv("SECRET_KEY", "secret"),
		AppHost:    getEnv("APP_HOST", "localhost"),
		AppPort:    getEnv("APP_PORT", "8080"),
		LogLevel:   getEnv("APP_LOG_LEVEL", p.logLevel),
		KafkaTopic: getEnv("KAFKA_TOPIC", "users"),
	}

	pgPort, err := getEnvInt("POSTGRES_PORT", 5432)
	if err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "postgres"),
		getEnv("POSTGRES_PASSWORD", "postgres"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", p.database),
	))

	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	return cfg, nil
}

// UsesMemoryStore reports whether the in-memory user store is configured.
func (c *Config) UsesMemoryStore() bool {
	return c.DatabaseURL == MemoryDatabaseURL
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.AppPort
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
