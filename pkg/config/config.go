package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage backend identifiers.
const (
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store    StoreConfig
	Database DatabaseConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Catalog  CatalogConfig
	Exports  ExportsConfig
}

// StoreConfig selects the storage backend and its auxiliary data files.
type StoreConfig struct {
	// Backend is BackendPostgres or BackendFile.
	Backend string
	// DataDir holds the flat-file documents when Backend is "file".
	DataDir string
	// VocabFile optionally overrides the built-in weekday/slot vocabulary.
	VocabFile string
	// SeedFile is the dataset consumed by the seed command.
	SeedFile string
	// MigrationsDir holds the goose SQL migrations for the Postgres backend.
	MigrationsDir string
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// CatalogConfig tunes the read-mostly catalog cache.
type CatalogConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
	// HomeSampleSize is the number of random teachers shown on the home page.
	HomeSampleSize int
}

// ExportsConfig gates the admin export endpoints.
type ExportsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Store = StoreConfig{
		Backend:       strings.ToLower(v.GetString("STORE_BACKEND")),
		DataDir:       v.GetString("STORE_DATA_DIR"),
		VocabFile:     v.GetString("STORE_VOCAB_FILE"),
		SeedFile:      v.GetString("STORE_SEED_FILE"),
		MigrationsDir: v.GetString("STORE_MIGRATIONS_DIR"),
	}
	if cfg.Store.Backend != BackendPostgres && cfg.Store.Backend != BackendFile {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.Store.Backend)
	}

	cfg.Database = DatabaseConfig{
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Catalog = CatalogConfig{
		CacheEnabled:   v.GetBool("CATALOG_CACHE_ENABLED"),
		CacheTTL:       parseDuration(v.GetString("CATALOG_CACHE_TTL"), 10*time.Minute),
		HomeSampleSize: v.GetInt("CATALOG_HOME_SAMPLE"),
	}
	if cfg.Catalog.HomeSampleSize <= 0 {
		cfg.Catalog.HomeSampleSize = 6
	}

	cfg.Exports = ExportsConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORE_BACKEND", BackendPostgres)
	v.SetDefault("STORE_DATA_DIR", "./data")
	v.SetDefault("STORE_VOCAB_FILE", "")
	v.SetDefault("STORE_SEED_FILE", "./data/seed.json")
	v.SetDefault("STORE_MIGRATIONS_DIR", "./migrations")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "tutorhub")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("CATALOG_CACHE_ENABLED", false)
	v.SetDefault("CATALOG_CACHE_TTL", "10m")
	v.SetDefault("CATALOG_HOME_SAMPLE", 6)

	v.SetDefault("ENABLE_EXPORTS", false)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
