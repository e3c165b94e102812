package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	StorageDriver string
	DatabaseURL   string
	EnableDBCheck bool
	// MigrationsPath is a golang-migrate source URL, e.g. file://migrations.
	MigrationsPath string

	JWTSecret string
	JWTIssuer string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	ViewCacheTTL  time.Duration

	NATSURL string

	RateLimit          string
	CORSAllowedOrigins []string

	ReconcileBatchLimit int
	ChainNumberPrefix   string

	// OTLPEndpoint is a gRPC collector address; empty disables span export.
	OTLPEndpoint    string
	OTLPInsecure    bool
	TraceSampleRate float64
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_ISSUER", "event-ledger")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("VIEW_CACHE_TTL", "30s")
	v.SetDefault("NATS_URL", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RECONCILE_BATCH_LIMIT", 500)
	v.SetDefault("CHAIN_NUMBER_PREFIX", "CH")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("TRACE_SAMPLE_RATE", 1.0)

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                v.GetString("PORT"),
		IsProduction:        v.GetBool("IS_PRODUCTION"),
		StorageDriver:       strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseURL:         v.GetString("PGSQL_URL"),
		EnableDBCheck:       v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:      v.GetString("MIGRATIONS_PATH"),
		JWTSecret:           v.GetString("JWT_SECRET"),
		JWTIssuer:           v.GetString("JWT_ISSUER"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		RedisDB:             v.GetInt("REDIS_DB"),
		NATSURL:             v.GetString("NATS_URL"),
		RateLimit:           v.GetString("RATE_LIMIT"),
		ReconcileBatchLimit: v.GetInt("RECONCILE_BATCH_LIMIT"),
		ChainNumberPrefix:   v.GetString("CHAIN_NUMBER_PREFIX"),
		OTLPEndpoint:        v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OTLPInsecure:        v.GetBool("OTEL_EXPORTER_OTLP_INSECURE"),
		TraceSampleRate:     v.GetFloat64("TRACE_SAMPLE_RATE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER=%s", StorageDriverPostgres)
		}
	case StorageDriverMemory:
		if cfg.IsProduction {
			log.Println("Warning: STORAGE_DRIVER=memory in production; events will not survive a restart.")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	ttlStr := v.GetString("VIEW_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 30 * time.Second
		log.Printf("Warning: Invalid value for VIEW_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.ViewCacheTTL = ttl

	if cfg.ReconcileBatchLimit <= 0 {
		cfg.ReconcileBatchLimit = 500
	}
	if cfg.ChainNumberPrefix == "" {
		cfg.ChainNumberPrefix = "CH"
	}
	if cfg.TraceSampleRate < 0 || cfg.TraceSampleRate > 1 {
		log.Printf("Warning: TRACE_SAMPLE_RATE %v outside [0,1]. Defaulting to 1.\n", cfg.TraceSampleRate)
		cfg.TraceSampleRate = 1
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}
