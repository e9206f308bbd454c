package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ilyde-datasets")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config

	// Server
	cfg.Server.Host = v.GetString("server_host")
	cfg.Server.Port = v.GetInt("server_port")
	cfg.Server.Env = v.GetString("server_env")
	cfg.Server.MaxWorkers = v.GetInt("server_max_workers")
	cfg.Server.ShutdownTimeout = v.GetDuration("server_shutdown_timeout")

	// gRPC
	cfg.GRPC.Port = v.GetInt("grpc_port")

	// Document store
	cfg.Store.Driver = strings.ToLower(v.GetString("store_driver"))
	cfg.Store.TransactionalVersions = v.GetBool("store_transactional_versions")

	// PostgreSQL
	cfg.Postgres.Host = v.GetString("postgres_host")
	cfg.Postgres.Port = v.GetInt("postgres_port")
	cfg.Postgres.User = v.GetString("postgres_user")
	cfg.Postgres.Password = v.GetString("postgres_password")
	cfg.Postgres.Database = v.GetString("postgres_db")
	cfg.Postgres.SSLMode = v.GetString("postgres_ssl_mode")
	cfg.Postgres.MaxConns = v.GetInt32("postgres_max_conns")
	cfg.Postgres.MinConns = v.GetInt32("postgres_min_conns")

	// Object storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage_driver"))
	cfg.Storage.Region = v.GetString("storage_region")

	// MinIO
	cfg.MinIO.Endpoint = v.GetString("minio_endpoint")
	cfg.MinIO.AccessKey = v.GetString("minio_access_key")
	cfg.MinIO.SecretKey = v.GetString("minio_secret_key")
	cfg.MinIO.UseSSL = v.GetBool("minio_use_ssl")

	// S3
	cfg.S3.Endpoint = v.GetString("s3_endpoint")
	cfg.S3.AccessKey = v.GetString("s3_access_key")
	cfg.S3.SecretKey = v.GetString("s3_secret_key")
	cfg.S3.UsePathStyle = v.GetBool("s3_use_path_style")

	// Redis
	cfg.Redis.Host = v.GetString("redis_host")
	cfg.Redis.Port = v.GetInt("redis_port")
	cfg.Redis.Password = v.GetString("redis_password")
	cfg.Redis.DB = v.GetInt("redis_db")

	// Rate limiting
	cfg.RateLimit.Enabled = v.GetBool("rate_limit_enabled")
	cfg.RateLimit.RequestsPerMinute = v.GetInt("rate_limit_requests_per_minute")

	// Circuit breaker
	cfg.CircuitBreaker.MaxFailures = v.GetInt("circuit_breaker_max_failures")
	cfg.CircuitBreaker.Timeout = time.Duration(v.GetInt("circuit_breaker_timeout_seconds")) * time.Second

	// Logging
	cfg.Log.Level = v.GetString("log_level")
	cfg.Log.Format = v.GetString("log_format")

	// Sentry
	cfg.Sentry.Enabled = v.GetBool("sentry_enabled")
	cfg.Sentry.DSN = v.GetString("sentry_dsn")
	cfg.Sentry.Environment = v.GetString("sentry_environment")
	cfg.Sentry.SampleRate = v.GetFloat64("sentry_sample_rate")

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server_host", "0.0.0.0")
	v.SetDefault("server_port", 8080)
	v.SetDefault("server_env", "development")
	v.SetDefault("server_max_workers", 10)
	v.SetDefault("server_shutdown_timeout", "10s")

	// gRPC defaults
	v.SetDefault("grpc_port", 50051)

	// Document store defaults
	v.SetDefault("store_driver", StoreDriverPostgres)
	v.SetDefault("store_transactional_versions", false)

	// PostgreSQL defaults
	v.SetDefault("postgres_host", "localhost")
	v.SetDefault("postgres_port", 5432)
	v.SetDefault("postgres_user", "ilyde")
	v.SetDefault("postgres_password", "ilyde")
	v.SetDefault("postgres_db", "datasets")
	v.SetDefault("postgres_ssl_mode", "disable")
	v.SetDefault("postgres_max_conns", 25)
	v.SetDefault("postgres_min_conns", 5)

	// Object storage defaults
	v.SetDefault("storage_driver", StorageDriverMinIO)
	v.SetDefault("storage_region", "us-west-1")

	// MinIO defaults
	v.SetDefault("minio_endpoint", "localhost:9000")
	v.SetDefault("minio_access_key", "minio")
	v.SetDefault("minio_secret_key", "minio123")
	v.SetDefault("minio_use_ssl", false)

	// Redis defaults
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)

	// Rate limiting defaults
	v.SetDefault("rate_limit_enabled", false)
	v.SetDefault("rate_limit_requests_per_minute", 600)

	// Circuit breaker defaults
	v.SetDefault("circuit_breaker_max_failures", 5)
	v.SetDefault("circuit_breaker_timeout_seconds", 30)

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	// Sentry defaults
	v.SetDefault("sentry_enabled", false)
	v.SetDefault("sentry_environment", "development")
	v.SetDefault("sentry_sample_rate", 1.0)
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	switch cfg.Storage.Driver {
	case StorageDriverMinIO, StorageDriverS3, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	if cfg.Server.MaxWorkers < 1 {
		return fmt.Errorf("server max workers must be at least 1, got %d", cfg.Server.MaxWorkers)
	}
	if cfg.Sentry.Enabled && cfg.Sentry.DSN == "" {
		return fmt.Errorf("sentry is enabled but no DSN is set")
	}
	return nil
}
