// Package config loads the application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvDevelopment is the APP_ENV value that relaxes required settings.
const EnvDevelopment = "development"

// DevJWTSecret is used when JWT_SECRET is unset in development.
const DevJWTSecret = "dev-secret-change-me"

// Config is the top-level configuration of the server.
type Config struct {
	App     AppConfig
	Log     LogConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Catalog CatalogConfig
	Kafka   KafkaConfig
	HTTP    HTTPConfig
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Env      string
	Port     string
	Location *time.Location
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  slog.Level
	Format string // json or text
}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	Name          string
	SSLMode       string
	RunMigrations bool
}

// RedisConfig holds the Redis connection settings. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig holds token settings.
type JWTConfig struct {
	Secret             string
	AccessTTL          time.Duration
	RefreshTTL         time.Duration
	MaxSessionsPerUser int
}

// CatalogConfig holds catalog presentation settings.
type CatalogConfig struct {
	PriorityCategory string
	CacheTTL         time.Duration
}

// KafkaConfig holds the order event producer settings. No brokers disables publishing.
type KafkaConfig struct {
	Brokers    []string
	OrderTopic string
}

// Enabled reports whether at least one broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// HTTPConfig holds router-level settings.
type HTTPConfig struct {
	CORSAllowOrigins []string
	AuthRateLimit    int
	AuthRateWindow   time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvDevelopment)
	v.SetDefault("port", "8080")
	v.SetDefault("timezone", "UTC")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "")
	v.SetDefault("db_name", "shop")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("run_migrations", false)
	v.SetDefault("redis_host", "")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_access_ttl", 15*time.Minute)
	v.SetDefault("jwt_refresh_ttl", 168*time.Hour)
	v.SetDefault("max_sessions_per_user", 5)
	v.SetDefault("catalog_priority_category", "Phones")
	v.SetDefault("catalog_cache_ttl", 5*time.Minute)
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_order_topic", "shop.orders")
	v.SetDefault("cors_allow_origins", "")
	v.SetDefault("auth_rate_limit", 10)
	v.SetDefault("auth_rate_window", time.Minute)
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Debug(".env not found; using process environment")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log_level"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("app_env"),
			Port:     v.GetString("port"),
			Location: loc,
		},
		Log: LogConfig{
			Level:  level,
			Format: strings.ToLower(v.GetString("log_format")),
		},
		DB: dbConfig(v),
		Redis: RedisConfig{
			Host:     v.GetString("redis_host"),
			Port:     v.GetInt("redis_port"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		JWT: JWTConfig{
			Secret:             v.GetString("jwt_secret"),
			AccessTTL:          v.GetDuration("jwt_access_ttl"),
			RefreshTTL:         v.GetDuration("jwt_refresh_ttl"),
			MaxSessionsPerUser: v.GetInt("max_sessions_per_user"),
		},
		Catalog: CatalogConfig{
			PriorityCategory: v.GetString("catalog_priority_category"),
			CacheTTL:         v.GetDuration("catalog_cache_ttl"),
		},
		Kafka: KafkaConfig{
			Brokers:    splitList(v.GetString("kafka_brokers")),
			OrderTopic: v.GetString("kafka_order_topic"),
		},
		HTTP: HTTPConfig{
			CORSAllowOrigins: splitList(v.GetString("cors_allow_origins")),
			AuthRateLimit:    v.GetInt("auth_rate_limit"),
			AuthRateWindow:   v.GetDuration("auth_rate_window"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDB reads only the database settings. It skips the validation of the
// server settings so tools like cmd/migrate run without a JWT secret.
func LoadDB() DBConfig {
	_ = godotenv.Load(".env")
	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)
	return dbConfig(v)
}

func dbConfig(v *viper.Viper) DBConfig {
	return DBConfig{
		Host:          v.GetString("db_host"),
		Port:          v.GetInt("db_port"),
		User:          v.GetString("db_user"),
		Password:      v.GetString("db_password"),
		Name:          v.GetString("db_name"),
		SSLMode:       v.GetString("db_sslmode"),
		RunMigrations: v.GetBool("run_migrations"),
	}
}

func (c *Config) validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		if c.App.Env != EnvDevelopment {
			errs = append(errs, errors.New("JWT_SECRET is required"))
		} else {
			c.JWT.Secret = DevJWTSecret
		}
	}
	if c.JWT.AccessTTL <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TTL must be positive"))
	}
	if c.JWT.RefreshTTL <= c.JWT.AccessTTL {
		errs = append(errs, errors.New("JWT_REFRESH_TTL must exceed JWT_ACCESS_TTL"))
	}
	if c.JWT.MaxSessionsPerUser < 1 {
		errs = append(errs, errors.New("MAX_SESSIONS_PER_USER must be at least 1"))
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Log.Format))
	}
	if c.HTTP.AuthRateLimit < 1 || c.HTTP.AuthRateWindow <= 0 {
		errs = append(errs, errors.New("AUTH_RATE_LIMIT and AUTH_RATE_WINDOW must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
