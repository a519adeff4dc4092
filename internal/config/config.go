package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// address the browser page uses to reach the API, served in /config.json
	PublicHost string `toml:"public_host"`
	PublicDir  string `toml:"public_dir"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	EnsureSchema   bool   `toml:"ensure_schema"`

	// redis, used only for rate limiting write requests
	RedisHost                   string `toml:"redis_host"`
	RedisPort                   string `toml:"redis_port"`
	WriteRateLimitAllowedPerMin int    `toml:"write_rate_limit_allowed_per_min"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

// RateLimitEnabled reports whether write requests should go through the redis rate limiter.
func (c *Config) RateLimitEnabled() bool {
	return c.RedisHost != "" && c.WriteRateLimitAllowedPerMin > 0
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}
	return t.Get(env)
}

// Parse is like Load, but reads the TOML document from a string.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return t.Get(env)
}
