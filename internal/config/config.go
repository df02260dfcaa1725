package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds the environment driven configuration for the chat server.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"chat-server" yaml:"service_name" json:"service_name"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development" yaml:"environment" json:"environment"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080" yaml:"http_port" json:"http_port"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level" json:"log_level"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false" yaml:"enable_tracing" json:"enable_tracing"`
	EnableMetrics   bool          `env:"ENABLE_METRICS" envDefault:"false" yaml:"enable_metrics" json:"enable_metrics"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318" yaml:"otlp_endpoint" json:"otlp_endpoint"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" yaml:"shutdown_timeout" json:"shutdown_timeout" jsonschema:"type=string"`

	MongoURI            string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017" yaml:"mongodb_uri" json:"mongodb_uri"`
	MongoDatabase       string        `env:"MONGODB_DATABASE" envDefault:"chatapp" yaml:"mongodb_database" json:"mongodb_database"`
	MongoConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s" yaml:"mongodb_connect_timeout" json:"mongodb_connect_timeout" jsonschema:"type=string"`
	MongoMaxPoolSize    uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100" yaml:"mongodb_max_pool_size" json:"mongodb_max_pool_size"`
	MongoEnsureIndexes  bool          `env:"MONGODB_ENSURE_INDEXES" envDefault:"true" yaml:"mongodb_ensure_indexes" json:"mongodb_ensure_indexes"`

	PIILevel string `env:"PII_LEVEL" envDefault:"hashed" yaml:"pii_level" json:"pii_level" jsonschema:"enum=none,enum=hashed,enum=full"`
	PIISalt  string `env:"PII_SALT" envDefault:"chat-server" yaml:"pii_salt" json:"pii_salt"`

	WebsocketEnabled bool `env:"WEBSOCKET_ENABLED" envDefault:"true" yaml:"websocket_enabled" json:"websocket_enabled"`
}

// fileConfig mirrors Config for the YAML overlay. Durations are strings so
// that "15s" style values parse the same way as in the environment.
type fileConfig struct {
	ServiceName         *string `yaml:"service_name"`
	Environment         *string `yaml:"environment"`
	HTTPPort            *int    `yaml:"http_port"`
	LogLevel            *string `yaml:"log_level"`
	EnableTracing       *bool   `yaml:"enable_tracing"`
	EnableMetrics       *bool   `yaml:"enable_metrics"`
	OTLPEndpoint        *string `yaml:"otlp_endpoint"`
	ShutdownTimeout     *string `yaml:"shutdown_timeout"`
	MongoURI            *string `yaml:"mongodb_uri"`
	MongoDatabase       *string `yaml:"mongodb_database"`
	MongoConnectTimeout *string `yaml:"mongodb_connect_timeout"`
	MongoMaxPoolSize    *uint64 `yaml:"mongodb_max_pool_size"`
	MongoEnsureIndexes  *bool   `yaml:"mongodb_ensure_indexes"`
	PIILevel            *string `yaml:"pii_level"`
	PIISalt             *string `yaml:"pii_salt"`
	WebsocketEnabled    *bool   `yaml:"websocket_enabled"`
}

// Load parses defaults and environment variables into Config. When CONFIG_FILE
// points at a YAML file its values override the defaults, and variables that
// are actually set in the environment override the file.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
		// second pass without defaults: only variables present in the environment apply
		if err := env.ParseWithOptions(cfg, env.Options{DefaultValueTagName: "noDefault"}); err != nil {
			return nil, fmt.Errorf("parse env config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("unmarshal config file: %w", err)
	}

	setIf(&cfg.ServiceName, fc.ServiceName)
	setIf(&cfg.Environment, fc.Environment)
	setIf(&cfg.HTTPPort, fc.HTTPPort)
	setIf(&cfg.LogLevel, fc.LogLevel)
	setIf(&cfg.EnableTracing, fc.EnableTracing)
	setIf(&cfg.EnableMetrics, fc.EnableMetrics)
	setIf(&cfg.OTLPEndpoint, fc.OTLPEndpoint)
	setIf(&cfg.MongoURI, fc.MongoURI)
	setIf(&cfg.MongoDatabase, fc.MongoDatabase)
	setIf(&cfg.MongoMaxPoolSize, fc.MongoMaxPoolSize)
	setIf(&cfg.MongoEnsureIndexes, fc.MongoEnsureIndexes)
	setIf(&cfg.PIILevel, fc.PIILevel)
	setIf(&cfg.PIISalt, fc.PIISalt)
	setIf(&cfg.WebsocketEnabled, fc.WebsocketEnabled)

	if err := setDuration(&cfg.ShutdownTimeout, fc.ShutdownTimeout, "shutdown_timeout"); err != nil {
		return err
	}
	return setDuration(&cfg.MongoConnectTimeout, fc.MongoConnectTimeout, "mongodb_connect_timeout")
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setDuration(dst *time.Duration, raw *string, key string) error {
	if raw == nil {
		return nil
	}
	d, err := time.ParseDuration(*raw)
	if err != nil {
		return fmt.Errorf("config file %s: %w", key, err)
	}
	*dst = d
	return nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.MongoURI) == "" {
		return errors.New("MONGODB_URI is required")
	}
	if strings.TrimSpace(c.MongoDatabase) == "" {
		return errors.New("MONGODB_DATABASE is required")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT %d is out of range", c.HTTPPort)
	}
	switch c.PIILevel {
	case "none", "hashed", "full":
	default:
		return fmt.Errorf("PII_LEVEL must be one of none, hashed, full (got %q)", c.PIILevel)
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
