package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides, e.g. MOVR_PORT.
const EnvPrefix = "MOVR_"

// Config 应用配置
type Config struct {
	Port      string `koanf:"port"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"` // json or console

	// JWTSecret enables HS256 bearer authentication on /api/v1 when set.
	JWTSecret string `koanf:"jwt_secret"`

	// Default gap thresholds in seconds, used when a request omits one.
	SessionGap float64 `koanf:"session_gap"`
	FlowGap    float64 `koanf:"flow_gap"`

	MaxPoints int `koanf:"max_points"` // 单次请求最大点数

	RateLimit  float64       `koanf:"rate_limit"` // requests per second per client IP, 0 disables
	RateBurst  int           `koanf:"rate_burst"`
	RateWindow time.Duration `koanf:"rate_window"` // idle limiter eviction interval
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Port:       ":8080",
		LogLevel:   "info",
		LogFormat:  "json",
		SessionGap: 600,
		FlowGap:    3600,
		MaxPoints:  1_000_000,
		RateLimit:  20,
		RateBurst:  40,
		RateWindow: 5 * time.Minute,
	}
}

// Load 加载配置
//
// Precedence (low -> high): defaults, YAML file named by MOVR_CONFIG, MOVR_* env.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(EnvPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port must not be empty"))
	}
	if c.SessionGap < 0 {
		errs = append(errs, fmt.Errorf("session_gap must be >= 0, got %v", c.SessionGap))
	}
	if c.FlowGap < 0 {
		errs = append(errs, fmt.Errorf("flow_gap must be >= 0, got %v", c.FlowGap))
	}
	if c.MaxPoints <= 0 {
		errs = append(errs, fmt.Errorf("max_points must be > 0, got %d", c.MaxPoints))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit must be >= 0, got %v", c.RateLimit))
	}
	if c.RateLimit > 0 && c.RateBurst <= 0 {
		errs = append(errs, fmt.Errorf("rate_burst must be > 0 when rate_limit is set, got %d", c.RateBurst))
	}
	return errors.Join(errs...)
}
