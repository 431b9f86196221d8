// Package config loads the flyweight CLI configuration.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/goforj/flyweight/logger"
	"github.com/goforj/flyweight/shape"
)

// EnvPrefix prefixes environment overrides, e.g. FLYWEIGHT_CIRCLES__RADIUS=3.
const EnvPrefix = "FLYWEIGHT_"

// DefaultDraws is how many circles the circles command draws.
const DefaultDraws = 10

type Config struct {
	Logging LoggingConfig `json:"logging"`
	Circles CirclesConfig `json:"circles"`
	Metrics MetricsConfig `json:"metrics"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := logger.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

type CirclesConfig struct {
	// Radius is applied to every requested circle.
	Radius int `json:"radius"`
	// Draws is how many circles are drawn, cycling through the requested colors.
	Draws int `json:"draws"`
}

func (c *CirclesConfig) SetDefaults() {
	if c.Radius == 0 {
		c.Radius = shape.DefaultRadius
	}
	if c.Draws == 0 {
		c.Draws = DefaultDraws
	}
}

func (c CirclesConfig) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("circles.radius must be positive, got %d", c.Radius)
	}
	if c.Draws < 0 {
		return fmt.Errorf("circles.draws must be positive, got %d", c.Draws)
	}
	return nil
}

type MetricsConfig struct {
	// Enabled prints a counter summary when a command finishes.
	Enabled bool `json:"enabled"`
}

// Load reads path (YAML or JSON) when non-empty, applies FLYWEIGHT_ environment
// overrides, then fills defaults and validates.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Logging.SetDefaults()
	cfg.Circles.SetDefaults()
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Circles.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
