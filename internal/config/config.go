// Package config loads the arbor.yaml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the file looked up when no --config flag is given.
const DefaultPath = "arbor.yaml"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the full application configuration.
type Config struct {
	LogLevel string  `mapstructure:"log_level"`
	Parser   Parser  `mapstructure:"parser"`
	Server   Server  `mapstructure:"server"`
	Cache    Cache   `mapstructure:"cache"`
	Metrics  Metrics `mapstructure:"metrics"`
}

type Parser struct {
	TrailingText   string `mapstructure:"trailing_text"`
	UnquotedValues bool   `mapstructure:"unquoted_values"`
}

type Server struct {
	Port         int   `mapstructure:"port"`
	MaxInputSize int64 `mapstructure:"max_input_size"`
}

type Cache struct {
	Backend string        `mapstructure:"backend"`
	TTL     time.Duration `mapstructure:"ttl"` // applies to both backends; zero never expires
	Prefix  string        `mapstructure:"prefix"`
	Redis   Redis         `mapstructure:"redis"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Parser: Parser{
			TrailingText: string(domain.TrailingTextFlush),
		},
		Server: Server{
			Port:         8080,
			MaxInputSize: 1 << 20,
		},
		Cache: Cache{
			Backend: CacheNone,
			TTL:     time.Hour,
			Prefix:  "arbor:doc:",
			Redis:   Redis{Addr: "localhost:6379"},
		},
		Metrics: Metrics{Enabled: true},
	}
}

// Load reads the configuration at path over the defaults.
// A missing file is only an error when the path was given explicitly;
// the empty path falls back to DefaultPath and tolerates its absence.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enum and range fields.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := domain.ParseTrailingTextPolicy(c.Parser.TrailingText); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("invalid config: unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("invalid config: negative cache ttl %s", c.Cache.TTL)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: port %d out of range", c.Server.Port)
	}
	if c.Server.MaxInputSize < 0 {
		return fmt.Errorf("invalid config: negative max_input_size")
	}
	return nil
}
