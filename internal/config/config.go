// Package config loads taproom settings with precedence ENV > file > defaults.
// Command-line flags are applied on top by cmd/taproom.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/taproom/internal/logging"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces every environment variable read by the loader.
const EnvPrefix = "TAPROOM_"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the complete runtime configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	HTTP   HTTPConfig   `yaml:"http"`
	Menu   MenuConfig   `yaml:"menu"`
	Cache  CacheConfig  `yaml:"cache"`
	Runner RunnerConfig `yaml:"runner"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type HTTPConfig struct {
	Addr    string `yaml:"addr"`
	Metrics bool   `yaml:"metrics"`
}

type MenuConfig struct {
	// Path to a YAML or JSON menu. Empty serves the built-in menu.
	Path string `yaml:"path"`
	// QuantityNouns extends the words that stop "for <digits>" from being read as a table.
	QuantityNouns []string `yaml:"quantity_nouns"`
}

type CacheConfig struct {
	Backend string        `yaml:"backend"`
	TTL     time.Duration `yaml:"ttl"`
	// MaxEntries bounds the memory backend. Zero disables the bound.
	MaxEntries int         `yaml:"max_entries"`
	Redis      RedisConfig `yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

type RunnerConfig struct {
	MaxInputSize int `yaml:"max_input_size"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		Log:  LogConfig{Level: "info", Format: logging.FormatText},
		HTTP: HTTPConfig{Addr: ":8080", Metrics: true},
		Cache: CacheConfig{
			Backend:    CacheNone,
			TTL:        10 * time.Minute,
			MaxEntries: 10000,
			Redis:      RedisConfig{Addr: "localhost:6379", Prefix: "taproom:"},
		},
		Runner: RunnerConfig{MaxInputSize: 4096},
	}
}

// Loader resolves configuration from an optional file and the environment.
type Loader struct {
	path   string
	lookup func(string) (string, bool)
}

// NewLoader creates a loader for path. An empty path skips the file stage.
func NewLoader(path string) *Loader {
	return &Loader{path: path, lookup: os.LookupEnv}
}

// Load applies defaults, then the file, then TAPROOM_* variables, and validates the result.
func (l *Loader) Load() (Config, error) {
	cfg := Defaults()

	if l.path != "" {
		if err := l.mergeFile(&cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := l.mergeEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// mergeFile decodes a YAML file over cfg. Unknown keys are rejected.
func (l *Loader) mergeFile(cfg *Config) error {
	path := filepath.Clean(l.path)
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("strict config parse error: %w", err)
	}
	return nil
}

func (l *Loader) mergeEnv(cfg *Config) error {
	setString(l, "LOG_LEVEL", &cfg.Log.Level)
	setString(l, "LOG_FORMAT", &cfg.Log.Format)
	setString(l, "HTTP_ADDR", &cfg.HTTP.Addr)
	setString(l, "MENU_PATH", &cfg.Menu.Path)
	setString(l, "CACHE_BACKEND", &cfg.Cache.Backend)
	setString(l, "REDIS_ADDR", &cfg.Cache.Redis.Addr)
	setString(l, "REDIS_PASSWORD", &cfg.Cache.Redis.Password)
	setString(l, "REDIS_PREFIX", &cfg.Cache.Redis.Prefix)

	if v, ok := l.env("QUANTITY_NOUNS"); ok {
		cfg.Menu.QuantityNouns = splitList(v)
	}

	var errs []error
	errs = append(errs, setBool(l, "HTTP_METRICS", &cfg.HTTP.Metrics))
	errs = append(errs, setInt(l, "REDIS_DB", &cfg.Cache.Redis.DB))
	errs = append(errs, setInt(l, "CACHE_MAX_ENTRIES", &cfg.Cache.MaxEntries))
	errs = append(errs, setInt(l, "MAX_INPUT_SIZE", &cfg.Runner.MaxInputSize))
	errs = append(errs, setDuration(l, "CACHE_TTL", &cfg.Cache.TTL))
	return errors.Join(errs...)
}

// env returns a non-empty TAPROOM_ variable.
func (l *Loader) env(key string) (string, bool) {
	v, ok := l.lookup(EnvPrefix + key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func setString(l *Loader, key string, dst *string) {
	if v, ok := l.env(key); ok {
		*dst = v
	}
}

func setBool(l *Loader, key string, dst *bool) error {
	v, ok := l.env(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	*dst = b
	return nil
}

func setInt(l *Loader, key string, dst *int) error {
	v, ok := l.env(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	*dst = n
	return nil
}

func setDuration(l *Loader, key string, dst *time.Duration) error {
	v, ok := l.env(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks values the loader cannot coerce.
func Validate(cfg Config) error {
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", cfg.Log.Format)
	}
	switch cfg.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if cfg.Cache.Redis.Addr == "" {
			return fmt.Errorf("cache backend redis requires an address")
		}
	default:
		return fmt.Errorf("invalid cache backend %q (want none, memory or redis)", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	if cfg.Cache.MaxEntries < 0 {
		return fmt.Errorf("cache max entries must not be negative")
	}
	if cfg.Runner.MaxInputSize <= 0 {
		return fmt.Errorf("max input size must be positive")
	}
	return nil
}
