package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme     = "chalkboard"
	DefaultFPS       = 30
	DefaultPrecision = 2
	DefaultWidth     = 72
	DefaultHeight    = 27
	DefaultAddr      = ":8080"
	DefaultCacheTTL  = 5 * time.Minute
	DefaultDataDir   = ".linprimer"
	DefaultLogLevel  = "info"
)

var (
	ErrBadFPS       = errors.New("config: fps must be between 1 and 120")
	ErrBadPrecision = errors.New("config: precision must be between 0 and 10")
	ErrBadCanvas    = errors.New("config: canvas must be at least 8x4 cells")
	ErrBadLogLevel  = errors.New("config: log level must be debug, info, warn or error")
)

type Config struct {
	Theme     string       `yaml:"theme"`
	FPS       int          `yaml:"fps"`
	Precision int          `yaml:"precision"`
	Canvas    CanvasConfig `yaml:"canvas"`
	Server    ServerConfig `yaml:"server"`
	DataDir   string       `yaml:"data_dir"`
	LogLevel  string       `yaml:"log_level"`
}

// CanvasConfig is the drawing size in terminal cells.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ServerConfig struct {
	Addr     string        `yaml:"addr"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		FPS:       DefaultFPS,
		Precision: DefaultPrecision,
		Canvas: CanvasConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Server: ServerConfig{
			Addr:     DefaultAddr,
			CacheTTL: DefaultCacheTTL,
		},
		DataDir:  DefaultDataDir,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults. Keys the file omits keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	var errs []error
	if c.FPS < 1 || c.FPS > 120 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrBadFPS, c.FPS))
	}
	if c.Precision < 0 || c.Precision > 10 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrBadPrecision, c.Precision))
	}
	if c.Canvas.Width < 8 || c.Canvas.Height < 4 {
		errs = append(errs, fmt.Errorf("%w, got %dx%d", ErrBadCanvas, c.Canvas.Width, c.Canvas.Height))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w, got %q", ErrBadLogLevel, c.LogLevel))
	}
	return errors.Join(errs...)
}

// TickInterval is the time between animation frames.
func (c *Config) TickInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}
