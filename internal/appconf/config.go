// Package appconf holds the application configuration: defaults, an optional
// YAML file and COVERAGE_* environment overrides, applied in that order.
package appconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvSource   = "COVERAGE_SOURCE"
	EnvPort     = "COVERAGE_PORT"
	EnvEnv      = "COVERAGE_ENV"
	EnvLogLevel = "COVERAGE_LOG_LEVEL"
)

// Config holds all configuration settings for the application.
type Config struct {
	Port      int         `yaml:"port"`
	Env       Environment `yaml:"env"`
	RateLimit int         `yaml:"rate_limit"` // requests per second per client
	LogLevel  string      `yaml:"log_level"`

	// Source workbook
	SourcePath   string        `yaml:"source"`
	Watch        bool          `yaml:"watch"`
	PollInterval time.Duration `yaml:"poll_interval"` // 0 disables polling

	// Presentation tables merged over the built-in ones
	Labels  map[string]string   `yaml:"labels"`
	Aliases map[string]string   `yaml:"aliases"`
	Presets map[string][]string `yaml:"presets"`
	Regions map[string]string   `yaml:"regions"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:       4000,
		Env:        Development,
		RateLimit:  100,
		LogLevel:   "info",
		SourcePath: "coverage.xlsx",
		Watch:      true,
	}
}

// Load reads the YAML file at path over DefaultConfig and then applies
// environment overrides. A missing file is not an error; an empty path
// skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
		default:
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if source := os.Getenv(EnvSource); source != "" {
		c.SourcePath = source
	}
	if port := os.Getenv(EnvPort); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, port, err)
		}
		c.Port = p
	}
	if env := os.Getenv(EnvEnv); env != "" {
		c.Env = EnvFlagToEnvironment(env)
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RateLimit < 1 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit)
	}
	if strings.TrimSpace(c.SourcePath) == "" {
		return fmt.Errorf("source path is required")
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative, got %s", c.PollInterval)
	}
	return nil
}
