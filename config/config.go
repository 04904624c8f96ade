package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration when --config is
// not given.
const DefaultPath = "grammar.yaml"

// Config holds all grammar CLI configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Render  RenderConfig  `yaml:"render"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level    string `yaml:"level" json:"level,omitempty"`       // debug, info, warn, error
	Encoding string `yaml:"encoding" json:"encoding,omitempty"` // json, console
}

// RenderConfig configures document rendering.
type RenderConfig struct {
	Validate bool   `yaml:"validate" json:"validate"`
	Workers  int    `yaml:"workers" json:"workers"`
	Format   string `yaml:"format" json:"format,omitempty"` // auto, yaml, json
	LogDir   string `yaml:"log_dir" json:"log_dir,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Render: RenderConfig{
			Validate: false,
			Workers:  4,
			Format:   "auto",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides. Unparseable
// numeric or boolean values are ignored.
func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("GRAMMAR_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if enc := os.Getenv("GRAMMAR_LOG_ENCODING"); enc != "" {
		c.Logging.Encoding = enc
	}
	if w := os.Getenv("GRAMMAR_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			c.Render.Workers = n
		}
	}
	if v := os.Getenv("GRAMMAR_VALIDATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Render.Validate = b
		}
	}
	if dir := os.Getenv("GRAMMAR_LOG_DIR"); dir != "" {
		c.Render.LogDir = dir
	}
}

var (
	ValidLevels    = []string{"debug", "info", "warn", "error"}
	ValidEncodings = []string{"json", "console"}
	ValidFormats   = []string{"auto", "yaml", "json"}
)

func oneOf(v string, valid []string) bool {
	for _, s := range valid {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !oneOf(c.Logging.Level, ValidLevels) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !oneOf(c.Logging.Encoding, ValidEncodings) {
		return fmt.Errorf("invalid log encoding: %s (valid: %v)", c.Logging.Encoding, ValidEncodings)
	}
	if c.Render.Format != "" && !oneOf(c.Render.Format, ValidFormats) {
		return fmt.Errorf("invalid document format: %s (valid: %v)", c.Render.Format, ValidFormats)
	}
	if c.Render.Workers < 1 {
		return fmt.Errorf("render workers must be at least 1, got %d", c.Render.Workers)
	}
	return nil
}
