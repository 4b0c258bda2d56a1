package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the statroute configuration.
type Config struct {
	Router   RouterConfig   `yaml:"router"`
	Fallback FallbackConfig `yaml:"fallback"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// RouterConfig holds the decision ladder constants and glossary extensions.
// The threshold defaults are empirically tuned; treat them as configuration.
type RouterConfig struct {
	RatioMinScore   float64  `yaml:"ratio_min_score"`
	Ratio           float64  `yaml:"ratio"`
	AutoPromoteStat float64  `yaml:"auto_promote_stat"`
	AutoPromoteCtx  float64  `yaml:"auto_promote_ctx"`
	ExtraGlossary   []string `yaml:"extra_glossary"`
}

// FallbackConfig holds the generative fallback classifier settings.
// The fallback is only consulted when an orchestrator declines the heuristic verdict.
type FallbackConfig struct {
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Model      string `yaml:"model"`
	TimeoutSec int    `yaml:"timeout_sec"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Router.RatioMinScore <= 0 {
		c.Router.RatioMinScore = 1.5
	}
	if c.Router.Ratio <= 0 {
		c.Router.Ratio = 0.4
	}
	if c.Router.AutoPromoteStat <= 0 {
		c.Router.AutoPromoteStat = 4.0
	}
	if c.Router.AutoPromoteCtx <= 0 {
		c.Router.AutoPromoteCtx = 2.0
	}
	if c.Fallback.Model == "" {
		c.Fallback.Model = "gpt-4o-mini"
	}
	if c.Fallback.TimeoutSec <= 0 {
		c.Fallback.TimeoutSec = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.Router.Ratio > 1 {
		return fmt.Errorf("router.ratio must be <= 1, got %g", c.Router.Ratio)
	}
	if c.Router.AutoPromoteCtx > c.Router.AutoPromoteStat {
		return fmt.Errorf(
			"router.auto_promote_ctx (%g) must not exceed router.auto_promote_stat (%g)",
			c.Router.AutoPromoteCtx, c.Router.AutoPromoteStat,
		)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
