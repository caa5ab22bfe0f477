// Package config loads the gateway configuration from YAML with
// environment variable expansion.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfig []byte

// ChunksIndexSuffix derives the chunks index name from the documents index.
const ChunksIndexSuffix = "_chunks"

// Config holds the docsgate configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Search  SearchConfig  `yaml:"search"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// AuthConfig holds HTTP binding authentication settings.
type AuthConfig struct {
	APIKeys StringList `yaml:"api_keys"` // empty disables auth
}

// HTTPConfig holds HTTP binding settings.
type HTTPConfig struct {
	Port           int        `yaml:"port"`
	ReadTimeoutSec int        `yaml:"read_timeout_sec"`
	ShutdownSec    int        `yaml:"shutdown_timeout_sec"`
	AllowedOrigins StringList `yaml:"allowed_origins"`
}

// SearchConfig holds search engine connection settings.
type SearchConfig struct {
	URL                 string `yaml:"url"`
	APIKey              string `yaml:"api_key"`
	DocumentsIndex      string `yaml:"documents_index"`
	ChunksIndex         string `yaml:"chunks_index"`
	RequestTimeoutSec   int    `yaml:"request_timeout_sec"`
	ReadinessTimeoutSec int    `yaml:"readiness_timeout_sec"`
}

// StringList accepts either a YAML sequence or a comma-separated scalar,
// so list settings can come from a single environment variable.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return fmt.Errorf("decode list: %w", err)
		}
		*l = compact(items)
	case yaml.ScalarNode:
		*l = compact(strings.Split(node.Value, ","))
	default:
		return fmt.Errorf("line %d: expected a list or a comma-separated string", node.Line)
	}
	return nil
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads configuration for the given environment (local, dev, docker, prod).
// A .env file in the working directory is loaded first; variables already set
// in the process environment win. config/<env>.yaml is used when present,
// otherwise the embedded defaults.
func Load(env string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	data := defaultConfig
	if path := filepath.Join("config", env+".yaml"); fileExists(path) {
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		data = b
	}

	return Parse(data)
}

// Parse expands environment variables in data and decodes it.
func Parse(data []byte) (Config, error) {
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

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
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
	if c.HTTP.Port == 0 {
		c.HTTP.Port = 3000
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Search.URL == "" {
		c.Search.URL = "http://localhost:7700"
	}
	if c.Search.DocumentsIndex == "" {
		c.Search.DocumentsIndex = "documents"
	}
	if c.Search.ChunksIndex == "" {
		c.Search.ChunksIndex = c.Search.DocumentsIndex + ChunksIndexSuffix
	}
	if c.Search.RequestTimeoutSec <= 0 {
		c.Search.RequestTimeoutSec = 10
	}
	if c.Search.ReadinessTimeoutSec <= 0 {
		c.Search.ReadinessTimeoutSec = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if !strings.HasPrefix(c.Search.URL, "http://") && !strings.HasPrefix(c.Search.URL, "https://") {
		return fmt.Errorf("search.url must be an http(s) URL, got %q", c.Search.URL)
	}
	if c.Search.DocumentsIndex == c.Search.ChunksIndex {
		return fmt.Errorf("search.chunks_index must differ from search.documents_index (%q)", c.Search.DocumentsIndex)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
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
