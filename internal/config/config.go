// Package config loads the settings of the dabom command from a YAML file,
// a .env file, and the process environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dabomai/dabom-aigo/providers/observability/slogobs"
	"github.com/dabomai/dabom-aigo/providers/tool/dabom"
)

// DefaultEnvFile is read when no other .env path is given.
const DefaultEnvFile = ".env"

// Config holds everything needed to build a search client and its observer.
type Config struct {
	APIKey string `yaml:"api_key"`
	// APIKeyFile names a file whose trimmed content is the API key
	APIKeyFile string        `yaml:"api_key_file"`
	BaseURL    string        `yaml:"base_url"`
	MaxResults int           `yaml:"max_results"`
	Timeout    time.Duration `yaml:"timeout"`
	LogLevel   string        `yaml:"log_level"`
	LogFormat  string        `yaml:"log_format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BaseURL:    dabom.DefaultBaseURL,
		MaxResults: dabom.DefaultMaxResults,
		Timeout:    30 * time.Second,
		LogLevel:   "info",
		LogFormat:  string(slogobs.FormatText),
	}
}

// Load builds a Config in layers:
//  1. Built-in defaults
//  2. YAML file at configPath, when not empty
//  3. Variables from envFile (DefaultEnvFile when empty); a missing file is ignored
//  4. Process environment, which wins over envFile
//  5. api_key_file resolution when no key is set yet
//
// Load does not validate; call [Config.Validate] after applying flags.
func Load(configPath, envFile string) (*Config, error) {
	cfg := Defaults()

	if configPath != "" {
		if err := loadYAMLFile(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if envFile == "" {
		envFile = DefaultEnvFile
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file %s: %w", envFile, err)
	}

	if err := applyEnv(&cfg, envLookup(dotenv)); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.APIKey) == "" && cfg.APIKeyFile != "" {
		data, err := os.ReadFile(cfg.APIKeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading api_key_file: %w", err)
		}
		cfg.APIKey = strings.TrimSpace(string(data))
	}

	return &cfg, nil
}

func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// envLookup prefers the process environment over values from a .env file.
// Empty values count as unset.
func envLookup(dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(dabom.EnvAPIKey); v != "" {
		cfg.APIKey = v
	}
	if v := getenv("DABOM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := getenv("DABOM_MAX_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DABOM_MAX_RESULTS: %w", err)
		}
		cfg.MaxResults = n
	}
	if v := getenv("DABOM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("DABOM_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}
	if v := firstNonEmpty(getenv("AIGO_LOG_LEVEL"), getenv("LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := firstNonEmpty(getenv("AIGO_LOG_FORMAT"), getenv("LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Validate reports the first invalid setting as a [*dabom.ConfigurationError].
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &dabom.ConfigurationError{Field: "api_key", Reason: "is required (set " + dabom.EnvAPIKey + " or api_key)"}
	}
	if c.BaseURL == "" {
		return &dabom.ConfigurationError{Field: "base_url", Reason: "must not be empty"}
	}
	if c.MaxResults < 0 {
		return &dabom.ConfigurationError{Field: "max_results", Reason: "must not be negative"}
	}
	if c.Timeout < 0 {
		return &dabom.ConfigurationError{Field: "timeout", Reason: "must not be negative"}
	}
	if _, ok := slogobs.ParseLogLevel(c.LogLevel); !ok {
		return &dabom.ConfigurationError{Field: "log_level", Reason: fmt.Sprintf("has unknown value %q", c.LogLevel)}
	}
	return nil
}

// ClientOptions returns the client options derived from c.
func (c *Config) ClientOptions() []dabom.ClientOption {
	return []dabom.ClientOption{
		dabom.WithBaseURL(c.BaseURL),
		dabom.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
	}
}

// Observer builds the slog observer described by c, writing to output.
func (c *Config) Observer(output io.Writer) *slogobs.Observer {
	level, _ := slogobs.ParseLogLevel(c.LogLevel)
	return slogobs.New(
		slogobs.WithFormat(slogobs.ParseFormat(c.LogFormat)),
		slogobs.WithLevel(level),
		slogobs.WithOutput(output),
	)
}
