package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Fuabioo/ghmcp/internal/errors"
	"github.com/kelseyhightower/envconfig"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is the public GitHub REST API root.
const DefaultAPIURL = "https://api.github.com"

// Config holds global configuration for ghmcp.
type Config struct {
	// Token is the static bearer credential sent with every GitHub request.
	Token     string `json:"token" yaml:"token" envconfig:"GITHUB_TOKEN"`
	APIURL    string `json:"api_url" yaml:"api_url" envconfig:"GITHUB_API_URL"`
	UserAgent string `json:"user_agent" yaml:"user_agent" envconfig:"GHMCP_USER_AGENT"`
	LogLevel  string `json:"log_level" yaml:"log_level" envconfig:"GHMCP_LOG_LEVEL"`
}

// DefaultConfig returns the configuration used when neither a file nor the
// environment says otherwise.
func DefaultConfig() *Config {
	return &Config{
		APIURL:   DefaultAPIURL,
		LogLevel: "info",
	}
}

// LoadConfig builds the configuration from defaults, an optional config file
// and environment variables, in increasing order of precedence.
//
// If path is empty, config.json in ConfigDir() is used when it exists.
// An explicitly given path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := ConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get config directory: %w", err)
		}
		path = filepath.Join(dir, "config.json")
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := parseFile(path, data, cfg); err != nil {
			return nil, err
		}
	} else if explicit || !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	// If the default file doesn't exist, we continue with defaults

	// Fields whose variable is unset are left untouched.
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	return cfg, nil
}

// parseFile decodes YAML for .yaml/.yml files and JSON with comments for
// everything else.
func parseFile(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// Validate checks the values required before the server may accept requests.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return errors.MissingToken()
	}

	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.InvalidConfig(fmt.Sprintf("api_url must be an http(s) URL, got %q", c.APIURL))
	}

	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.InvalidConfig(fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	return nil
}

// Level returns the slog level named by LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	level, _ := parseLevel(c.LogLevel)
	return level
}

func parseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
