package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultServerURL = "http://localhost:8080"
	defaultLimit     = 10
)

var validate = validator.New()

// CLIConfig holds CLI configuration persisted to disk.
type CLIConfig struct {
	ServerURL     string `yaml:"server_url,omitempty" validate:"omitempty,url"`
	SessionCookie string `yaml:"session_cookie,omitempty"`
	DefaultLimit  *int   `yaml:"default_limit,omitempty" validate:"omitempty,gte=0"`
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "pf", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (CLIConfig, error) {
	path, err := configPath()
	if err != nil {
		return CLIConfig{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return CLIConfig{}, nil
	}
	if err != nil {
		return CLIConfig{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return CLIConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// getServerURL returns the server URL from env var, config, or default.
func getServerURL() (string, error) {
	url := defaultServerURL
	if v := os.Getenv("PF_SERVER_URL"); v != "" {
		url = v
	} else if cfg, err := loadConfig(); err == nil && cfg.ServerURL != "" {
		url = cfg.ServerURL
	}

	if err := validate.Var(url, "required,url"); err != nil {
		return "", fmt.Errorf("invalid server URL %q", url)
	}
	return url, nil
}

// getSessionCookie returns the session cookie from env var or config.
func getSessionCookie() string {
	if v := os.Getenv("PF_SESSION_COOKIE"); v != "" {
		return v
	}
	cfg, err := loadConfig()
	if err == nil {
		return cfg.SessionCookie
	}
	return ""
}

// getDefaultLimit returns the configured number of comments to show.
func getDefaultLimit() int {
	cfg, err := loadConfig()
	if err == nil && cfg.DefaultLimit != nil {
		return *cfg.DefaultLimit
	}
	return defaultLimit
}
