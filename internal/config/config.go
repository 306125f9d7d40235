package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AppName             = "acconsole"
	defaultConfigName   = "config.json"
	defaultDatabaseFile = "console.db"
	defaultLogFile      = "acconsole.log"
	defaultBaseURL      = "http://localhost:8080"
	defaultLogLevel     = "info"
)

type Config struct {
	BaseURL      string `json:"base_url" env:"ACCONSOLE_URL"`
	DatabasePath string `json:"database_path" env:"ACCONSOLE_DB"`
	LogPath      string `json:"log_path" env:"ACCONSOLE_LOG"`
	LogLevel     string `json:"log_level" env:"ACCONSOLE_LOG_LEVEL"`
	// HTTPTimeout is in seconds; 0 leaves requests unbounded.
	HTTPTimeout int `json:"http_timeout" env:"ACCONSOLE_HTTP_TIMEOUT"`
}

func (c *Config) Timeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return 0
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}

// DefaultDir is <user config dir>/acconsole.
func DefaultDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting user config directory: %w", err)
	}
	return filepath.Join(userConfigDir, AppName), nil
}

// LoadConfig reads config.json from configDir, writing one with defaults on
// first run. Environment variables override the file.
func LoadConfig(configDir string) (*Config, error) {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}

	configPath := filepath.Join(configDir, defaultConfigName)

	var cfg *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg, err = createDefaultConfig(configPath, configDir)
		if err != nil {
			return nil, err
		}
	} else {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = &Config{}
		if err := json.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	applyDefaults(cfg, configDir)
	return cfg, nil
}

func applyDefaults(cfg *Config, configDir string) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(configDir, defaultDatabaseFile)
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(configDir, defaultLogFile)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
}

func createDefaultConfig(configPath, configDir string) (*Config, error) {
	cfg := Config{
		BaseURL:      defaultBaseURL,
		DatabasePath: filepath.Join(configDir, defaultDatabaseFile),
		LogPath:      filepath.Join(configDir, defaultLogFile),
		LogLevel:     defaultLogLevel,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return nil, err
	}

	return &cfg, nil
}
