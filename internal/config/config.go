package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"
)

// DefaultPath is the config file read when no path is given
const DefaultPath = "config.yaml"

// Config holds all application configuration.
// Values come from the YAML file when present; environment variables
// override them.
type Config struct {
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	Server  ServerConfig  `yaml:"server"`
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	Build   BuildConfig   `yaml:"build"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"SERVER_ADDR" env-default:":8080"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// SiteConfig holds values shown in every page layout
type SiteConfig struct {
	Title   string `yaml:"title" env:"SITE_TITLE" env-default:"Avash"`
	BaseURL string `yaml:"base_url" env:"BASE_URL" env-default:""`
}

// ContentConfig points at optional on-disk content.
// Empty ProjectsFile or PagesDir selects the content built into the binary.
type ContentConfig struct {
	ProjectsFile string `yaml:"projects_file" env:"PROJECTS_FILE" env-default:""`
	PagesDir     string `yaml:"pages_dir" env:"PAGES_DIR" env-default:""`
	StaticDir    string `yaml:"static_dir" env:"STATIC_DIR" env-default:"static"`
}

// BuildConfig holds static export settings
type BuildConfig struct {
	OutputDir string `yaml:"output_dir" env:"OUTPUT_DIR" env-default:"public"`
}

// Load reads path (or DefaultPath when empty) with environment overrides.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := &Config{}
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, os.ErrNotExist):
		return nil, fmt.Errorf("config file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks values cleanenv cannot check on its own
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server addr must not be empty")
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("shutdown_timeout must be positive")
	}
	return nil
}

// IsLocal reports whether the app runs in a developer environment
func (c *Config) IsLocal() bool {
	return c.Env == "local"
}

// NewLogger builds the zap logger for this configuration
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.IsLocal() {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	return zc.Build()
}
