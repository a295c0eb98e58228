package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// DefaultMigrationsDir is where the CLI reads and writes migration files,
// relative to the working directory. Config files and env cannot override it.
const DefaultMigrationsDir = "internal/database/migrations"

const (
	FormatText = "text"
	FormatJSON = "json"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

type Config struct {
	MigrationsDir string `mapstructure:"-" yaml:"-"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	Format        string `mapstructure:"format" yaml:"format"`
}

func Default() *Config {
	return &Config{
		MigrationsDir: DefaultMigrationsDir,
		LogLevel:      "warn",
		Format:        FormatText,
	}
}

func Load() (*Config, error) {
	cfg := Default()

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Override with CLI flags if set
	if level := viper.GetString("log_level"); level != "" {
		cfg.LogLevel = level
	}
	if format := viper.GetString("format"); format != "" {
		cfg.Format = format
	}

	cfg.MigrationsDir = DefaultMigrationsDir

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MigrationsDir == "" {
		return fmt.Errorf("migrations_dir must be specified")
	}

	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unsupported log_level %q (must be one of debug, info, warn, error)", c.LogLevel)
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unsupported format %q (must be text or json)", c.Format)
	}

	return nil
}
