package config

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the chart defaults a run starts from. Command-line flags
// override whatever is loaded here.
type Config struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Fuzz        int    `mapstructure:"fuzz"`
	Jobs        int    `mapstructure:"jobs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title:       "git2gantt output",
		Description: "Development",
		Fuzz:        0,
		Jobs:        1,
	}
}

// Load reads configuration from an optional YAML file (path, or
// .git2gantt.yaml in the current directory) and GIT2GANTT_* environment
// variables. An absent file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	// Pick up a local .env if one exists
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("title", "git2gantt output")
	v.SetDefault("description", "Development")
	v.SetDefault("fuzz", 0)
	v.SetDefault("jobs", 1)

	v.SetEnvPrefix("GIT2GANTT")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".git2gantt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Fuzz < 0 {
		return nil, fmt.Errorf("fuzz must be non-negative, got %d", cfg.Fuzz)
	}
	if cfg.Jobs < 1 {
		return nil, fmt.Errorf("jobs must be at least 1, got %d", cfg.Jobs)
	}

	return cfg, nil
}
