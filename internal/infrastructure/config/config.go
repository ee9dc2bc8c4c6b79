// Package config provides centralized configuration management
// using Viper for configuration loading and validation
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Dataset source backends
const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Dataset   DatasetConfig   `mapstructure:"dataset"`
	Profile   ProfileConfig   `mapstructure:"profile"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	Train     TrainConfig     `mapstructure:"train"`
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
}

// DatasetConfig selects and locates the recipe dataset backend
type DatasetConfig struct {
	Source     string `mapstructure:"source"`
	JSONPath   string `mapstructure:"json_path"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// ProfileConfig locates the user profile and feedback flat files
type ProfileConfig struct {
	Path         string `mapstructure:"path"`
	FeedbackPath string `mapstructure:"feedback_path"`
}

// RecommendConfig tunes the matcher defaults
type RecommendConfig struct {
	Limit int `mapstructure:"limit"`
}

// TrainConfig holds trainer defaults
type TrainConfig struct {
	DataPath     string  `mapstructure:"data_path"`
	Folds        int     `mapstructure:"folds"`
	TestFraction float64 `mapstructure:"test_fraction"`
	ForestSizes  []int   `mapstructure:"forest_sizes"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/pantrio")
	}

	v.SetEnvPrefix("PANTRIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, defaults cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Pantrio")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "console")

	v.SetDefault("dataset.source", SourceJSON)
	v.SetDefault("dataset.json_path", "data/recipes.json")
	v.SetDefault("dataset.sqlite_path", "data/recipes.db")

	v.SetDefault("profile.path", "data/profile.json")
	v.SetDefault("profile.feedback_path", "data/feedback.json")

	v.SetDefault("recommend.limit", 100)

	v.SetDefault("train.data_path", "data/heart.csv")
	v.SetDefault("train.folds", 5)
	v.SetDefault("train.test_fraction", 0.2)
	v.SetDefault("train.forest_sizes", []int{100, 200})
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceJSON, SourceSQLite:
	default:
		return fmt.Errorf("dataset.source must be %q or %q", SourceJSON, SourceSQLite)
	}

	if c.Dataset.JSONPath == "" {
		return fmt.Errorf("dataset.json_path is required")
	}
	if c.Dataset.Source == SourceSQLite && c.Dataset.SQLitePath == "" {
		return fmt.Errorf("dataset.sqlite_path is required for the sqlite source")
	}

	if c.Recommend.Limit < 1 {
		return fmt.Errorf("recommend.limit must be at least 1")
	}

	if c.Train.Folds < 2 {
		return fmt.Errorf("train.folds must be at least 2")
	}
	if c.Train.TestFraction <= 0 || c.Train.TestFraction >= 1 {
		return fmt.Errorf("train.test_fraction must be in (0,1)")
	}

	return nil
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
