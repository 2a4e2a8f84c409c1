package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "filldb.config.yaml"

type Config struct {
	Version  string   `yaml:"version" mapstructure:"version"`
	Database Database `yaml:"database" mapstructure:"database"`
	Seed     Counts   `yaml:"seed" mapstructure:"seed"`
}

type Database struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	URLEnv   string `yaml:"url_env" mapstructure:"url_env"`
}

// Counts holds how many records each seeding phase inserts.
type Counts struct {
	Categories int `json:"categories" yaml:"categories" mapstructure:"categories"`
	Products   int `json:"products" yaml:"products" mapstructure:"products"`
	Orders     int `json:"orders" yaml:"orders" mapstructure:"orders"`
	Customers  int `json:"customers" yaml:"customers" mapstructure:"customers"`
}

// DefaultCounts are the counts in effect before an operator has saved
// their own.
func DefaultCounts() Counts {
	return Counts{
		Categories: 10,
		Products:   50,
		Orders:     20,
		Customers:  10,
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if !viper.IsSet("seed") {
		cfg.Seed = DefaultCounts()
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			return nil
		}
	}
	return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

// SaveCounts persists new seed counts, overwriting the prior values. The
// rest of the config is written back unchanged.
func (c *Config) SaveCounts(counts Counts) error {
	c.Seed = counts

	path := viper.ConfigFileUsed()
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
