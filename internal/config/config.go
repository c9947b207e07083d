package config

import (
	"github.com/spf13/viper"

	"github.com/bstardust/photo-gps-report/pkg/common"
)

// Config represents the application configuration
type Config struct {
	LogLevel string        `mapstructure:"log_level"`
	Output   string        `mapstructure:"output"`
	Publish  PublishConfig `mapstructure:"publish"`
}

// PublishConfig controls the optional report upload to object storage
type PublishConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	Prefix    string `mapstructure:"prefix"`
}

// New creates a new configuration with default values
func New() *Config {
	return &Config{
		LogLevel: "info",
		Output:   "photos_metadata.csv",
		Publish: PublishConfig{
			Region: "us-east-1",
			UseSSL: true,
		},
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults untouched.
func LoadConfig(path string) (*Config, error) {
	cfg := New()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("output", cfg.Output)
	v.SetDefault("publish.region", cfg.Publish.Region)
	v.SetDefault("publish.use_ssl", cfg.Publish.UseSSL)

	if err := v.ReadInConfig(); err != nil {
		return nil, common.NewConfigError("failed to read config file %s: %v", path, err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, common.NewConfigError("failed to parse config file %s: %v", path, err)
	}
	return cfg, nil
}
