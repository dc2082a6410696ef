package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task store
	Storage StorageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	OutputPaths  []string
}

type StorageConfig struct {
	Path     string // flat task file, one task per line
	Autosave bool   // save after every mutation (HTTP API)
}

type RateLimitConfig struct {
	RequestsPerMin int
	MaxClients     int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/todo/ unless path is set.
// A missing config file is not an error; defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/todo/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.OutputPaths = v.GetStringSlice("logger.output_paths")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")

	// Task store
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.Autosave = v.GetBool("storage.autosave")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.output_paths", []string{"stderr"})
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.max_clients", 1000)
	v.SetDefault("storage.path", "tasks.txt")
	v.SetDefault("storage.autosave", false)
}

// Validate checks the values the application cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage.path is required")
	}
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}
