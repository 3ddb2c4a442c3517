package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. AUTOCOMPLETE_SERVER_PORT
const EnvPrefix = "AUTOCOMPLETE"

var (
	ErrInvalidPort       = errors.New("invalid server port")
	ErrInvalidMaxResults = errors.New("suggest.max_results must not be negative")
	ErrInvalidLogLevel   = errors.New("invalid log level")

	ErrInvalidShutdownTimeout = errors.New("server.shutdown_timeout must be positive")
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary"`
	Suggest    SuggestConfig    `mapstructure:"suggest"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds server related configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Debug           bool          `mapstructure:"debug"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// VocabularyConfig lists the words indexed at startup
type VocabularyConfig struct {
	// Path is a newline-delimited word list; empty means none
	Path  string   `mapstructure:"path"`
	Words []string `mapstructure:"words"`
}

// SuggestConfig shapes suggestion results
type SuggestConfig struct {
	Sorted     bool `mapstructure:"sorted"`
	MaxResults int  `mapstructure:"max_results"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Addr returns the host:port the server listens on
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("vocabulary.path", "")
	v.SetDefault("vocabulary.words", []string{})

	v.SetDefault("suggest.sorted", true)
	v.SetDefault("suggest.max_results", 0) // unlimited

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidShutdownTimeout, c.Server.ShutdownTimeout)
	}
	if c.Suggest.MaxResults < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxResults, c.Suggest.MaxResults)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}

// GetConfigPath returns the path to the first config file found
func GetConfigPath() (string, error) {
	// Look for config in the following locations:
	// 1. Current directory
	// 2. ./configs/
	// 3. /etc/autocomplete/
	configName := "config"
	configType := "yaml"
	configPaths := []string{
		".",
		"./configs",
		"/etc/autocomplete",
	}

	for _, path := range configPaths {
		configPath := filepath.Join(path, configName+"."+configType)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", fmt.Errorf("config file not found in any of the default locations")
}
