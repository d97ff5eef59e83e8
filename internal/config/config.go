package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Chat   ChatConfig   `mapstructure:"chat"`
	Places PlacesConfig `mapstructure:"places"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	TimeoutSeconds int      `mapstructure:"timeoutSeconds"`
	RateLimit      float64  `mapstructure:"rateLimit"`
	RateBurst      int      `mapstructure:"rateBurst"`
	CORSOrigins    []string `mapstructure:"corsOrigins"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type ChatConfig struct {
	SessionTTLMinutes int `mapstructure:"sessionTTLMinutes"`
}

type PlacesConfig struct {
	CacheTTLMinutes int `mapstructure:"cacheTTLMinutes"`
}

// envOverrides are the deploy-time knobs settable without a config file.
type envOverrides struct {
	Port     int    `envconfig:"PORT"`
	LogLevel string `envconfig:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	setDefaults()

	// A missing file falls back to defaults; any other read error is fatal.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}
	if env.LogLevel != "" {
		config.Log.Level = env.LogLevel
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeoutSeconds", 30)
	viper.SetDefault("server.rateLimit", 50.0)
	viper.SetDefault("server.rateBurst", 100)
	viper.SetDefault("server.corsOrigins", []string{"*"})
	viper.SetDefault("log.level", "info")
	viper.SetDefault("chat.sessionTTLMinutes", 30)
	viper.SetDefault("places.cacheTTLMinutes", 60)
}

// Timeout returns the request timeout as a duration.
func (c ServerConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionTTL returns the chat session lifetime as a duration.
func (c ChatConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// CacheTTL returns the places cache lifetime as a duration.
func (c PlacesConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}
