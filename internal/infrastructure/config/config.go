package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Backend BackendConfig `mapstructure:"backend"`
	Labels  LabelsConfig  `mapstructure:"labels"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// BackendConfig selects and configures the sentiment backend
type BackendConfig struct {
	Provider    string        `mapstructure:"provider"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Token       string        `mapstructure:"token"`
	Timeout     time.Duration `mapstructure:"timeout"`
	LexiconFile string        `mapstructure:"lexicon_file"`
}

// LabelsConfig holds extra backend label aliases
type LabelsConfig struct {
	Map map[string]string `mapstructure:"map"`
}

// RedisConfig holds prediction cache configuration
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Addr returns the host:port of the Redis server
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds allowed browser origins
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Supported backend providers
const (
	ProviderHuggingFace = "huggingface"
	ProviderLexicon     = "lexicon"
)

// Load reads configuration from config.yaml (optional) and SENTIMENT_*
// environment variables on top of the defaults.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("SENTIMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	switch c.Backend.Provider {
	case ProviderHuggingFace:
		if c.Backend.BaseURL == "" || c.Backend.Model == "" {
			return errors.New("backend base_url and model are required for huggingface provider")
		}
	case ProviderLexicon:
	default:
		return fmt.Errorf("unknown backend provider %q", c.Backend.Provider)
	}

	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 7860)
	v.SetDefault("server.mode", "debug")

	// Backend
	v.SetDefault("backend.provider", ProviderHuggingFace)
	v.SetDefault("backend.base_url", "https://api-inference.huggingface.co")
	v.SetDefault("backend.model", "savasy/bert-base-turkish-sentiment-cased")
	v.SetDefault("backend.token", "")
	v.SetDefault("backend.timeout", 30*time.Second)
	v.SetDefault("backend.lexicon_file", "")

	// Labels
	v.SetDefault("labels.map", map[string]string{})

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*time.Hour)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// CORS
	v.SetDefault("cors.allowed_origins", []string{"*"})
}
