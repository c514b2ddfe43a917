package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Catalog  CatalogConfig
	Matching MatchingConfig
	Cache    CacheConfig
	Runway   RunwayConfig
	Feedback FeedbackConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LLMConfig holds the stylist model configuration
type LLMConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max_retries"`
}

// CatalogConfig holds the catalog snapshot location
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// MatchingConfig holds matcher tuning
type MatchingConfig struct {
	StageFloor         int  `mapstructure:"stage_floor"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds look-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RunwayConfig holds runway image pipeline configuration
type RunwayConfig struct {
	ImageTimeout time.Duration `mapstructure:"image_timeout"`
	ImageSize    int           `mapstructure:"image_size"`
}

// FeedbackConfig holds feedback persistence configuration
type FeedbackConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/ai-stylist/")

	v.SetEnvPrefix("STYLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional - env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Registered empty so AutomaticEnv can bind STYLIST_LLM_API_KEY during
	// Unmarshal; viper only resolves env vars for keys it already knows.
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "https://api.cerebras.ai/v1")
	v.SetDefault("llm.model", "zai-glm-4.7")
	v.SetDefault("llm.max_retries", 2)

	v.SetDefault("catalog.path", "data/clothes_enriched.csv")

	v.SetDefault("matching.stage_floor", 2)
	v.SetDefault("matching.enable_debug_logging", false)

	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("runway.image_timeout", "10s")
	v.SetDefault("runway.image_size", 400)

	v.SetDefault("feedback.path", "data/users_feedback.csv")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.LLM.APIKey == "" {
		return fmt.Errorf("LLM API key is required (set STYLIST_LLM_API_KEY)")
	}

	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required")
	}

	if config.Matching.StageFloor < 1 {
		return fmt.Errorf("matching stage floor must be at least 1, got: %d", config.Matching.StageFloor)
	}

	return nil
}
