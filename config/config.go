package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Extraction ExtractionConfig
	Storage    StorageConfig
	Cache      CacheConfig
	Suggestion SuggestionConfig
	RateLimit  RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ExtractionConfig holds text-extraction configuration. TesseractPath is
// resolved against PATH when it is a bare command name; it is never
// compiled into the binary.
type ExtractionConfig struct {
	TesseractPath string        `mapstructure:"tesseract_path"`
	Languages     string        `mapstructure:"languages"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxPDFPages   int           `mapstructure:"max_pdf_pages"`
}

// StorageConfig holds upload storage configuration
type StorageConfig struct {
	UploadDir     string `mapstructure:"upload_dir"`
	MaxUploadSize int64  `mapstructure:"max_upload_size"`
}

// CacheConfig holds extraction-cache configuration
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// SuggestionConfig holds nearest-token suggestion configuration
type SuggestionConfig struct {
	MinRatio float64 `mapstructure:"min_ratio"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"`
	Burst int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/veridoc/")

	// Environment variable settings
	v.SetEnvPrefix("VERIDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Extraction defaults
	v.SetDefault("extraction.tesseract_path", "tesseract")
	v.SetDefault("extraction.languages", "eng")
	v.SetDefault("extraction.timeout", "30s")
	v.SetDefault("extraction.max_pdf_pages", 50)

	// Storage defaults
	v.SetDefault("storage.upload_dir", "./uploads")
	v.SetDefault("storage.max_upload_size", 10*1024*1024) // 10 MB

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.cleanup_interval", "10m")

	// Suggestion defaults: 0.6 is the floor the legacy verifier inherited
	// from its similarity library
	v.SetDefault("suggestion.min_ratio", 0.6)

	// Rate limit defaults (requests per second per client IP)
	v.SetDefault("ratelimit.per_ip", 10)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Storage.UploadDir == "" {
		return fmt.Errorf("storage upload_dir is required")
	}

	if config.Storage.MaxUploadSize <= 0 {
		return fmt.Errorf("storage max_upload_size must be positive, got: %d", config.Storage.MaxUploadSize)
	}

	if config.Extraction.Timeout <= 0 {
		return fmt.Errorf("extraction timeout must be positive, got: %s", config.Extraction.Timeout)
	}

	if config.Suggestion.MinRatio < 0 || config.Suggestion.MinRatio > 1 {
		return fmt.Errorf("suggestion min_ratio must be in [0, 1], got: %v", config.Suggestion.MinRatio)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit per_ip must be positive, got: %v", config.RateLimit.PerIP)
	}

	return nil
}
