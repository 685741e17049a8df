package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all configuration for the storefront engine
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Business BusinessConfig `mapstructure:"business"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port string `mapstructure:"SERVER_PORT"`
	Host string `mapstructure:"SERVER_HOST"`
	Env  string `mapstructure:"ENV"`
}

type StorageConfig struct {
	StateFile string `mapstructure:"STATE_FILE"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"JWT_SECRET"`
	TokenTTL  string `mapstructure:"TOKEN_TTL"`
}

type BusinessConfig struct {
	FreeShippingThreshold string `mapstructure:"FREE_SHIPPING_THRESHOLD"`
	ShippingFee           string `mapstructure:"SHIPPING_FEE"`
	CheckoutDelay         string `mapstructure:"CHECKOUT_DELAY"`
	NotificationTTL       string `mapstructure:"NOTIFICATION_TTL"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"LOG_LEVEL"`
	Format string `mapstructure:"LOG_FORMAT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("STATE_FILE", "easy-qist-state.json")
	viper.SetDefault("JWT_SECRET", "easy-qist-dev-secret")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("FREE_SHIPPING_THRESHOLD", "100")
	viper.SetDefault("SHIPPING_FEE", "10")
	viper.SetDefault("CHECKOUT_DELAY", "2s")
	viper.SetDefault("NOTIFICATION_TTL", "5s")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Storage.StateFile == "" {
		return fmt.Errorf("STATE_FILE is required")
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if _, err := decimal.NewFromString(c.Business.FreeShippingThreshold); err != nil {
		return fmt.Errorf("FREE_SHIPPING_THRESHOLD must be a valid decimal: %w", err)
	}

	if _, err := decimal.NewFromString(c.Business.ShippingFee); err != nil {
		return fmt.Errorf("SHIPPING_FEE must be a valid decimal: %w", err)
	}

	if _, err := time.ParseDuration(c.Business.CheckoutDelay); err != nil {
		return fmt.Errorf("CHECKOUT_DELAY must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Business.NotificationTTL); err != nil {
		return fmt.Errorf("NOTIFICATION_TTL must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Auth.TokenTTL); err != nil {
		return fmt.Errorf("TOKEN_TTL must be a valid duration: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// GetFreeShippingThreshold returns the free shipping threshold as decimal
func (c *Config) GetFreeShippingThreshold() decimal.Decimal {
	v, _ := decimal.NewFromString(c.Business.FreeShippingThreshold)
	return v
}

// GetShippingFee returns the flat shipping fee as decimal
func (c *Config) GetShippingFee() decimal.Decimal {
	v, _ := decimal.NewFromString(c.Business.ShippingFee)
	return v
}

// GetCheckoutDelay returns the simulated payment processing delay
func (c *Config) GetCheckoutDelay() time.Duration {
	d, _ := time.ParseDuration(c.Business.CheckoutDelay)
	return d
}

// GetNotificationTTL returns how long a notification stays visible
func (c *Config) GetNotificationTTL() time.Duration {
	d, _ := time.ParseDuration(c.Business.NotificationTTL)
	return d
}

// GetTokenTTL returns the session token lifetime
func (c *Config) GetTokenTTL() time.Duration {
	d, _ := time.ParseDuration(c.Auth.TokenTTL)
	return d
}
