package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the timeclock application
type Config struct {
	Store       StoreConfig
	Engine      EngineConfig
	Billing     BillingConfig
	User        UserConfig
	Application ApplicationConfig
}

// StoreConfig holds local-store configuration
type StoreConfig struct {
	Dir          string        `env:"TC_STORE_DIR"`
	Filename     string        `env:"TC_STORE_FILENAME"`
	WriteTimeout time.Duration `env:"TC_STORE_WRITE_TIMEOUT"`
}

// EngineConfig holds timer engine configuration
type EngineConfig struct {
	TickInterval time.Duration `env:"TC_TICK_INTERVAL"`
}

// BillingConfig holds billing-rate and remote API configuration
type BillingConfig struct {
	// APIBaseURL points at the remote billing service; empty disables
	// submission and stopped logs are only reported locally.
	APIBaseURL     string        `env:"TC_BILLING_API_URL"`
	RequestTimeout time.Duration `env:"TC_BILLING_API_TIMEOUT"`
	DefaultRate    float64       `env:"TC_BILLING_DEFAULT_RATE"`
	// CustomerRates maps customer ids to hourly rates, parsed from a
	// "cust1=95,cust2=120" environment value.
	CustomerRates map[string]float64 `env:"TC_BILLING_RATES"`
}

// UserConfig identifies the owner of tracked sessions
type UserConfig struct {
	ID string `env:"TC_USER"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TC_APP_TIMEOUT"`
	Verbose bool          `env:"TC_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStoreDir := filepath.Join(homeDir, ".timeclock")

	return &Config{
		Store: StoreConfig{
			Dir:          defaultStoreDir,
			Filename:     "timeclock.db",
			WriteTimeout: 5 * time.Second,
		},
		Engine: EngineConfig{
			TickInterval: time.Second,
		},
		Billing: BillingConfig{
			RequestTimeout: 10 * time.Second,
			DefaultRate:    0,
			CustomerRates:  make(map[string]float64),
		},
		User: UserConfig{
			ID: "default",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStorePath returns the full path to the local store file
func (c *Config) GetStorePath() string {
	return filepath.Join(c.Store.Dir, c.Store.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Store configuration
	if dir := os.Getenv("TC_STORE_DIR"); dir != "" {
		c.Store.Dir = dir
	}
	if filename := os.Getenv("TC_STORE_FILENAME"); filename != "" {
		c.Store.Filename = filename
	}
	if timeout := os.Getenv("TC_STORE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Store.WriteTimeout = d
		}
	}

	// Engine configuration
	if interval := os.Getenv("TC_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Engine.TickInterval = d
		}
	}

	// Billing configuration
	if url := os.Getenv("TC_BILLING_API_URL"); url != "" {
		c.Billing.APIBaseURL = url
	}
	if timeout := os.Getenv("TC_BILLING_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Billing.RequestTimeout = d
		}
	}
	if rate := os.Getenv("TC_BILLING_DEFAULT_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil {
			c.Billing.DefaultRate = r
		}
	}
	if rates := os.Getenv("TC_BILLING_RATES"); rates != "" {
		c.Billing.CustomerRates = parseRates(rates)
	}

	// User configuration
	if user := os.Getenv("TC_USER"); user != "" {
		c.User.ID = user
	}

	// Application configuration
	if timeout := os.Getenv("TC_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TC_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// parseRates parses "cust1=95,cust2=120" into per-customer hourly rates.
// Malformed entries are skipped.
func parseRates(s string) map[string]float64 {
	rates := make(map[string]float64)
	for _, pair := range strings.Split(s, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || key == "" {
			continue
		}
		if rate, err := strconv.ParseFloat(value, 64); err == nil && rate >= 0 {
			rates[key] = rate
		}
	}
	return rates
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Store.Dir == "" {
		return &ConfigError{Field: "store.dir", Message: "store directory cannot be empty"}
	}
	if c.Store.Filename == "" {
		return &ConfigError{Field: "store.filename", Message: "store filename cannot be empty"}
	}
	if c.Store.WriteTimeout <= 0 {
		return &ConfigError{Field: "store.write_timeout", Message: "write timeout must be positive"}
	}
	if c.Engine.TickInterval <= 0 {
		return &ConfigError{Field: "engine.tick_interval", Message: "tick interval must be positive"}
	}
	if c.Billing.RequestTimeout <= 0 {
		return &ConfigError{Field: "billing.request_timeout", Message: "request timeout must be positive"}
	}
	if c.Billing.DefaultRate < 0 {
		return &ConfigError{Field: "billing.default_rate", Message: "default rate must be non-negative"}
	}
	for customer, rate := range c.Billing.CustomerRates {
		if rate < 0 {
			return &ConfigError{Field: "billing.customer_rates", Message: "rate for " + customer + " must be non-negative"}
		}
	}
	if c.User.ID == "" {
		return &ConfigError{Field: "user.id", Message: "user id cannot be empty"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
