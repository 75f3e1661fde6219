package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "timeclock.db", cfg.Store.Filename)
	assert.Equal(t, 5*time.Second, cfg.Store.WriteTimeout)
	assert.Equal(t, time.Second, cfg.Engine.TickInterval)
	assert.Empty(t, cfg.Billing.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Billing.RequestTimeout)
	assert.Equal(t, float64(0), cfg.Billing.DefaultRate)
	assert.Empty(t, cfg.Billing.CustomerRates)
	assert.Equal(t, "default", cfg.User.ID)
	assert.False(t, cfg.Application.Verbose)

	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("TC_STORE_DIR", "/tmp/timeclock-test")
	t.Setenv("TC_STORE_FILENAME", "custom.db")
	t.Setenv("TC_STORE_WRITE_TIMEOUT", "2s")
	t.Setenv("TC_TICK_INTERVAL", "250ms")
	t.Setenv("TC_BILLING_API_URL", "https://billing.example.com")
	t.Setenv("TC_BILLING_API_TIMEOUT", "3s")
	t.Setenv("TC_BILLING_DEFAULT_RATE", "80")
	t.Setenv("TC_BILLING_RATES", "acme=95,globex=120.5")
	t.Setenv("TC_USER", "user-1")
	t.Setenv("TC_APP_VERBOSE", "true")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/timeclock-test", cfg.Store.Dir)
	assert.Equal(t, "custom.db", cfg.Store.Filename)
	assert.Equal(t, 2*time.Second, cfg.Store.WriteTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Engine.TickInterval)
	assert.Equal(t, "https://billing.example.com", cfg.Billing.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Billing.RequestTimeout)
	assert.Equal(t, float64(80), cfg.Billing.DefaultRate)
	assert.Equal(t, map[string]float64{"acme": 95, "globex": 120.5}, cfg.Billing.CustomerRates)
	assert.Equal(t, "user-1", cfg.User.ID)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, filepath.Join("/tmp/timeclock-test", "custom.db"), cfg.GetStorePath())
}

func TestConfig_LoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("TC_TICK_INTERVAL", "not-a-duration")
	t.Setenv("TC_BILLING_DEFAULT_RATE", "not-a-number")
	t.Setenv("TC_APP_VERBOSE", "not-a-bool")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, time.Second, cfg.Engine.TickInterval)
	assert.Equal(t, float64(0), cfg.Billing.DefaultRate)
	assert.False(t, cfg.Application.Verbose)
}

func TestParseRates(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]float64
	}{
		{
			name:     "single entry",
			input:    "acme=95",
			expected: map[string]float64{"acme": 95},
		},
		{
			name:     "multiple entries with spaces",
			input:    "acme=95, globex=120",
			expected: map[string]float64{"acme": 95, "globex": 120},
		},
		{
			name:     "malformed entries skipped",
			input:    "acme=95,broken,=10,initech=abc,hooli=-5",
			expected: map[string]float64{"acme": 95},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseRates(tt.input))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedField string
	}{
		{"empty store dir", func(c *Config) { c.Store.Dir = "" }, "store.dir"},
		{"empty store filename", func(c *Config) { c.Store.Filename = "" }, "store.filename"},
		{"zero write timeout", func(c *Config) { c.Store.WriteTimeout = 0 }, "store.write_timeout"},
		{"zero tick interval", func(c *Config) { c.Engine.TickInterval = 0 }, "engine.tick_interval"},
		{"zero request timeout", func(c *Config) { c.Billing.RequestTimeout = 0 }, "billing.request_timeout"},
		{"negative default rate", func(c *Config) { c.Billing.DefaultRate = -1 }, "billing.default_rate"},
		{"negative customer rate", func(c *Config) { c.Billing.CustomerRates["acme"] = -1 }, "billing.customer_rates"},
		{"empty user id", func(c *Config) { c.User.ID = "" }, "user.id"},
		{"zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.expectedField, configErr.Field)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	t.Setenv("TC_USER", "loader-user")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, "loader-user", cfg.User.ID)
}
