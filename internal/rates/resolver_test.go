package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timeclock/internal/config"
)

func TestConfigResolver_Resolve(t *testing.T) {
	resolver := NewConfigResolver(config.BillingConfig{
		DefaultRate: 60,
		CustomerRates: map[string]float64{
			"acme":   95,
			"globex": 120.5,
		},
	})

	tests := []struct {
		name       string
		customerID string
		expected   float64
	}{
		{"known customer", "acme", 95},
		{"another known customer", "globex", 120.5},
		{"unknown customer falls back to default", "initech", 60},
		{"empty customer falls back to default", "", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.Resolve(tt.customerID))
		})
	}
}

func TestFixed(t *testing.T) {
	resolver := Fixed(75)

	assert.Equal(t, float64(75), resolver.Resolve("anyone"))
	assert.Equal(t, float64(75), resolver.Resolve(""))
}
