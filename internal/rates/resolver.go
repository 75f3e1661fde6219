package rates

import (
	"timeclock/internal/config"
)

// Resolver maps a customer to the hourly rate billed for their sessions.
// The resolved rate is handed to the engine's stop operation; the engine
// itself never looks rates up.
type Resolver interface {
	Resolve(customerID string) float64
}

type configResolver struct {
	customerRates map[string]float64
	defaultRate   float64
}

// NewConfigResolver creates a Resolver backed by the billing configuration:
// per-customer rates with a fallback default.
func NewConfigResolver(cfg config.BillingConfig) Resolver {
	return &configResolver{
		customerRates: cfg.CustomerRates,
		defaultRate:   cfg.DefaultRate,
	}
}

func (r *configResolver) Resolve(customerID string) float64 {
	if rate, ok := r.customerRates[customerID]; ok {
		return rate
	}
	return r.defaultRate
}

// Fixed returns a Resolver that answers the same rate for every customer.
func Fixed(rate float64) Resolver {
	return &configResolver{defaultRate: rate}
}
