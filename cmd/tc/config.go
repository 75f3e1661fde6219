package main

import (
	"fmt"
	"os"
	"path/filepath"

	"timeclock/internal/config"
	"timeclock/internal/store"
	"timeclock/internal/store/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StoreFactory creates store instances based on environment
type StoreFactory struct {
	env Environment
	cfg *config.Config
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment, cfg *config.Config) *StoreFactory {
	return &StoreFactory{env: env, cfg: cfg}
}

// CreateStore creates a store instance based on the current environment
func (sf *StoreFactory) CreateStore() (store.Store, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStore()
	case Testing:
		return sf.createTestingStore()
	case Production:
		return sf.createProductionStore()
	default:
		return sf.createProductionStore() // Default to production
	}
}

// createDevelopmentStore creates a store for development
// Uses a local SQLite database in the project directory
func (sf *StoreFactory) createDevelopmentStore() (store.Store, error) {
	st, err := sqlite.New("tc.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return st, nil
}

// createTestingStore creates a store for testing
// Uses an in-memory store so test runs never touch disk
func (sf *StoreFactory) createTestingStore() (store.Store, error) {
	return store.NewMemory(), nil
}

// createProductionStore creates a store for production
// Uses the configured SQLite database location, creating the directory
// on first run
func (sf *StoreFactory) createProductionStore() (store.Store, error) {
	dbPath := sf.cfg.GetStorePath()

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	st, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production database: %w", err)
	}
	return st, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("TC_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}
