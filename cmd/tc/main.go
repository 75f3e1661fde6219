package main

import (
	"context"
	"fmt"
	"os"

	"timeclock/internal/api"
	"timeclock/internal/billing"
	"timeclock/internal/cli"
	"timeclock/internal/clock"
	"timeclock/internal/config"
	"timeclock/internal/engine"
	"timeclock/internal/logging"
	"timeclock/internal/rates"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Application.Verbose)
	defer logger.Sync()

	// Create store based on environment
	factory := NewStoreFactory(getEnvironment(), cfg)
	st, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	// Interactive commands (status --watch) may run until interrupted
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	eng, err := engine.New(ctx, st, clock.System(), engine.Options{
		TickInterval: cfg.Engine.TickInterval,
		Logger:       logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting timer engine: %v\n", err)
		os.Exit(1)
	}

	// A billing sink is only wired when a remote endpoint is configured;
	// without one, stopped sessions are reported locally and discarded.
	var sink billing.Sink
	if cfg.Billing.APIBaseURL != "" {
		sink = billing.NewClient(cfg.Billing.APIBaseURL, cfg.Billing.RequestTimeout)
	}

	apiInstance := api.New(eng, rates.NewConfigResolver(cfg.Billing), sink, cfg.User.ID)
	defer apiInstance.Close()

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
