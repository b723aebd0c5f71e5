package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/wordwise/internal/bootstrap"
	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	remoteAPI.apply(cfg)
	return cfg, nil
}

// withResolver wires the configured resolver, runs fn and shuts the wired components down.
func withResolver(ctx context.Context, fn func(ctx context.Context, app *bootstrap.App, cfg *config.Config, resolver *dictionary.Resolver) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	app := bootstrap.New()
	defer func() {
		if err := app.Shutdown(context.Background()); err != nil {
			slog.Default().Warn("failed to shut down", "error", err)
		}
	}()

	resolver, err := bootstrap.NewResolver(ctx, app, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap.NewResolver > %w", err)
	}
	return fn(ctx, app, cfg, resolver)
}
