package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/wordwise/internal/bootstrap"
	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/server"
	"github.com/at-ishikawa/wordwise/internal/speech"
)

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "wordwise-server",
		Short:         "WordWise dictionary HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", os.Getenv("WORDWISE_CONFIG"), "config file path")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	srv, err := newServer(ctx, app, cfg)
	if err != nil {
		return err
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
}

func newServer(ctx context.Context, app *bootstrap.App, cfg *config.Config) (*http.Server, error) {
	resolver, err := bootstrap.NewResolver(ctx, app, cfg)
	if err != nil {
		return nil, fmt.Errorf("bootstrap.NewResolver > %w", err)
	}

	synthesizer := speech.NewGoogleSynthesizer(cfg.Speech.BaseURL, cfg.Speech.Language, cfg.Speech.Timeout)
	app.AddShutdownHook(func(ctx context.Context) error {
		return synthesizer.Close()
	})

	handler := server.NewDictionaryHandler(resolver, synthesizer)
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.CORSMiddleware(cfg.Server.CORS.AllowedOrigins, h2c.NewHandler(handler.Routes(), &http2.Server{})),
	}, nil
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
