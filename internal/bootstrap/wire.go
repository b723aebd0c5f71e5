package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/database"
	"github.com/at-ishikawa/wordwise/internal/dictionary"
	"github.com/at-ishikawa/wordwise/internal/dictionary/freedict"
	"github.com/at-ishikawa/wordwise/internal/dictionary/rapidapi"
	"github.com/at-ishikawa/wordwise/internal/speech"
)

// NewStore opens the configured word store.
// A MySQL connection is closed by the shutdown hooks of app.
func NewStore(ctx context.Context, app *App, cfg *config.Config) (dictionary.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		app.AddShutdownHook(func(ctx context.Context) error {
			return db.Close()
		})
		if err := database.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("database.Migrate > %w", err)
		}
		return dictionary.NewDBStore(db), nil
	case config.StoreBackendJSON, "":
		store := dictionary.Load(cfg.Store.Path)
		slog.Default().Debug("word store loaded", "path", store.Path(), "words", store.Len())
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}

// NewFetcher returns the remote dictionary of the configured API, or nil for offline lookups.
func NewFetcher(cfg *config.Config) (dictionary.Fetcher, error) {
	switch cfg.Remote.API {
	case config.RemoteAPIFreeDictionary:
		return freedict.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout), nil
	case config.RemoteAPIWordsAPI:
		rapidAPI := cfg.Dictionaries.RapidAPI
		if rapidAPI.Host == "" || rapidAPI.Key == "" {
			return nil, fmt.Errorf("RAPID_API_HOST and RAPID_API_KEY are required for %s", config.RemoteAPIWordsAPI)
		}
		return rapidapi.NewClient(rapidapi.Config{
			Host:    rapidAPI.Host,
			Key:     rapidAPI.Key,
			Timeout: cfg.Remote.Timeout,
			BaseURL: cfg.Remote.BaseURL,
		}), nil
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown remote api: %s", cfg.Remote.API)
	}
}

// NewResolver wires the word store and the remote dictionary.
func NewResolver(ctx context.Context, app *App, cfg *config.Config) (*dictionary.Resolver, error) {
	store, err := NewStore(ctx, app, cfg)
	if err != nil {
		return nil, fmt.Errorf("NewStore > %w", err)
	}
	fetcher, err := NewFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("NewFetcher > %w", err)
	}
	return dictionary.NewResolver(store, fetcher), nil
}

// NewPronouncer wires Google text-to-speech with the platform audio player.
func NewPronouncer(app *App, cfg *config.Config) *speech.Pronouncer {
	synthesizer := speech.NewGoogleSynthesizer(cfg.Speech.BaseURL, cfg.Speech.Language, cfg.Speech.Timeout)
	app.AddShutdownHook(func(ctx context.Context) error {
		return synthesizer.Close()
	})
	return speech.NewPronouncer(synthesizer, speech.NewCommandPlayer(), cfg.Speech.AudioDirectory)
}
