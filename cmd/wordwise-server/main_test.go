package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordwise/internal/bootstrap"
	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

func TestNewServer(t *testing.T) {
	ctx := context.Background()
	storePath := filepath.Join(t.TempDir(), "dictionary.json")
	require.NoError(t, dictionary.NewJSONStore(storePath).Put(ctx, "cat", dictionary.Entry{Definition: "a feline"}))

	cfg := &config.Config{
		Store:  config.StoreConfig{Backend: config.StoreBackendJSON, Path: storePath},
		Speech: config.SpeechConfig{Language: "en", Timeout: time.Second},
		Server: config.ServerConfig{
			Port: 8081,
			CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		},
	}

	app := bootstrap.New()
	t.Cleanup(func() {
		require.NoError(t, app.Shutdown(context.Background()))
	})
	srv, err := newServer(ctx, app, cfg)
	require.NoError(t, err)
	assert.Equal(t, ":8081", srv.Addr)

	req := httptest.NewRequest(http.MethodGet, "/api/words/cat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), `"definition":"a feline"`)
}

func TestLoadConfig(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "missing.yml")
	t.Cleanup(func() { configFile = "" })

	_, err := loadConfig()
	assert.Error(t, err)
}
