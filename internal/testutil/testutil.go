// Package testutil provides shared test helpers for creating config files and dictionary fixtures.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

// SetupTestConfig creates a minimal config file whose store and audio directory live in tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "audio"), 0755))

	configContent := fmt.Sprintf(`store:
  backend: json
  path: %s
speech:
  audio_directory: %s
`,
		StorePath(tmpDir),
		filepath.Join(tmpDir, "audio"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithRemote creates a config file that looks words up from the given API and base URL.
func SetupTestConfigWithRemote(t *testing.T, tmpDir, api, baseURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, fmt.Appendf(nil, "remote:\n  api: %s\n  base_url: %s\n  timeout: 2s\n", api, baseURL)...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// StorePath returns the dictionary file configured by SetupTestConfig.
func StorePath(tmpDir string) string {
	return filepath.Join(tmpDir, "dictionary.json")
}

// EntryOption configures optional fields when creating a dictionary fixture.
type EntryOption func(*dictionary.Entry)

func WithExamples(examples ...string) EntryOption {
	return func(e *dictionary.Entry) {
		e.Examples = examples
	}
}

func WithSynonyms(synonyms ...string) EntryOption {
	return func(e *dictionary.Entry) {
		e.Synonyms = synonyms
	}
}

func WithAntonyms(antonyms ...string) EntryOption {
	return func(e *dictionary.Entry) {
		e.Antonyms = antonyms
	}
}

// AddWord stores a word in the dictionary file at storePath, creating the file if needed.
func AddWord(t *testing.T, storePath, word, definition string, opts ...EntryOption) dictionary.Entry {
	t.Helper()

	entry := dictionary.Entry{Definition: definition}
	for _, opt := range opts {
		opt(&entry)
	}
	store := dictionary.Load(storePath)
	require.NoError(t, store.Put(context.Background(), word, entry))

	stored, ok, err := store.Get(context.Background(), word)
	require.NoError(t, err)
	require.True(t, ok)
	return stored
}
