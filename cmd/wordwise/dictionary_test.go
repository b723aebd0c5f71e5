package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/testutil"
)

func TestAPI_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    API
		wantErr bool
	}{
		{
			name:  "free dictionary",
			value: "free_dictionary",
			want:  APIFreeDictionary,
		},
		{
			name:  "words api",
			value: "words_api",
			want:  APIWordsAPIInRapidAPI,
		},
		{
			name:  "offline",
			value: "offline",
			want:  APIOffline,
		},
		{
			name:    "invalid API value",
			value:   "invalid_api",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var api API
			err := api.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "invalid API")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, api)
		})
	}
}

func TestAPI_String(t *testing.T) {
	api := APIWordsAPIInRapidAPI
	assert.Equal(t, "words_api", api.String())
}

func TestAPI_Type(t *testing.T) {
	api := APIWordsAPIInRapidAPI
	assert.Equal(t, "API", api.Type())
}

func TestAPI_apply(t *testing.T) {
	tests := []struct {
		name string
		api  API
		want string
	}{
		{name: "unset keeps the config", api: "", want: config.RemoteAPIFreeDictionary},
		{name: "words api", api: APIWordsAPIInRapidAPI, want: config.RemoteAPIWordsAPI},
		{name: "offline", api: APIOffline, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Remote: config.RemoteConfig{API: config.RemoteAPIFreeDictionary}}
			tt.api.apply(cfg)
			assert.Equal(t, tt.want, cfg.Remote.API)
		})
	}
}

func TestDictionaryCommands(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfig(t, tmpDir)

	steps := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{
			name: "add",
			args: []string{"add", "Cat", "--definition", "a feline", "--examples", "the cat sat", "--synonyms", "kitty, puss"},
			want: []string{"The word 'cat' added."},
		},
		{
			name: "add without fields",
			args: []string{"add", "dog"},
			want: []string{"Word not added. All fields are empty."},
		},
		{
			name:    "add a stored word",
			args:    []string{"add", "cat", "--definition", "again"},
			wantErr: "'cat' is already in the dictionary",
		},
		{
			name: "lookup a stored word",
			args: []string{"lookup", "CAT "},
			want: []string{"Word: Cat", "Definition: a feline", "Examples: the cat sat", "Synonyms: kitty, puss"},
		},
		{
			name: "lookup a typo offline",
			args: []string{"lookup", "cwt"},
			want: []string{"'cwt' not found.", "Did you mean 'cat'?"},
		},
		{
			name: "suggest",
			args: []string{"suggest", "cwt"},
			want: []string{"Did you mean 'cat'?"},
		},
		{
			name: "suggest nothing",
			args: []string{"suggest", "elephant"},
			want: []string{"No similar words found."},
		},
		{
			name: "complete",
			args: []string{"complete", "ca"},
			want: []string{"cat"},
		},
		{
			name: "edit keeps lists",
			args: []string{"edit", "cat", "--definition", "a small feline", "--antonyms", "dog"},
			want: []string{"'cat' has been updated.", "Definition: a small feline", "Synonyms: kitty, puss", "Antonyms: dog"},
		},
		{
			name: "edit an unknown word",
			args: []string{"edit", "dog", "--definition", "a canine"},
			want: []string{"'dog' not found."},
		},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			out, err := execute(t, configPath, step.args...)
			if step.wantErr != "" {
				assert.ErrorContains(t, err, step.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range step.want {
				assert.Contains(t, out, want)
			}
		})
	}

	content, err := os.ReadFile(testutil.StorePath(tmpDir))
	require.NoError(t, err)
	var stored map[string]map[string]any
	require.NoError(t, json.Unmarshal(content, &stored))
	assert.Equal(t, []string{"cat"}, keys(stored))
	assert.Equal(t, "a small feline", stored["cat"]["definition"])
}

func TestExportCommand(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfig(t, tmpDir)
	testutil.AddWord(t, testutil.StorePath(tmpDir), "cat", "a feline")

	tests := []struct {
		format string
		file   string
		want   string
	}{
		{format: "yaml", file: "dictionary.yml", want: "word: cat"},
		{format: "markdown", file: "dictionary.md", want: "## Cat"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), tt.file)
			out, err := execute(t, configPath, "export", "--format", tt.format, "--output", output)
			require.NoError(t, err)
			assert.Contains(t, out, "Exported 1 words to "+output)

			content, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.Contains(t, string(content), tt.want)
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, configPath, "export", "--format", "csv")
		assert.ErrorContains(t, err, "unsupported format")
	})
}

func TestInteractiveCommand(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfig(t, tmpDir)
	testutil.AddWord(t, testutil.StorePath(tmpDir), "cat", "a feline")

	out, err := executeWith(t, "cat\n:quit\n", "--config", configPath, "--api", "offline", "repl", "--no-speech")
	require.NoError(t, err)
	assert.Contains(t, out, "Definition: a feline")
	assert.Contains(t, out, "Bye.")
}

func TestLookupCommand_Remote(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/hello", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"word": "hello", "meanings": [{"partOfSpeech": "noun", "definitions": [{"definition": "a greeting", "example": "hello there"}]}]}]`))
	}))
	defer srv.Close()

	tmpDir := t.TempDir()
	configPath := testutil.SetupTestConfigWithRemote(t, tmpDir, "free_dictionary", srv.URL)

	for range 2 {
		out, err := executeWith(t, "", "--config", configPath, "lookup", "hello")
		require.NoError(t, err)
		assert.Contains(t, out, "Word: Hello")
		assert.Contains(t, out, "Definition: a greeting")
		assert.Contains(t, out, "Examples: hello there")
	}
	assert.Equal(t, int32(1), requests.Load(), "the second lookup is answered by the local dictionary")

	content, err := os.ReadFile(testutil.StorePath(tmpDir))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"hello"`)
}

func keys(m map[string]map[string]any) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}
