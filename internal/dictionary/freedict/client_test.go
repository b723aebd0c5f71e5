package freedict

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		wantPath   string
		statusCode int
		body       string
		want       dictionary.Entry
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:       "aggregates every meaning",
			word:       "happy",
			wantPath:   "/happy",
			statusCode: http.StatusOK,
			body: `[{
				"word": "happy",
				"meanings": [
					{
						"partOfSpeech": "adjective",
						"definitions": [
							{"definition": "Feeling pleasure.", "example": "a happy child", "synonyms": ["glad", "joyful"], "antonyms": ["sad"]},
							{"definition": "Fortunate.", "synonyms": ["lucky", "glad"], "antonyms": []}
						]
					},
					{
						"partOfSpeech": "verb",
						"definitions": [
							{"definition": "To become happy.", "example": "happy up", "antonyms": ["sad", "unhappy"]}
						]
					}
				]
			}, {
				"word": "happy",
				"meanings": [{"partOfSpeech": "noun", "definitions": [{"definition": "ignored", "example": "ignored"}]}]
			}]`,
			want: dictionary.Entry{
				Definition: "Feeling pleasure.",
				Examples:   []string{"a happy child", "happy up"},
				Synonyms:   []string{"glad", "joyful", "lucky"},
				Antonyms:   []string{"sad", "unhappy"},
			},
		},
		{
			name:       "first definition without text",
			word:       "odd",
			wantPath:   "/odd",
			statusCode: http.StatusOK,
			body:       `[{"meanings": [{"definitions": [{"example": "an odd one"}, {"definition": "strange"}]}]}]`,
			want: dictionary.Entry{
				Definition: dictionary.NoDefinition,
				Examples:   []string{"an odd one"},
				Synonyms:   []string{},
				Antonyms:   []string{},
			},
		},
		{
			name:       "meanings without definitions",
			word:       "odd",
			wantPath:   "/odd",
			statusCode: http.StatusOK,
			body:       `[{"meanings": [{"partOfSpeech": "noun", "definitions": []}]}]`,
			want: dictionary.Entry{
				Definition: dictionary.NoDefinition,
				Examples:   []string{},
				Synonyms:   []string{},
				Antonyms:   []string{},
			},
		},
		{
			name:       "phrase is escaped",
			word:       "ice cream",
			wantPath:   "/ice cream",
			statusCode: http.StatusOK,
			body:       `[{"meanings": [{"definitions": [{"definition": "a frozen dessert"}]}]}]`,
			want: dictionary.Entry{
				Definition: "a frozen dessert",
				Examples:   []string{},
				Synonyms:   []string{},
				Antonyms:   []string{},
			},
		},
		{
			name:       "unknown word",
			word:       "qwzx",
			wantPath:   "/qwzx",
			statusCode: http.StatusNotFound,
			body:       `{"title": "No Definitions Found"}`,
			wantErr:    dictionary.ErrRemoteNotFound,
		},
		{
			name:       "no meanings",
			word:       "qwzx",
			wantPath:   "/qwzx",
			statusCode: http.StatusOK,
			body:       `[{"word": "qwzx", "meanings": []}]`,
			wantErr:    dictionary.ErrRemoteNotFound,
		},
		{
			name:       "empty array",
			word:       "qwzx",
			wantPath:   "/qwzx",
			statusCode: http.StatusOK,
			body:       `[]`,
			wantErr:    dictionary.ErrRemoteNotFound,
		},
		{
			name:       "server error",
			word:       "cat",
			wantPath:   "/cat",
			statusCode: http.StatusInternalServerError,
			body:       `oops`,
			wantAnyErr: true,
		},
		{
			name:       "invalid JSON",
			word:       "cat",
			wantPath:   "/cat",
			statusCode: http.StatusOK,
			body:       `{not json`,
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewClient(srv.URL, time.Second).Fetch(context.Background(), tt.word)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			if tt.wantAnyErr {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, dictionary.ErrRemoteNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClient_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 50*time.Millisecond).Fetch(context.Background(), "cat")
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.client.BaseURL)
	assert.Equal(t, DefaultTimeout, c.client.GetClient().Timeout)
}
