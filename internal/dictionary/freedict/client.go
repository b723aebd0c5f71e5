package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

const (
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultTimeout = 5 * time.Second
)

// Client looks words up in the Free Dictionary API.
type Client struct {
	client *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

// Fetch returns the entry of a word built from the first result of the API.
// dictionary.ErrRemoteNotFound is returned when the API knows no meanings of the word.
func (c *Client) Fetch(ctx context.Context, word string) (dictionary.Entry, error) {
	slog.Default().Debug("free dictionary request", "word", word)

	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("word", word).
		Get("/{word}")
	if err != nil {
		return dictionary.Entry{}, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return dictionary.Entry{}, dictionary.ErrRemoteNotFound
	}
	if res.StatusCode() != http.StatusOK {
		return dictionary.Entry{}, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}

	var entries []apiEntry
	if err := json.Unmarshal(res.Body(), &entries); err != nil {
		return dictionary.Entry{}, fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(entries) == 0 || len(entries[0].Meanings) == 0 {
		return dictionary.Entry{}, dictionary.ErrRemoteNotFound
	}
	return toEntry(entries[0]), nil
}

func toEntry(entry apiEntry) dictionary.Entry {
	builder := dictionary.NewEntryBuilder()
	for _, meaning := range entry.Meanings {
		for _, definition := range meaning.Definitions {
			text := dictionary.NoDefinition
			if definition.Definition != nil {
				text = *definition.Definition
			}
			builder.AddSense(text, definition.Example, definition.Synonyms, definition.Antonyms)
		}
	}
	return builder.Entry()
}
