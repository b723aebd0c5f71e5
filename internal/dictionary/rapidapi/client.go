package rapidapi

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

type Config struct {
	Host    string
	Key     string
	Timeout time.Duration
	// BaseURL overrides https://{Host}
	BaseURL string
}

// Client looks words up in WordsAPI on RapidAPI.
type Client struct {
	config Config
	client *resty.Client
}

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "https://" + config.Host
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		config: config,
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout),
	}
}

func (c *Client) lookupAPI(ctx context.Context, word string) ([]byte, error) {
	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("x-rapidapi-host", c.config.Host).
		SetHeader("x-rapidapi-key", c.config.Key).
		SetPathParam("word", word).
		Get("/words/{word}")
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, dictionary.ErrRemoteNotFound
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), string(res.Body()))
	}
	return res.Body(), nil
}

// Lookup returns the raw WordsAPI response of a word.
func (c *Client) Lookup(ctx context.Context, word string) (Response, error) {
	var resp Response
	body, err := c.lookupAPI(ctx, word)
	if err != nil {
		return resp, fmt.Errorf("c.lookupAPI > %w", err)
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return resp, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return resp, nil
}

func (c *Client) Fetch(ctx context.Context, word string) (dictionary.Entry, error) {
	slog.Default().Debug("words api request", "word", word)
	resp, err := c.Lookup(ctx, word)
	if err != nil {
		return dictionary.Entry{}, fmt.Errorf("c.Lookup > %w", err)
	}
	if len(resp.Results) == 0 {
		return dictionary.Entry{}, dictionary.ErrRemoteNotFound
	}
	return resp.ToEntry(), nil
}
