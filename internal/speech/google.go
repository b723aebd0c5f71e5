package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"
)

const (
	DefaultGoogleBaseURL = "https://translate.google.com"
	DefaultLanguage      = "en"
)

// GoogleSynthesizer reads text aloud with the Google Translate TTS endpoint.
type GoogleSynthesizer struct {
	httpClient *resty.Client
	language   string
}

func NewGoogleSynthesizer(baseURL, language string, timeout time.Duration) *GoogleSynthesizer {
	if baseURL == "" {
		baseURL = DefaultGoogleBaseURL
	}
	if language == "" {
		language = DefaultLanguage
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &GoogleSynthesizer{
		httpClient: client,
		language:   language,
	}
}

func (s *GoogleSynthesizer) Close() error {
	return s.httpClient.Close()
}

func (s *GoogleSynthesizer) Synthesize(ctx context.Context, text string) (Audio, error) {
	if text == "" {
		return Audio{}, errors.New("text is empty")
	}
	slog.Default().Debug("synthesize speech", "text", text, "language", s.language)

	response, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ie":     "UTF-8",
			"client": "tw-ob",
			"tl":     s.language,
			"q":      text,
		}).
		Get("/translate_tts")
	if err != nil {
		return Audio{}, fmt.Errorf("httpClient.R.Get > %w", err)
	}
	if response.IsError() {
		return Audio{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	data := response.Bytes()
	if len(data) == 0 {
		return Audio{}, errors.New("empty audio")
	}
	return Audio{
		Data:   data,
		Format: "mp3",
	}, nil
}
