package speech

import (
	"context"
	"errors"
)

//go:generate mockgen -source=speech.go -destination=../mocks/speech/mock_speech.go -package=mock_speech

var (
	// ErrPlayback is wrapped by every failure to play audio on the host.
	ErrPlayback = errors.New("failed to play audio")
	// ErrNoPlayer is returned when no audio player is installed.
	ErrNoPlayer = errors.New("no audio player found")
	// ErrUnsupportedPlatform is returned on an operating system without a known player.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// Audio is synthesized voice.
type Audio struct {
	Data   []byte
	Format string
}

// Synthesizer converts text into Audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (Audio, error)
}

// Player plays an audio file.
type Player interface {
	Play(ctx context.Context, path string) error
}
