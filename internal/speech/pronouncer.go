package speech

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Pronouncer speaks words aloud through a temporary audio file.
type Pronouncer struct {
	synthesizer Synthesizer
	player      Player
	dir         string
}

// NewPronouncer creates a Pronouncer writing its audio files into dir.
// An empty dir means the system temporary directory.
func NewPronouncer(synthesizer Synthesizer, player Player, dir string) *Pronouncer {
	return &Pronouncer{
		synthesizer: synthesizer,
		player:      player,
		dir:         dir,
	}
}

func (p *Pronouncer) Pronounce(ctx context.Context, word string) error {
	word = strings.TrimSpace(word)
	if word == "" {
		return errors.New("word is empty")
	}

	audio, err := p.synthesizer.Synthesize(ctx, word)
	if err != nil {
		return fmt.Errorf("synthesizer.Synthesize > %w", err)
	}

	if p.dir != "" {
		if err := os.MkdirAll(p.dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll > %w", err)
		}
	}
	format := audio.Format
	if format == "" {
		format = "mp3"
	}
	file, err := os.CreateTemp(p.dir, "wordwise-*."+format)
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	path := file.Name()
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Default().Warn("failed to remove an audio file", "path", path, "error", err)
		}
	}()

	if _, err := file.Write(audio.Data); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}

	if err := p.player.Play(ctx, path); err != nil {
		return fmt.Errorf("player.Play > %w", err)
	}
	return nil
}
