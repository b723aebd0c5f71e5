package speech

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

type command struct {
	name string
	args []string
}

var linuxPlayers = []command{
	{name: "mplayer"},
	{name: "aplay"},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit"}},
	{name: "xdg-open"},
}

// CommandPlayer plays audio with a command installed on the host.
type CommandPlayer struct {
	goos     string
	lookPath func(file string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

func NewCommandPlayer() *CommandPlayer {
	return &CommandPlayer{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (p *CommandPlayer) command(path string) (command, error) {
	switch p.goos {
	case "darwin":
		return command{name: "open", args: []string{path}}, nil
	case "windows":
		return command{name: "cmd", args: []string{"/c", "start", "", path}}, nil
	case "linux":
		for _, player := range linuxPlayers {
			if _, err := p.lookPath(player.name); err != nil {
				continue
			}
			return command{
				name: player.name,
				args: append(append([]string{}, player.args...), path),
			}, nil
		}
		return command{}, fmt.Errorf("%w: %w", ErrPlayback, ErrNoPlayer)
	default:
		return command{}, fmt.Errorf("%w: %w: %s", ErrPlayback, ErrUnsupportedPlatform, p.goos)
	}
}

func (p *CommandPlayer) Play(ctx context.Context, path string) error {
	cmd, err := p.command(path)
	if err != nil {
		return err
	}
	slog.Default().Debug("play audio", "command", cmd.name, "path", path)
	if err := p.run(ctx, cmd.name, cmd.args...); err != nil {
		return fmt.Errorf("%w: %s > %w", ErrPlayback, cmd.name, err)
	}
	return nil
}
