package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordwise/internal/bootstrap"
	"github.com/at-ishikawa/wordwise/internal/cli"
	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

func newInteractiveCommand() *cobra.Command {
	var noSpeech bool
	command := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"repl"},
		Short:   "Look words up interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withResolver(cmd.Context(), func(ctx context.Context, app *bootstrap.App, cfg *config.Config, resolver *dictionary.Resolver) error {
				var pronouncer cli.Pronouncer
				if !noSpeech {
					pronouncer = bootstrap.NewPronouncer(app, cfg)
				}
				session := cli.NewLookupSession(cmd.InOrStdin(), cmd.OutOrStdout(), resolver, pronouncer)
				return session.Run(ctx, session)
			})
		},
	}
	command.Flags().BoolVar(&noSpeech, "no-speech", false, "disable :say")
	return command
}
