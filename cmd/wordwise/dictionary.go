package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordwise/internal/bootstrap"
	"github.com/at-ishikawa/wordwise/internal/cli"
	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

type API string

func (a *API) Set(val string) error {
	for _, api := range allAPIs {
		if val == string(api) {
			*a = api
			return nil
		}
	}
	return fmt.Errorf("invalid API: %s", val)
}

func (a API) String() string {
	return string(a)
}

func (a *API) Type() string {
	return "API"
}

// apply overrides the remote dictionary of cfg. An unset API keeps the configured one.
func (a API) apply(cfg *config.Config) {
	switch a {
	case "":
	case APIOffline:
		cfg.Remote.API = ""
	default:
		cfg.Remote.API = string(a)
	}
}

const (
	APIFreeDictionary     API = config.RemoteAPIFreeDictionary
	APIWordsAPIInRapidAPI API = config.RemoteAPIWordsAPI
	APIOffline            API = "offline"
)

var (
	_         pflag.Value = (*API)(nil)
	allAPIs               = []API{APIFreeDictionary, APIWordsAPIInRapidAPI, APIOffline}
	remoteAPI API
)

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Look a word up in the local dictionary and then the remote one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			out := cmd.OutOrStdout()
			return withResolver(cmd.Context(), func(ctx context.Context, _ *bootstrap.App, _ *config.Config, resolver *dictionary.Resolver) error {
				entry, err := resolver.Resolve(ctx, word)
				switch {
				case err == nil:
					return cli.WriteEntry(out, word, entry)
				case dictionary.IsPersistenceError(err):
					if err := cli.WriteEntry(out, word, entry); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, "Warning: %v\n", err)
					return nil
				case errors.Is(err, dictionary.ErrNotFound):
					_, _ = fmt.Fprintf(out, "'%s' not found.\n", word)
					match, ok, err := resolver.Suggest(ctx, word)
					if err != nil {
						return fmt.Errorf("resolver.Suggest > %w", err)
					}
					if ok {
						_, _ = fmt.Fprintf(out, "Did you mean '%s'?\n", match)
					}
					return nil
				default:
					return fmt.Errorf("resolver.Resolve > %w", err)
				}
			})
		},
	}
}

func newSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <word>",
		Short: "Suggest the closest stored word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]
			out := cmd.OutOrStdout()
			return withResolver(cmd.Context(), func(ctx context.Context, _ *bootstrap.App, _ *config.Config, resolver *dictionary.Resolver) error {
				match, ok, err := resolver.Suggest(ctx, word)
				if err != nil {
					return fmt.Errorf("resolver.Suggest > %w", err)
				}
				if !ok {
					_, _ = fmt.Fprintln(out, "No similar words found.")
					return nil
				}
				_, _ = fmt.Fprintf(out, "Did you mean '%s'?\n", match)
				return nil
			})
		},
	}
}

func newCompleteCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "complete <prefix>",
		Short: "List stored words starting with a prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := args[0]
			out := cmd.OutOrStdout()
			return withResolver(cmd.Context(), func(ctx context.Context, _ *bootstrap.App, _ *config.Config, resolver *dictionary.Resolver) error {
				words, err := resolver.Complete(ctx, prefix, limit)
				if err != nil {
					return fmt.Errorf("resolver.Complete > %w", err)
				}
				if len(words) > 0 {
					_, _ = fmt.Fprintln(out, strings.Join(words, "\n"))
				}
				return nil
			})
		},
	}
	command.Flags().IntVar(&limit, "limit", 10, "maximum number of words, 0 for no limit")
	return command
}

type entryFlags struct {
	definition string
	examples   string
	synonyms   string
	antonyms   string
}

func (f *entryFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.definition, "definition", "", "definition")
	flags.StringVar(&f.examples, "examples", "", "comma separated examples")
	flags.StringVar(&f.synonyms, "synonyms", "", "comma separated synonyms")
	flags.StringVar(&f.antonyms, "antonyms", "", "comma separated antonyms")
}

func (f *entryFlags) update(flags *pflag.FlagSet) dictionary.EntryUpdate {
	update := dictionary.EntryUpdate{
		Examples: dictionary.SplitList(f.examples),
		Synonyms: dictionary.SplitList(f.synonyms),
		Antonyms: dictionary.SplitList(f.antonyms),
	}
	if flags.Changed("definition") {
		definition := f.definition
		update.Definition = &definition
	}
	return update
}

func newAddCommand() *cobra.Command {
	var fields entryFlags
	command := &cobra.Command{
		Use:   "add <word>",
		Short: "Add a new word to the local dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := dictionary.Normalize(args[0])
			update := fields.update(cmd.Flags())
			out := cmd.OutOrStdout()
			return withResolver(cmd.Context(), func(ctx context.Context, _ *bootstrap.App, _ *config.Config, resolver *dictionary.Resolver) error {
				exists, err := resolver.Contains(ctx, word)
				if err != nil {
					return fmt.Errorf("resolver.Contains > %w", err)
				}
				if exists {
					return fmt.Errorf("'%s' is already in the dictionary, use the edit command to overwrite it", word)
				}

				if _, err := resolver.Add(ctx, word, update); err != nil {
					if errors.Is(err, dictionary.ErrEmptyEntry) {
						_, _ = fmt.Fprintln(out, "Word not added. All fields are empty.")
						return nil
					}
					return fmt.Errorf("resolver.Add > %w", err)
				}
				_, _ = fmt.Fprintf(out, "The word '%s' added.\n", word)
				return nil
			})
		},
	}
	fields.register(command.Flags())
	return command
}

func newEditCommand() *cobra.Command {
	var fields entryFlags
	command := &cobra.Command{
		Use:   "edit <word>",
		Short: "Overwrite a stored word",
		Long: "Overwrite a stored word. Examples, synonyms and antonyms are kept unless given. " +
			"The definition is always replaced and is cleared when --definition is omitted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := dictionary.Normalize(args[0])
			update := fields.update(cmd.Flags())
			out := cmd.OutOrStdout()
			return withResolver(cmd.Context(), func(ctx context.Context, _ *bootstrap.App, _ *config.Config, resolver *dictionary.Resolver) error {
				exists, err := resolver.Contains(ctx, word)
				if err != nil {
					return fmt.Errorf("resolver.Contains > %w", err)
				}
				if !exists {
					_, _ = fmt.Fprintf(out, "'%s' not found.\n", word)
					return nil
				}

				entry, err := resolver.Overwrite(ctx, word, update)
				if err != nil {
					return fmt.Errorf("resolver.Overwrite > %w", err)
				}
				_, _ = fmt.Fprintf(out, "'%s' has been updated.\n", word)
				return cli.WriteEntry(out, word, entry)
			})
		},
	}
	fields.register(command.Flags())
	return command
}

func newPronounceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pronounce <word>",
		Short: "Play the pronunciation of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app := bootstrap.New()
			defer func() {
				_ = app.Shutdown(context.Background())
			}()
			if err := bootstrap.NewPronouncer(app, cfg).Pronounce(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("pronouncer.Pronounce > %w", err)
			}
			return nil
		},
	}
}
