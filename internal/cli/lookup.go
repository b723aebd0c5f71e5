package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
	"github.com/at-ishikawa/wordwise/internal/speech"
)

//go:generate mockgen -source=lookup.go -destination=../mocks/cli/mock_lookup.go -package=mock_cli

// Dictionary is the word lookup used by a LookupSession.
type Dictionary interface {
	ResolveAsync(ctx context.Context, query string, done func(dictionary.Entry, error))
	Suggest(ctx context.Context, query string) (string, bool, error)
	Contains(ctx context.Context, word string) (bool, error)
	Add(ctx context.Context, word string, update dictionary.EntryUpdate) (dictionary.Entry, error)
	Overwrite(ctx context.Context, word string, update dictionary.EntryUpdate) (dictionary.Entry, error)
}

type Pronouncer interface {
	Pronounce(ctx context.Context, word string) error
}

// LookupSession reads one command or word per session.
//
// Commands:
//
//	:add <word>   add a word
//	:edit <word>  overwrite a stored word
//	:say <word>   pronounce a word
//	:quit         end the session
type LookupSession struct {
	*InteractiveCLI
	dictionary Dictionary
	pronouncer Pronouncer
}

// NewLookupSession creates a session. pronouncer may be nil when text-to-speech is not configured.
func NewLookupSession(stdin io.Reader, stdout io.Writer, dict Dictionary, pronouncer Pronouncer) *LookupSession {
	return &LookupSession{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		dictionary:     dict,
		pronouncer:     pronouncer,
	}
}

type resolution struct {
	entry dictionary.Entry
	err   error
}

func (s *LookupSession) Session(ctx context.Context) error {
	input, err := s.readLine("Word: ")
	if err != nil {
		return err
	}

	command, argument, _ := strings.Cut(input, " ")
	argument = strings.TrimSpace(argument)
	switch command {
	case "":
		s.println("Please enter a word.")
		return nil
	case ":quit", "quit", "exit":
		s.println("Bye.")
		return errEnd
	case ":add":
		if argument == "" {
			s.println("Usage: :add <word>")
			return nil
		}
		return s.add(ctx, argument)
	case ":edit":
		if argument == "" {
			s.println("Usage: :edit <word>")
			return nil
		}
		return s.edit(ctx, argument)
	case ":say":
		if argument == "" {
			s.println("Usage: :say <word>")
			return nil
		}
		s.say(ctx, argument)
		return nil
	}
	return s.lookup(ctx, input)
}

func (s *LookupSession) resolve(ctx context.Context, word string) (dictionary.Entry, error) {
	results := make(chan resolution, 1)
	s.dictionary.ResolveAsync(ctx, word, func(entry dictionary.Entry, err error) {
		results <- resolution{entry: entry, err: err}
	})
	select {
	case <-ctx.Done():
		return dictionary.Entry{}, ctx.Err()
	case result := <-results:
		return result.entry, result.err
	}
}

func (s *LookupSession) lookup(ctx context.Context, word string) error {
	s.italic.Fprintf(s.stdoutWriter, "Searching '%s'...\n", word)
	entry, err := s.resolve(ctx, word)
	switch {
	case err == nil:
		return WriteEntry(s.stdoutWriter, word, entry)
	case dictionary.IsPersistenceError(err):
		s.warning.Fprintf(s.stdoutWriter, "Warning: %v\n", err)
		return WriteEntry(s.stdoutWriter, word, entry)
	case errors.Is(err, dictionary.ErrNotFound):
		return s.notFound(ctx, word)
	default:
		return fmt.Errorf("resolve > %w", err)
	}
}

func (s *LookupSession) notFound(ctx context.Context, word string) error {
	match, ok, err := s.dictionary.Suggest(ctx, word)
	if err != nil {
		return fmt.Errorf("dictionary.Suggest > %w", err)
	}

	if ok {
		yes, err := s.confirm(fmt.Sprintf("Did you mean '%s'?", match))
		if err != nil {
			return err
		}
		if !yes {
			s.printf("'%s' not found.\n", word)
			return nil
		}
		return s.lookup(ctx, match)
	}

	yes, err := s.confirm(fmt.Sprintf("No similar words found. Would you like to add '%s'?", word))
	if err != nil {
		return err
	}
	if !yes {
		s.printf("'%s' not found.\n", word)
		return nil
	}
	return s.addFields(ctx, dictionary.Normalize(word))
}

func (s *LookupSession) add(ctx context.Context, word string) error {
	word = dictionary.Normalize(word)
	exists, err := s.dictionary.Contains(ctx, word)
	if err != nil {
		return fmt.Errorf("dictionary.Contains > %w", err)
	}
	if exists {
		s.printf("'%s' is already in the dictionary. Use :edit %s to overwrite it.\n", word, word)
		return nil
	}

	yes, err := s.confirm(fmt.Sprintf("Add '%s' to dictionary?", word))
	if err != nil {
		return err
	}
	if !yes {
		s.printf("'%s' not added.\n", word)
		return nil
	}
	return s.addFields(ctx, word)
}

func (s *LookupSession) addFields(ctx context.Context, word string) error {
	update, err := s.readEntryUpdate(word)
	if err != nil {
		return err
	}
	entry, err := s.dictionary.Add(ctx, word, update)
	switch {
	case errors.Is(err, dictionary.ErrEmptyEntry):
		s.println("Word not added. All fields are empty.")
		return nil
	case dictionary.IsPersistenceError(err):
		s.warning.Fprintf(s.stdoutWriter, "An error occurred while saving: %v\n", err)
		return nil
	case err != nil:
		return fmt.Errorf("dictionary.Add > %w", err)
	}
	s.printf("The word '%s' added.\n", word)
	return WriteEntry(s.stdoutWriter, word, entry)
}

func (s *LookupSession) edit(ctx context.Context, word string) error {
	word = dictionary.Normalize(word)
	exists, err := s.dictionary.Contains(ctx, word)
	if err != nil {
		return fmt.Errorf("dictionary.Contains > %w", err)
	}
	if !exists {
		s.printf("'%s' is not in the dictionary. Use :add %s to add it.\n", word, word)
		return nil
	}

	yes, err := s.confirm(fmt.Sprintf("The word '%s' already exists. Want to overwrite it?", word))
	if err != nil {
		return err
	}
	if !yes {
		s.println("Overwrite cancelled.")
		return nil
	}

	update, err := s.readEntryUpdate(word)
	if err != nil {
		return err
	}
	entry, err := s.dictionary.Overwrite(ctx, word, update)
	if err != nil {
		if dictionary.IsPersistenceError(err) {
			s.warning.Fprintf(s.stdoutWriter, "An error occurred while saving: %v\n", err)
			return nil
		}
		return fmt.Errorf("dictionary.Overwrite > %w", err)
	}
	s.printf("'%s' has been updated.\n", word)
	return WriteEntry(s.stdoutWriter, word, entry)
}

func (s *LookupSession) readEntryUpdate(word string) (dictionary.EntryUpdate, error) {
	var update dictionary.EntryUpdate

	definition, err := s.readLine(fmt.Sprintf("Definition for '%s': ", word))
	if err != nil {
		return update, err
	}
	if definition != "" {
		update.Definition = &definition
	}

	lists := []struct {
		label string
		dest  *[]string
	}{
		{label: "Examples", dest: &update.Examples},
		{label: "Synonyms", dest: &update.Synonyms},
		{label: "Antonyms", dest: &update.Antonyms},
	}
	for _, list := range lists {
		input, err := s.readLine(fmt.Sprintf("%s for '%s' (separate by commas): ", list.label, word))
		if err != nil {
			return update, err
		}
		*list.dest = dictionary.SplitList(input)
	}
	return update, nil
}

func (s *LookupSession) say(ctx context.Context, word string) {
	if s.pronouncer == nil {
		s.println("Text-to-speech is not configured.")
		return
	}
	if err := s.pronouncer.Pronounce(ctx, dictionary.Normalize(word)); err != nil {
		if errors.Is(err, speech.ErrPlayback) {
			s.warning.Fprintf(s.stdoutWriter, "Audio playback failed: %v\n", err)
			return
		}
		s.warning.Fprintf(s.stdoutWriter, "An error occurred while pronouncing the word: %v\n", err)
	}
}
