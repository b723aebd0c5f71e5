package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/dictionary/mock_resolver.go -package=mock_dictionary

// Fetcher looks a word up in a remote dictionary.
// Implementations return ErrRemoteNotFound when the dictionary has no meanings for the word.
type Fetcher interface {
	Fetch(ctx context.Context, word string) (Entry, error)
}

// Resolver answers lookups from the store first and falls back to a remote dictionary.
type Resolver struct {
	store   Store
	fetcher Fetcher
}

// NewResolver creates a Resolver. A nil fetcher keeps lookups offline.
func NewResolver(store Store, fetcher Fetcher) *Resolver {
	return &Resolver{
		store:   store,
		fetcher: fetcher,
	}
}

// Store returns the word store behind the resolver.
func (r *Resolver) Store() Store {
	return r.store
}

// Resolve returns the entry of a query.
//
// Lookups hit the store first. On a miss the remote dictionary is queried and a
// successful result is written into the store before it is returned, so Resolve
// mutates the store. If that write fails, the fetched entry is returned along with
// an error wrapping ErrPersistence.
//
// ErrNotFound is returned for an empty query and when the remote lookup fails for any reason.
func (r *Resolver) Resolve(ctx context.Context, query string) (Entry, error) {
	word := Normalize(query)
	if word == "" {
		return Entry{}, ErrNotFound
	}

	entry, ok, err := r.store.Get(ctx, word)
	if err != nil {
		return Entry{}, fmt.Errorf("store.Get > %w", err)
	}
	if ok {
		slog.Default().Debug("offline hit", "word", word)
		return entry, nil
	}

	if r.fetcher == nil {
		return Entry{}, ErrNotFound
	}
	// The remote dictionary gets the query as typed; only surrounding whitespace is dropped.
	entry, err = r.fetcher.Fetch(ctx, strings.TrimSpace(query))
	if err != nil {
		slog.Default().Debug("remote lookup failed", "query", query, "error", err)
		return Entry{}, fmt.Errorf("%w: fetcher.Fetch > %w", ErrNotFound, err)
	}
	entry = entry.withEmptyFields()

	if err := r.store.Put(ctx, word, entry); err != nil {
		slog.Default().Warn("failed to cache a fetched word", "word", word, "error", err)
		return entry, fmt.Errorf("store.Put > %w", err)
	}
	return entry, nil
}

// ResolveAsync runs Resolve on another goroutine and calls done with its result.
// done runs on that goroutine; callers that own a UI loop hand the result back themselves.
func (r *Resolver) ResolveAsync(ctx context.Context, query string, done func(Entry, error)) {
	go func() {
		done(r.Resolve(ctx, query))
	}()
}

// Suggest returns the stored word closest to query, if it is close enough.
func (r *Resolver) Suggest(ctx context.Context, query string) (string, bool, error) {
	words, err := r.store.Words(ctx)
	if err != nil {
		return "", false, fmt.Errorf("store.Words > %w", err)
	}
	match, ok := ClosestMatch(words, query)
	return match, ok, nil
}

// Complete returns up to limit stored words starting with prefix.
func (r *Resolver) Complete(ctx context.Context, prefix string, limit int) ([]string, error) {
	words, err := r.store.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Words > %w", err)
	}
	return NewCompleter(words).Complete(prefix, limit), nil
}

// Contains reports whether the word is stored locally.
func (r *Resolver) Contains(ctx context.Context, word string) (bool, error) {
	return r.store.Contains(ctx, word)
}

// Add stores a new word from user input. ErrEmptyEntry is returned and nothing
// is stored when every field is empty.
func (r *Resolver) Add(ctx context.Context, word string, update EntryUpdate) (Entry, error) {
	if Normalize(word) == "" {
		return Entry{}, ErrEmptyWord
	}
	if update.isEmpty() {
		return Entry{}, ErrEmptyEntry
	}

	entry := Entry{
		Examples: update.Examples,
		Synonyms: update.Synonyms,
		Antonyms: update.Antonyms,
	}.withEmptyFields()
	if update.Definition != nil {
		entry.Definition = *update.Definition
	}
	if err := r.store.Put(ctx, word, entry); err != nil {
		return entry, fmt.Errorf("store.Put > %w", err)
	}
	return entry, nil
}

// Overwrite replaces the fields of a stored word.
//
// Examples, synonyms and antonyms are replaced only when the update has items,
// otherwise the stored values are kept. The definition is always replaced and a
// nil Definition clears it. This asymmetry matches the existing edit behavior
// and is kept until it is confirmed to be intended.
func (r *Resolver) Overwrite(ctx context.Context, word string, update EntryUpdate) (Entry, error) {
	existing, _, err := r.store.Get(ctx, word)
	if err != nil {
		return Entry{}, fmt.Errorf("store.Get > %w", err)
	}

	entry := Entry{
		Examples: existing.Examples,
		Synonyms: existing.Synonyms,
		Antonyms: existing.Antonyms,
	}
	if update.Definition != nil {
		entry.Definition = *update.Definition
	}
	if len(update.Examples) > 0 {
		entry.Examples = update.Examples
	}
	if len(update.Synonyms) > 0 {
		entry.Synonyms = update.Synonyms
	}
	if len(update.Antonyms) > 0 {
		entry.Antonyms = update.Antonyms
	}
	entry = entry.withEmptyFields()

	if err := r.store.Put(ctx, word, entry); err != nil {
		return entry, fmt.Errorf("store.Put > %w", err)
	}
	return entry, nil
}

// IsPersistenceError reports whether err only means that a result could not be saved.
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}
