package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

//go:generate mockgen -source=store.go -destination=../mocks/dictionary/mock_store.go -package=mock_dictionary

// Store holds dictionary entries keyed by normalized word.
// Every Put persists the whole store before returning.
type Store interface {
	Get(ctx context.Context, word string) (Entry, bool, error)
	Contains(ctx context.Context, word string) (bool, error)
	Put(ctx context.Context, word string, entry Entry) error
	// Words returns all stored words in insertion order.
	Words(ctx context.Context) ([]string, error)
}

// JSONStore keeps the dictionary in memory and rewrites a single JSON document on every mutation.
// Keys keep the order of the document followed by the order of additions.
type JSONStore struct {
	mu      sync.Mutex
	path    string
	words   []string
	entries map[string]Entry
}

var _ Store = (*JSONStore)(nil)

// NewJSONStore returns an empty store persisted to path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path:    path,
		entries: make(map[string]Entry),
	}
}

// Load reads the store persisted at path.
// A missing or malformed document yields an empty store; the failure is only logged.
func Load(path string) *JSONStore {
	store := NewJSONStore(path)
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Default().Info("dictionary file not found, starting with an empty dictionary", "path", path)
		} else {
			slog.Default().Warn("failed to read the dictionary file", "path", path, "error", err)
		}
		return store
	}

	words, entries, err := decodeOrdered(contents)
	if err != nil {
		slog.Default().Warn("invalid dictionary file, starting with an empty dictionary", "path", path, "error", err)
		return store
	}
	store.words = words
	store.entries = entries
	slog.Default().Debug("dictionary loaded", "path", path, "words", len(words))
	return store
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.words)
}

func (s *JSONStore) Get(_ context.Context, word string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[Normalize(word)]
	return entry, ok, nil
}

func (s *JSONStore) Contains(_ context.Context, word string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[Normalize(word)]
	return ok, nil
}

// Put inserts or replaces the entry and rewrites the document.
// The in-memory change is kept even when writing fails.
func (s *JSONStore) Put(_ context.Context, word string, entry Entry) error {
	key := Normalize(word)
	if key == "" {
		return ErrEmptyWord
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		s.words = append(s.words, key)
	}
	s.entries[key] = entry.withEmptyFields()

	if err := s.save(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	slog.Default().Debug("dictionary updated", "path", s.path, "word", key)
	return nil
}

func (s *JSONStore) Words(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	words := make([]string, len(s.words))
	copy(words, s.words)
	return words, nil
}

func (s *JSONStore) save() error {
	contents, err := encodeOrdered(s.words, s.entries)
	if err != nil {
		return fmt.Errorf("encodeOrdered > %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}

// decodeOrdered decodes a JSON object of entries keeping the order of its keys.
func decodeOrdered(contents []byte) ([]string, map[string]Entry, error) {
	decoder := json.NewDecoder(bytes.NewReader(contents))
	token, err := decoder.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("decoder.Token > %w", err)
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected a JSON object, got %v", token)
	}

	words := make([]string, 0)
	entries := make(map[string]Entry)
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("decoder.Token > %w", err)
		}
		word, ok := token.(string)
		if !ok {
			return nil, nil, fmt.Errorf("expected a word, got %v", token)
		}

		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			return nil, nil, fmt.Errorf("word: %s. decoder.Decode > %w", word, err)
		}
		if _, exists := entries[word]; !exists {
			words = append(words, word)
		}
		entries[word] = entry.withEmptyFields()
	}
	if _, err := decoder.Token(); err != nil {
		return nil, nil, fmt.Errorf("decoder.Token > %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("unexpected data after the JSON object")
	}
	return words, entries, nil
}

func encodeOrdered(words []string, entries map[string]Entry) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, word := range words {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(word)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal(%s) > %w", word, err)
		}
		value, err := json.Marshal(entries[word])
		if err != nil {
			return nil, fmt.Errorf("json.Marshal(%s) > %w", word, err)
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var indented bytes.Buffer
	if err := json.Indent(&indented, compact.Bytes(), "", "    "); err != nil {
		return nil, fmt.Errorf("json.Indent > %w", err)
	}
	return indented.Bytes(), nil
}
