package dictionary

import "errors"

var (
	// ErrNotFound is returned when a word is neither stored locally nor available remotely.
	ErrNotFound = errors.New("word not found")
	// ErrRemoteNotFound is returned by fetchers when the remote dictionary has no meanings for a word.
	ErrRemoteNotFound = errors.New("word not found in the remote dictionary")
	// ErrPersistence wraps failures to write the store.
	ErrPersistence = errors.New("failed to save the dictionary")
	// ErrEmptyEntry is returned when a new word is added without any field.
	ErrEmptyEntry = errors.New("all fields are empty")
	ErrEmptyWord  = errors.New("word is empty")
)
