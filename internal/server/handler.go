// Package server provides HTTP JSON handlers for dictionary lookups.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
	"github.com/at-ishikawa/wordwise/internal/speech"
)

const defaultCompletionLimit = 10

// Dictionary is the word lookup served over HTTP.
type Dictionary interface {
	Resolve(ctx context.Context, query string) (dictionary.Entry, error)
	Suggest(ctx context.Context, query string) (string, bool, error)
	Complete(ctx context.Context, prefix string, limit int) ([]string, error)
	Contains(ctx context.Context, word string) (bool, error)
	Add(ctx context.Context, word string, update dictionary.EntryUpdate) (dictionary.Entry, error)
	Overwrite(ctx context.Context, word string, update dictionary.EntryUpdate) (dictionary.Entry, error)
}

// DictionaryHandler serves the word store and the remote dictionary.
type DictionaryHandler struct {
	dictionary  Dictionary
	synthesizer speech.Synthesizer
}

// NewDictionaryHandler creates a handler. synthesizer may be nil to disable pronunciations.
func NewDictionaryHandler(dict Dictionary, synthesizer speech.Synthesizer) *DictionaryHandler {
	return &DictionaryHandler{
		dictionary:  dict,
		synthesizer: synthesizer,
	}
}

// Routes returns the mux of every endpoint.
func (h *DictionaryHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/words/{word}", h.getWord)
	mux.HandleFunc("POST /api/words/{word}", h.addWord)
	mux.HandleFunc("PATCH /api/words/{word}", h.overwriteWord)
	mux.HandleFunc("GET /api/suggestions/{word}", h.getSuggestion)
	mux.HandleFunc("GET /api/completions/{prefix}", h.getCompletions)
	mux.HandleFunc("GET /api/pronunciations/{word}", h.getPronunciation)
	return mux
}

type wordResponse struct {
	Word string `json:"word"`
	dictionary.Entry
	Warning string `json:"warning,omitempty"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

type suggestionResponse struct {
	Query      string `json:"query"`
	Suggestion string `json:"suggestion"`
	Found      bool   `json:"found"`
}

type completionResponse struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

type entryRequest struct {
	Definition *string  `json:"definition"`
	Examples   []string `json:"examples"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

func (r entryRequest) toUpdate() dictionary.EntryUpdate {
	return dictionary.EntryUpdate{
		Definition: r.Definition,
		Examples:   r.Examples,
		Synonyms:   r.Synonyms,
		Antonyms:   r.Antonyms,
	}
}

func (h *DictionaryHandler) getWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	word := r.PathValue("word")

	entry, err := h.dictionary.Resolve(ctx, word)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, wordResponse{Word: dictionary.Normalize(word), Entry: entry})
	case dictionary.IsPersistenceError(err):
		slog.Default().Warn("failed to cache a word", "word", word, "error", err)
		writeJSON(w, http.StatusOK, wordResponse{Word: dictionary.Normalize(word), Entry: entry, Warning: err.Error()})
	case errors.Is(err, dictionary.ErrNotFound):
		suggestion, _, suggestErr := h.dictionary.Suggest(ctx, word)
		if suggestErr != nil {
			writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Suggest > %w", suggestErr))
			return
		}
		writeJSON(w, http.StatusNotFound, errorResponse{Error: dictionary.ErrNotFound.Error(), Suggestion: suggestion})
	default:
		writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Resolve > %w", err))
	}
}

func (h *DictionaryHandler) getSuggestion(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	suggestion, ok, err := h.dictionary.Suggest(r.Context(), word)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Suggest > %w", err))
		return
	}
	writeJSON(w, http.StatusOK, suggestionResponse{Query: word, Suggestion: suggestion, Found: ok})
}

func (h *DictionaryHandler) getCompletions(w http.ResponseWriter, r *http.Request) {
	prefix := r.PathValue("prefix")
	limit := defaultCompletionLimit
	if value := r.URL.Query().Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit: %s", value))
			return
		}
		limit = parsed
	}

	words, err := h.dictionary.Complete(r.Context(), prefix, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Complete > %w", err))
		return
	}
	writeJSON(w, http.StatusOK, completionResponse{Prefix: prefix, Words: words})
}

func (h *DictionaryHandler) addWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	word := dictionary.Normalize(r.PathValue("word"))

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	exists, err := h.dictionary.Contains(ctx, word)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Contains > %w", err))
		return
	}
	if exists {
		writeError(w, http.StatusConflict, fmt.Errorf("'%s' already exists", word))
		return
	}

	entry, err := h.dictionary.Add(ctx, word, req.toUpdate())
	switch {
	case errors.Is(err, dictionary.ErrEmptyEntry), errors.Is(err, dictionary.ErrEmptyWord):
		writeError(w, http.StatusBadRequest, err)
	case err != nil:
		writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Add > %w", err))
	default:
		writeJSON(w, http.StatusCreated, wordResponse{Word: word, Entry: entry})
	}
}

func (h *DictionaryHandler) overwriteWord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	word := dictionary.Normalize(r.PathValue("word"))

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	exists, err := h.dictionary.Contains(ctx, word)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Contains > %w", err))
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, dictionary.ErrNotFound)
		return
	}

	entry, err := h.dictionary.Overwrite(ctx, word, req.toUpdate())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("dictionary.Overwrite > %w", err))
		return
	}
	writeJSON(w, http.StatusOK, wordResponse{Word: word, Entry: entry})
}

func (h *DictionaryHandler) getPronunciation(w http.ResponseWriter, r *http.Request) {
	if h.synthesizer == nil {
		writeError(w, http.StatusNotImplemented, errors.New("text-to-speech is not configured"))
		return
	}
	word := dictionary.Normalize(r.PathValue("word"))
	audio, err := h.synthesizer.Synthesize(r.Context(), word)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Errorf("synthesizer.Synthesize > %w", err))
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio.Data); err != nil {
		slog.Default().Warn("failed to write audio", "word", word, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("failed to write a response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		slog.Default().Error("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
