// Package datasync copies dictionary entries between word stores.
package datasync

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Skipped int
	Updated int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer reads every word of a source store and writes it to a destination store.
type Importer struct {
	source      dictionary.Store
	destination dictionary.Store
	writer      io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(source, destination dictionary.Store, writer io.Writer) *Importer {
	return &Importer{
		source:      source,
		destination: destination,
		writer:      writer,
	}
}

// Import copies the source words in source order.
// Words already in the destination are skipped unless opts.UpdateExisting is set
// and their entry differs.
func (imp *Importer) Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	var result ImportResult

	words, err := imp.source.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("source.Words > %w", err)
	}

	for _, word := range words {
		entry, ok, err := imp.source.Get(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("source.Get(%s) > %w", word, err)
		}
		if !ok {
			continue
		}

		existing, found, err := imp.destination.Get(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("destination.Get(%s) > %w", word, err)
		}
		if found {
			if !opts.UpdateExisting || sameEntry(existing, entry) {
				_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", word)
				result.Skipped++
				continue
			}
			if !opts.DryRun {
				if err := imp.destination.Put(ctx, word, entry); err != nil {
					return nil, fmt.Errorf("destination.Put(%s) > %w", word, err)
				}
			}
			_, _ = fmt.Fprintf(imp.writer, "  [UPDATE]  %q\n", word)
			result.Updated++
			continue
		}

		if !opts.DryRun {
			if err := imp.destination.Put(ctx, word, entry); err != nil {
				return nil, fmt.Errorf("destination.Put(%s) > %w", word, err)
			}
		}
		_, _ = fmt.Fprintf(imp.writer, "  [NEW]  %q\n", word)
		result.New++
	}

	return &result, nil
}

func sameEntry(a, b dictionary.Entry) bool {
	return a.Definition == b.Definition &&
		slices.Equal(a.Examples, b.Examples) &&
		slices.Equal(a.Synonyms, b.Synonyms) &&
		slices.Equal(a.Antonyms, b.Antonyms)
}
