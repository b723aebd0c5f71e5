// Package export writes the stored dictionary as YAML, Markdown or PDF.
package export

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

type Format string

const (
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// Formats lists every supported format.
var Formats = []Format{FormatYAML, FormatMarkdown, FormatPDF}

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	for _, f := range Formats {
		if string(f) == value {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format %q, must be one of %v", value, Formats)
}

// Record is a stored word with its entry.
type Record struct {
	Word             string `yaml:"word"`
	dictionary.Entry `yaml:",inline"`
}

// Collect reads every stored word in store order.
func Collect(ctx context.Context, store dictionary.Store) ([]Record, error) {
	words, err := store.Words(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.Words > %w", err)
	}

	records := make([]Record, 0, len(words))
	for _, word := range words {
		entry, ok, err := store.Get(ctx, word)
		if err != nil {
			return nil, fmt.Errorf("store.Get(%s) > %w", word, err)
		}
		if !ok {
			continue
		}
		records = append(records, Record{Word: word, Entry: entry})
	}
	return records, nil
}

// WriteYAML encodes records as a YAML list.
func WriteYAML(w io.Writer, records []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("enc.Encode > %w", err)
	}
	return enc.Close()
}

// WriteFile writes records to path in the given format.
// templatePath overrides the Markdown template of the markdown and pdf formats.
func WriteFile(path string, format Format, records []Record, templatePath string) error {
	if format == FormatPDF {
		return WritePDF(path, records, templatePath)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case FormatYAML:
		err = WriteYAML(f, records)
	case FormatMarkdown:
		var content []byte
		content, err = Markdown(records, templatePath)
		if err == nil {
			_, err = f.Write(content)
		}
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
