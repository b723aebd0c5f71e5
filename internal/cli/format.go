package cli

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordwise/internal/dictionary"
)

// Capitalize upper-cases the first letter of a normalized word.
func Capitalize(word string) string {
	word = dictionary.Normalize(word)
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

// WriteEntry writes the entry of a word with one field per line.
func WriteEntry(w io.Writer, word string, entry dictionary.Entry) error {
	bold := color.New(color.Bold)
	lines := []struct {
		label string
		value string
	}{
		{label: "Word", value: Capitalize(word)},
		{label: "Definition", value: entry.Definition},
		{label: "Examples", value: strings.Join(entry.Examples, ", ")},
		{label: "Synonyms", value: strings.Join(entry.Synonyms, ", ")},
		{label: "Antonyms", value: strings.Join(entry.Antonyms, ", ")},
	}
	for _, line := range lines {
		if _, err := bold.Fprintf(w, "%s:", line.label); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "+line.value+"\n"); err != nil {
			return err
		}
	}
	return nil
}
