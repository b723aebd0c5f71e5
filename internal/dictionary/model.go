package dictionary

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoDefinition is stored as the definition of a fetched word whose response has no definitions.
const NoDefinition = "No definition available"

// Entry is the dictionary record of one word.
type Entry struct {
	Definition string   `json:"definition" yaml:"definition"`
	Examples   []string `json:"examples" yaml:"examples"`
	Synonyms   []string `json:"synonyms" yaml:"synonyms"`
	Antonyms   []string `json:"antonyms" yaml:"antonyms"`
}

// withEmptyFields replaces nil lists with empty ones so that every persisted entry has all four fields.
func (e Entry) withEmptyFields() Entry {
	if e.Examples == nil {
		e.Examples = []string{}
	}
	if e.Synonyms == nil {
		e.Synonyms = []string{}
	}
	if e.Antonyms == nil {
		e.Antonyms = []string{}
	}
	return e
}

// EntryUpdate carries user input for adding or overwriting a word.
// A nil Definition means the user entered nothing; nil or empty lists mean the same for the other fields.
type EntryUpdate struct {
	Definition *string  `json:"definition,omitempty"`
	Examples   []string `json:"examples,omitempty"`
	Synonyms   []string `json:"synonyms,omitempty"`
	Antonyms   []string `json:"antonyms,omitempty"`
}

func (u EntryUpdate) isEmpty() bool {
	return (u.Definition == nil || *u.Definition == "") &&
		len(u.Examples) == 0 &&
		len(u.Synonyms) == 0 &&
		len(u.Antonyms) == 0
}

// Normalize trims surrounding whitespace and lowercases a query.
func Normalize(query string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(query))
}

// SplitList splits comma separated user input into trimmed items.
// Empty input returns nil.
func SplitList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		items = append(items, strings.TrimSpace(part))
	}
	return items
}

// EntryBuilder aggregates the senses of a remote response into a single Entry.
// The first definition wins, examples keep response order and
// synonyms and antonyms are deduplicated in order of first appearance.
type EntryBuilder struct {
	definitions []string
	examples    []string
	synonyms    []string
	antonyms    []string
	seenSyn     mapset.Set[string]
	seenAnt     mapset.Set[string]
}

func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{
		seenSyn: mapset.NewThreadUnsafeSet[string](),
		seenAnt: mapset.NewThreadUnsafeSet[string](),
	}
}

// AddSense records one definition with its optional example, synonyms and antonyms.
func (b *EntryBuilder) AddSense(definition, example string, synonyms, antonyms []string) {
	b.definitions = append(b.definitions, definition)
	if example != "" {
		b.examples = append(b.examples, example)
	}
	b.AddSynonyms(synonyms...)
	b.AddAntonyms(antonyms...)
}

// AddSynonyms adds synonyms which are not attached to a single definition.
func (b *EntryBuilder) AddSynonyms(synonyms ...string) {
	for _, s := range synonyms {
		if b.seenSyn.Add(s) {
			b.synonyms = append(b.synonyms, s)
		}
	}
}

// AddAntonyms adds antonyms which are not attached to a single definition.
func (b *EntryBuilder) AddAntonyms(antonyms ...string) {
	for _, a := range antonyms {
		if b.seenAnt.Add(a) {
			b.antonyms = append(b.antonyms, a)
		}
	}
}

func (b *EntryBuilder) Entry() Entry {
	if len(b.definitions) == 0 {
		return Entry{Definition: NoDefinition}.withEmptyFields()
	}
	return Entry{
		Definition: b.definitions[0],
		Examples:   b.examples,
		Synonyms:   b.synonyms,
		Antonyms:   b.antonyms,
	}.withEmptyFields()
}
