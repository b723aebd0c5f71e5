package dictionary

import (
	"sort"

	"github.com/hbollon/go-edlib"
	"github.com/tchap/go-patricia/v2/patricia"
)

// MaxSuggestionDistance is the largest edit distance offered as a suggestion.
const MaxSuggestionDistance = 2

// ClosestMatch returns the word nearest to query by Levenshtein distance.
// On ties the earliest word wins. Nothing is returned when the nearest word is
// farther than MaxSuggestionDistance or is the query itself.
func ClosestMatch(words []string, query string) (string, bool) {
	query = Normalize(query)
	if query == "" || len(words) == 0 {
		return "", false
	}

	closest := ""
	minDistance := -1
	for _, word := range words {
		distance := edlib.LevenshteinDistance(query, word)
		if minDistance < 0 || distance < minDistance {
			closest = word
			minDistance = distance
		}
	}

	if minDistance > MaxSuggestionDistance || Normalize(closest) == query {
		return "", false
	}
	return closest, true
}

// Completer lists stored words starting with a prefix.
type Completer struct {
	trie *patricia.Trie
}

func NewCompleter(words []string) *Completer {
	trie := patricia.NewTrie()
	for _, word := range words {
		trie.Insert(patricia.Prefix(word), struct{}{})
	}
	return &Completer{trie: trie}
}

// Complete returns up to limit words with the prefix in lexical order.
// A limit of zero or less returns every match.
func (c *Completer) Complete(prefix string, limit int) []string {
	matches := make([]string, 0)
	_ = c.trie.VisitSubtree(patricia.Prefix(Normalize(prefix)), func(p patricia.Prefix, _ patricia.Item) error {
		matches = append(matches, string(p))
		return nil
	})
	sort.Strings(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
