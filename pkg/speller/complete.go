package speller

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Complete returns dictionary words starting with prefix in lexical order.
// The prefix itself is included when it is a word.
func (s *Speller) Complete(prefix string, limit int) []string {
	lowerPrefix := strings.ToLower(prefix)

	words := []string{}
	err := s.index.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting completion index: %v", err)
		return []string{}
	}

	sort.Strings(words)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
