package speller

import (
	"strings"

	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Result is the outcome of a Check.
type Result struct {
	Input     string
	Word      string
	Found     bool
	Corrected bool // Word differs from the lowercased input
	Steps     int
	Truncated bool
	Cached    bool
}

// Option configures a Speller.
type Option func(*Speller)

// WithCacheSize keeps up to n Check results. Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(s *Speller) {
		if n > 0 {
			s.cache = NewCache(n)
		} else {
			s.cache = nil
		}
	}
}

// Speller wraps a trie with the bookkeeping the application needs:
// a completion index, a result cache and counters.
// AddWord must not run concurrently with anything else; Check and Complete
// are safe to call from several goroutines once loading is done.
type Speller struct {
	trie   *trie.Trie
	index  *patricia.Trie
	cache  *Cache
	added  int
	blanks int
}

func New(t *trie.Trie, opts ...Option) *Speller {
	if t == nil {
		t = trie.New()
	}
	s := &Speller{
		trie:  t,
		index: patricia.NewTrie(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddWord normalizes word and adds it to the dictionary. Blank input is skipped.
func (s *Speller) AddWord(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		s.blanks++
		return
	}
	s.trie.Insert(word)
	s.index.Set(patricia.Prefix(word), struct{}{})
	s.added++

	// cached misses may now have an answer
	if s.cache != nil {
		s.cache.Reset()
	}
}

func (s *Speller) Check(word string) Result {
	lower := strings.ToLower(word)

	useCache := s.cache != nil && lower != ""
	if useCache {
		if r, ok := s.cache.Get(lower); ok {
			r.Input = word
			r.Cached = true
			return r
		}
	}

	sr := s.trie.Search(lower)
	r := Result{
		Input:     word,
		Word:      sr.Word,
		Found:     sr.Found,
		Corrected: sr.Found && sr.Word != lower,
		Steps:     sr.Steps,
		Truncated: sr.Truncated,
	}
	if sr.Truncated {
		log.Warnf("Search for '%s' stopped after %d steps", word, sr.Steps)
	}

	if useCache {
		s.cache.Put(lower, r)
	}
	return r
}

// Trie returns the underlying trie.
func (s *Speller) Trie() *trie.Trie {
	return s.trie
}

func (s *Speller) Stats() map[string]int {
	stats := s.trie.Stats()
	stats["addedWords"] = s.added
	stats["skippedBlank"] = s.blanks

	if s.cache != nil {
		for k, v := range s.cache.Stats() {
			stats[k] = v
		}
		stats["cache"] = 1
	} else {
		stats["cache"] = 0
	}
	return stats
}
