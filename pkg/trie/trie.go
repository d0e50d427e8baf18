/*
Package trie implements the prefix tree behind word correction.

Words are inserted lowercase, one node per byte. Lookups run a depth first
search that, besides following the query literally, may swap any vowel for
another vowel and may skip a character that repeats the previous one:

	t.Insert("test")
	t.Find("TEeeSst") // "test", true
	t.Find("tust")    // "test", true

The first complete path that lands on a word wins. There is no ranking: when
several words are reachable, the fixed exploration order decides which one is
returned (exact character, then vowels a e i o u, then repeat skip).

# Cost

Every vowel position can branch five ways and every repeated character adds a
skip branch, so a query with k vowels visits up to 5^k paths times the repeat
branching. Long vowel-heavy queries that match nothing are the worst case.
WithStepLimit bounds the number of visited states; it is off by default.

# Concurrency

Insert is not synchronized. Build the trie first, then Find from any number
of goroutines.
*/
package trie

import "strings"

const vowels = "aeiou"

// Option configures a Trie.
type Option func(*Trie)

// WithStepLimit stops a search after n visited states. Zero means no limit.
func WithStepLimit(n int) Option {
	return func(t *Trie) {
		if n > 0 {
			t.stepLimit = n
		}
	}
}

// Trie owns the root node and every node below it.
type Trie struct {
	root      *Node
	words     int
	nodes     int
	stepLimit int
}

// Result describes a single search.
type Result struct {
	Word      string
	Found     bool
	Steps     int
	Truncated bool // step limit hit before the search space was exhausted
}

// New creates an empty trie.
func New(opts ...Option) *Trie {
	t := &Trie{
		root:  newNode(0, nil),
		nodes: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert adds word to the trie. The caller lowercases it.
// The empty string marks the root itself.
func (t *Trie) Insert(word string) {
	current := t.root
	for i := 0; i < len(word); i++ {
		next := current.FindChild(word[i])
		if next == nil {
			next = current.addChild(word[i])
			t.nodes++
		}
		current = next
	}
	if !current.terminal {
		t.words++
	}
	current.SetWord(word)
}

// Find returns the first dictionary word reachable from query.
func (t *Trie) Find(query string) (string, bool) {
	r := t.Search(query)
	return r.Word, r.Found
}

// Search is Find with search statistics.
func (t *Trie) Search(query string) Result {
	s := &search{
		query: strings.ToLower(query),
		limit: t.stepLimit,
	}
	word, found := s.walk(t.root, 0, -1)
	return Result{
		Word:      word,
		Found:     found,
		Steps:     s.steps,
		Truncated: s.truncated,
	}
}

// Root returns the root node.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.words
}

// Nodes returns the number of nodes, root included.
func (t *Trie) Nodes() int {
	return t.nodes
}

// Stats returns counters about the trie.
func (t *Trie) Stats() map[string]int {
	return map[string]int{
		"totalWords": t.words,
		"totalNodes": t.nodes,
		"stepLimit":  t.stepLimit,
	}
}

func (t *Trie) String() string {
	return t.root.String()
}

// search holds the state shared by one lookup.
type search struct {
	query     string
	limit     int
	steps     int
	truncated bool
}

// walk matches query[i:] below node. prev is the last consumed query
// character, -1 at the start.
func (s *search) walk(node *Node, i int, prev int) (string, bool) {
	if s.truncated {
		return "", false
	}
	s.steps++
	if s.limit > 0 && s.steps > s.limit {
		s.truncated = true
		return "", false
	}

	if i == len(s.query) {
		return node.Word()
	}
	c := s.query[i]

	if child := node.FindChild(c); child != nil {
		if word, ok := s.walk(child, i+1, int(c)); ok {
			return word, true
		}
	}

	if isVowel(c) {
		for j := 0; j < len(vowels); j++ {
			v := vowels[j]
			if v == c {
				continue
			}
			if child := node.FindChild(v); child != nil {
				if word, ok := s.walk(child, i+1, int(c)); ok {
					return word, true
				}
			}
		}
	}

	// stay on node, drop the duplicate
	if int(c) == prev {
		if word, ok := s.walk(node, i+1, prev); ok {
			return word, true
		}
	}
	return "", false
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
