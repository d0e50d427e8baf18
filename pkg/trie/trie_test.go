package trie

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func newTestTrie(words ...string) *Trie {
	t := New()
	for _, w := range words {
		t.Insert(strings.ToLower(w))
	}
	return t
}

func TestFindExactRoundTrip(t *testing.T) {
	words := []string{"a", "an", "ant", "test", "tester", "too", "to", "apple", "Zebra"}
	trie := newTestTrie(words...)

	for _, w := range words {
		lw := strings.ToLower(w)
		t.Run(lw, func(t *testing.T) {
			got, ok := trie.Find(lw)
			if !ok || got != lw {
				t.Errorf("Find(%q) = %q, %v; want %q, true", lw, got, ok, lw)
			}
		})
	}
}

// Tests the three correction rules alone and combined.
func TestFindCorrections(t *testing.T) {
	testCases := []struct {
		dict        []string
		input       string
		expected    string
		found       bool
		description string
	}{
		// case folding
		{[]string{"test"}, "Test", "test", true, "Capitalized"},
		{[]string{"test"}, "TEST", "test", true, "Uppercase"},
		{[]string{"test"}, "tEsT", "test", true, "Mixed case"},

		// vowels
		{[]string{"test"}, "tost", "test", true, "o for e"},
		{[]string{"test"}, "tast", "test", true, "a for e"},
		{[]string{"test"}, "tist", "test", true, "i for e"},
		{[]string{"test"}, "tust", "test", true, "u for e"},
		{[]string{"toast"}, "tuest", "toast", true, "Two vowel positions"},
		{[]string{"sheep"}, "shoap", "sheep", true, "Adjacent vowels"},

		// repeats
		{[]string{"too"}, "tooo", "too", true, "One extra"},
		{[]string{"too"}, "tooooo", "too", true, "Several extra"},
		{[]string{"hello"}, "hhhelllooo", "hello", true, "Repeats everywhere"},
		{[]string{"to"}, "tooo", "to", true, "Collapse to single"},

		// combined
		{[]string{"test"}, "TEeeSst", "test", true, "Case and repeats"},
		{[]string{"sheep"}, "SHEEEEP", "sheep", true, "Case and long repeat"},
		{[]string{"peanut"}, "pEEnaaAt", "peanut", true, "Case, vowels and repeats"},
		{[]string{"jobs"}, "JJoobbss", "jobs", true, "Every letter doubled"},

		// misses
		{[]string{"test"}, "xyz", "", false, "Unknown letters"},
		{[]string{"test"}, "tes", "", false, "Prefix only"},
		{[]string{"test"}, "tests", "", false, "Extra letter, not a repeat"},
		{[]string{"test"}, "tst", "", false, "Missing vowel"},
		{[]string{"test"}, "t3st", "", false, "Digit in place of vowel"},
		{[]string{"test"}, "te-st", "", false, "Punctuation"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			trie := newTestTrie(tc.dict...)
			got, ok := trie.Find(tc.input)
			if ok != tc.found || got != tc.expected {
				t.Errorf("Find(%q) over %v = %q, %v; want %q, %v", tc.input, tc.dict, got, ok, tc.expected, tc.found)
			}
		})
	}
}

func TestFindRepeatOfDictionaryLetter(t *testing.T) {
	// "abb" collapses to "ab" when the trie has it
	trie := newTestTrie("ab")
	if got, ok := trie.Find("abbb"); !ok || got != "ab" {
		t.Errorf("Find(abbb) = %q, %v; want ab", got, ok)
	}
}

// The search stops at the first word found, in a fixed order.
func TestFindExplorationOrder(t *testing.T) {
	testCases := []struct {
		dict     []string
		input    string
		expected string
	}{
		// exact beats substitution
		{[]string{"bat", "bet"}, "bet", "bet"},
		{[]string{"bet", "bat"}, "bat", "bat"},
		// vowels are tried a, e, i, o, u whatever the insertion order
		{[]string{"but", "bit", "bet"}, "bot", "bet"},
		{[]string{"but", "bit"}, "bot", "bit"},
		// exact path reaching a word beats collapsing
		{[]string{"too", "to"}, "too", "too"},
		// substitution is tried before collapsing
		{[]string{"ba", "bae"}, "baa", "bae"},
		{[]string{"ba"}, "baa", "ba"},
		// a deeper exact path wins even if it needs a collapse later
		{[]string{"to", "tea"}, "too", "to"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s in %v", tc.input, tc.dict), func(t *testing.T) {
			trie := newTestTrie(tc.dict...)
			got, ok := trie.Find(tc.input)
			if !ok || got != tc.expected {
				t.Errorf("Find(%q) = %q, %v; want %q", tc.input, got, ok, tc.expected)
			}
		})
	}
}

func TestFindEmptyDictionary(t *testing.T) {
	trie := New()
	for _, q := range []string{"a", "test", "TEST", "aaaa", "xyz", "hello world"} {
		if got, ok := trie.Find(q); ok {
			t.Errorf("Find(%q) on empty trie = %q; want no match", q, got)
		}
	}
	if trie.Len() != 0 || trie.Nodes() != 1 {
		t.Errorf("empty trie has %d words, %d nodes", trie.Len(), trie.Nodes())
	}
}

func TestEmptyWordAndQuery(t *testing.T) {
	trie := newTestTrie("test")
	if _, ok := trie.Find(""); ok {
		t.Error("empty query matched without an empty word in the dictionary")
	}

	trie.Insert("")
	got, ok := trie.Find("")
	if !ok || got != "" {
		t.Errorf("Find(\"\") = %q, %v; want \"\", true", got, ok)
	}
	if !trie.Root().IsTerminal() {
		t.Error("root should be terminal after inserting the empty word")
	}
	if got, ok := trie.Find("test"); !ok || got != "test" {
		t.Errorf("Find(test) = %q, %v after stamping root", got, ok)
	}
}

func TestInsertIdempotent(t *testing.T) {
	trie := newTestTrie("test")
	nodes := trie.Nodes()
	before, _ := trie.Find("tost")

	trie.Insert("test")
	trie.Insert("test")

	if trie.Nodes() != nodes {
		t.Errorf("reinserting created nodes: %d -> %d", nodes, trie.Nodes())
	}
	if trie.Len() != 1 {
		t.Errorf("Len() = %d, want 1", trie.Len())
	}
	after, _ := trie.Find("tost")
	if before != after {
		t.Errorf("Find changed after reinsert: %q -> %q", before, after)
	}

	terminals := 0
	var count func(n *Node)
	count = func(n *Node) {
		if n.IsTerminal() {
			terminals++
		}
		for _, c := range n.Children() {
			count(c)
		}
	}
	count(trie.Root())
	if terminals != 1 {
		t.Errorf("found %d terminal nodes, want 1", terminals)
	}
}

func TestInsertSharesPrefixes(t *testing.T) {
	trie := newTestTrie("to", "too", "top", "tops")
	// root, t, o, o, p, s
	if trie.Nodes() != 6 {
		t.Errorf("Nodes() = %d, want 6", trie.Nodes())
	}
	if trie.Len() != 4 {
		t.Errorf("Len() = %d, want 4", trie.Len())
	}
	to := trie.Root().FindChild('t').FindChild('o')
	if w, ok := to.Word(); !ok || w != "to" {
		t.Errorf("node for \"to\" holds %q, %v", w, ok)
	}
	if len(to.Children()) != 2 {
		t.Errorf("\"to\" should branch into o and p, got %d children", len(to.Children()))
	}
}

func TestFindDeterministic(t *testing.T) {
	trie := newTestTrie("bat", "bet", "bit", "bot", "but", "boot", "beat", "bait")
	queries := []string{"bot", "buut", "BEAAT", "baaait", "bxt", "boooot"}

	for _, q := range queries {
		first, firstOK := trie.Find(q)
		for i := 0; i < 50; i++ {
			got, ok := trie.Find(q)
			if got != first || ok != firstOK {
				t.Fatalf("Find(%q) run %d = %q, %v; first run gave %q, %v", q, i, got, ok, first, firstOK)
			}
		}
	}
}

func TestConcurrentFind(t *testing.T) {
	trie := newTestTrie("test", "too", "hello", "sheep", "peanut")
	queries := map[string]string{
		"TEeeSst": "test",
		"tooo":    "too",
		"hallo":   "hello",
		"shaap":   "sheep",
		"pEEnaAt": "peanut",
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for q, want := range queries {
					if got, ok := trie.Find(q); !ok || got != want {
						t.Errorf("Find(%q) = %q, %v; want %q", q, got, ok, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

// vowelWords returns every word of length n over a e i o u.
func vowelWords(n int) []string {
	words := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range words {
			for _, v := range vowels {
				next = append(next, w+string(v))
			}
		}
		words = next
	}
	return words
}

func TestSearchStepLimit(t *testing.T) {
	words := append(vowelWords(4), "test")

	unbounded := newTestTrie(words...)
	r := unbounded.Search("aeiox")
	if r.Found || r.Truncated {
		t.Fatalf("unbounded search = %+v; want exhausted miss", r)
	}
	// 1 + 5 + 25 + 125 + 625 states
	if r.Steps != 781 {
		t.Errorf("unbounded search visited %d states, want 781", r.Steps)
	}

	bounded := New(WithStepLimit(10))
	for _, w := range words {
		bounded.Insert(w)
	}
	r = bounded.Search("aeiox")
	if r.Found || !r.Truncated {
		t.Errorf("bounded search = %+v; want truncated miss", r)
	}
	if r.Steps != 11 {
		t.Errorf("bounded search counted %d steps, want 11", r.Steps)
	}

	// typical lookups stay well inside the budget
	if got, ok := bounded.Find("tost"); !ok || got != "test" {
		t.Errorf("Find(tost) with step limit = %q, %v", got, ok)
	}
}

func TestSearchReportsSteps(t *testing.T) {
	trie := newTestTrie("test")
	r := trie.Search("test")
	// root + one state per character
	if !r.Found || r.Steps != 5 {
		t.Errorf("Search(test) = %+v; want found in 5 steps", r)
	}
}

func TestStats(t *testing.T) {
	trie := New(WithStepLimit(500))
	trie.Insert("go")
	trie.Insert("gopher")

	stats := trie.Stats()
	if stats["totalWords"] != 2 || stats["totalNodes"] != 7 || stats["stepLimit"] != 500 {
		t.Errorf("Stats() = %v", stats)
	}
}

// worst case: every vowel position fans out and nothing matches
func BenchmarkFindVowelHeavyMiss(b *testing.B) {
	trie := New()
	for _, w := range []string{"aeiouaei", "ouiea", "uaeio", "eieio"} {
		trie.Insert(w)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie.Find("aeiouaeix")
	}
}

func BenchmarkFindExact(b *testing.B) {
	trie := New()
	for i := 0; i < 1000; i++ {
		trie.Insert(fmt.Sprintf("word%d", i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie.Find("word512")
	}
}
