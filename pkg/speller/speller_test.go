package speller

import (
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/trie"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newTestSpeller(cacheSize int, words ...string) *Speller {
	s := New(trie.New(), WithCacheSize(cacheSize))
	for _, w := range words {
		s.AddWord(w)
	}
	return s
}

func TestAddWordNormalizes(t *testing.T) {
	s := newTestSpeller(0, "  Test ", "HELLO", "", "   ", "world")

	for _, w := range []string{"test", "hello", "world"} {
		if got, ok := s.Trie().Find(w); !ok || got != w {
			t.Errorf("Find(%q) = %q, %v", w, got, ok)
		}
	}
	if _, ok := s.Trie().Find(""); ok {
		t.Error("blank lines should not stamp the root")
	}

	stats := s.Stats()
	if stats["addedWords"] != 3 || stats["skippedBlank"] != 2 || stats["totalWords"] != 3 {
		t.Errorf("Stats() = %v", stats)
	}
}

func TestCheck(t *testing.T) {
	s := newTestSpeller(16, "test", "too", "sheep")

	testCases := []struct {
		input     string
		word      string
		found     bool
		corrected bool
	}{
		{"test", "test", true, false},
		{"TEST", "test", true, false},
		{"tost", "test", true, true},
		{"tooo", "too", true, true},
		{"SHEEEP", "sheep", true, true},
		{"xyz", "", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			r := s.Check(tc.input)
			if r.Input != tc.input || r.Word != tc.word || r.Found != tc.found || r.Corrected != tc.corrected {
				t.Errorf("Check(%q) = %+v; want word=%q found=%v corrected=%v", tc.input, r, tc.word, tc.found, tc.corrected)
			}
		})
	}
}

func TestCheckUsesCache(t *testing.T) {
	s := newTestSpeller(16, "test")

	first := s.Check("Tost")
	if first.Cached {
		t.Fatal("first lookup should not come from the cache")
	}
	second := s.Check("TOST")
	if !second.Cached {
		t.Fatal("second lookup of the same lowercased query should hit the cache")
	}
	if second.Input != "TOST" {
		t.Errorf("cached result should carry the new input, got %q", second.Input)
	}
	second.Cached = false
	second.Input = first.Input
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result %+v differs from computed %+v", second, first)
	}

	stats := s.Stats()
	if stats["cacheHits"] != 1 || stats["cacheMisses"] != 1 || stats["cacheEntries"] != 1 {
		t.Errorf("cache stats = %v", stats)
	}
}

func TestAddWordInvalidatesCache(t *testing.T) {
	s := newTestSpeller(16, "test")

	if r := s.Check("tooo"); r.Found {
		t.Fatalf("Check(tooo) = %+v before adding too", r)
	}
	s.AddWord("too")
	if r := s.Check("tooo"); !r.Found || r.Word != "too" || r.Cached {
		t.Errorf("Check(tooo) = %+v after adding too", r)
	}
}

func TestCheckWithoutCache(t *testing.T) {
	s := newTestSpeller(0, "test")
	s.Check("tost")
	if r := s.Check("tost"); r.Cached {
		t.Error("cache disabled but result reported as cached")
	}
	if s.Stats()["cache"] != 0 {
		t.Error("stats should report the cache as disabled")
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	c.Put("a", Result{Word: "a"})
	c.Put("b", Result{Word: "b"})
	c.Get("a")
	c.Put("c", Result{Word: "c"})

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, q := range []string{"a", "c"} {
		if r, ok := c.Get(q); !ok || r.Word != q {
			t.Errorf("Get(%q) = %+v, %v", q, r, ok)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Put("a", Result{Word: "A"})
	if c.Len() != 2 {
		t.Errorf("overwriting should not grow the cache, Len() = %d", c.Len())
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Reset", c.Len())
	}
}

func TestComplete(t *testing.T) {
	s := newTestSpeller(0, "tea", "team", "teams", "ten", "test", "to", "apple")

	testCases := []struct {
		prefix   string
		limit    int
		expected []string
	}{
		{"te", 0, []string{"tea", "team", "teams", "ten", "test"}},
		{"TE", 2, []string{"tea", "team"}},
		{"team", 0, []string{"team", "teams"}},
		{"x", 0, []string{}},
		{"apple", 10, []string{"apple"}},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%d", tc.prefix, tc.limit), func(t *testing.T) {
			got := s.Complete(tc.prefix, tc.limit)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Complete(%q, %d) = %v, want %v", tc.prefix, tc.limit, got, tc.expected)
			}
		})
	}
}

func TestSession(t *testing.T) {
	s := newTestSpeller(0, "to", "too", "test")
	session := NewSession(s)

	if r := session.Start("t"); r.Found {
		t.Errorf("Start(t) = %+v", r)
	}
	if r := session.Append("o"); !r.Found || r.Word != "to" {
		t.Errorf("after appending o: %+v", r)
	}
	if r := session.Append("oo"); !r.Found || r.Word != "too" || !r.Corrected {
		t.Errorf("after appending oo: %+v", r)
	}
	if session.Word() != "tooo" {
		t.Errorf("Word() = %q", session.Word())
	}

	if r := session.Start("TEST"); !r.Found || r.Word != "test" || session.Word() != "TEST" {
		t.Errorf("Start(TEST) = %+v, word %q", r, session.Word())
	}
	if session.Result().Word != "test" {
		t.Errorf("Result() = %+v", session.Result())
	}

	session.Reset()
	if session.Word() != "" || session.Result().Found {
		t.Error("Reset should clear the session")
	}
}

func TestConcurrentCheck(t *testing.T) {
	s := newTestSpeller(4, "test", "too", "hello", "sheep")
	queries := map[string]string{"tost": "test", "tooo": "too", "hallo": "hello", "shaap": "sheep", "TEST": "test"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for q, want := range queries {
					if r := s.Check(q); r.Word != want {
						t.Errorf("Check(%q) = %+v, want %q", q, r, want)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}
