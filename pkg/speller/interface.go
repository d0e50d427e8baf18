// Package speller checks words against a loaded dictionary and suggests corrections for the ones it does not know.
package speller

// Checker defines the interface the server and cli use to query a dictionary
type Checker interface {
	// Check looks up a word, correcting it if needed
	Check(word string) Result

	// Complete returns dictionary words starting with prefix, at most limit (0 for all)
	Complete(prefix string, limit int) []string

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
