package utils

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchCase shapes word after the casing of input: all caps stays all caps,
// a leading capital stays a leading capital, anything else is left lowercase.
func MatchCase(input, word string) string {
	if word == "" {
		return word
	}
	hasLetter, allUpper := false, true
	for _, r := range input {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			allUpper = false
			break
		}
	}
	if hasLetter && allUpper && utf8.RuneCountInString(input) > 1 {
		return strings.ToUpper(word)
	}
	first, _ := utf8.DecodeRuneInString(input)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(word)
		return string(unicode.ToUpper(r)) + word[size:]
	}
	return word
}

// FormatWithCommas renders n with thousands separators.
func FormatWithCommas(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
