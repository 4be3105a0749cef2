package analyzer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize normalizes text into a sequence of lowercase tokens suitable
// for frequency scoring. Apostrophes and backticks are removed so
// contractions stay whole ("don't" becomes "dont"); hyphens and
// underscores split compounds ("hip-hop" becomes "hip", "hop"); all other
// non-alphanumeric characters are stripped. Stop words and tokens of
// length 1 are dropped. Order and duplicates are preserved.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r == '\'' || r == '`':
			// removed, not replaced: keeps contractions as one token
		case r == '-' || r == '_':
			b.WriteRune(' ')
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}

	fields := strings.Fields(b.String())
	tokens := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= 1 || isStopWord(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// tokenSet returns the distinct tokens of a sequence for O(1) membership
// checks.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
