package analyzer

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	// Posts at or below this many words are returned unchanged.
	summaryWordThreshold = 100

	// Joined summaries longer than summaryMaxChars are cut at
	// summaryTruncateAt and terminated with an ellipsis marker.
	summaryMaxChars   = 200
	summaryTruncateAt = 197

	// Words this short contribute nothing to the frequency table.
	minFreqWordLen = 3

	maxSummarySentences = 3
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Summarize produces an extractive summary: sentences are ranked by the
// average global frequency of their words and the top-ranked ones are
// joined, highest score first. Short posts (<=100 words) and texts with
// two or fewer sentences come back unchanged.
func Summarize(text string) string {
	if len(strings.Fields(text)) <= summaryWordThreshold {
		return text
	}

	sentences := sentencePattern.FindAllString(text, -1)
	if len(sentences) <= 2 {
		return text
	}

	freq := make(map[string]int)
	for _, w := range summaryWords(text) {
		if len([]rune(w)) > minFreqWordLen {
			freq[w]++
		}
	}

	type scoredSentence struct {
		text  string
		score float64
	}
	ranked := make([]scoredSentence, 0, len(sentences))
	for _, s := range sentences {
		words := summaryWords(s)
		total := 0
		for _, w := range words {
			total += freq[w]
		}
		var score float64
		if len(words) > 0 {
			// Average, not sum: long sentences get no unfair advantage.
			score = float64(total) / float64(len(words))
		}
		ranked = append(ranked, scoredSentence{text: strings.TrimSpace(s), score: score})
	}

	// Stable sort so equal-score sentences keep their document order and
	// the result is reproducible.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := maxSummarySentences
	if half := (len(sentences) + 1) / 2; half < n {
		n = half
	}

	parts := make([]string, 0, n)
	for _, s := range ranked[:n] {
		parts = append(parts, s.text)
	}
	summary := strings.Join(parts, " ")
	if runes := []rune(summary); len(runes) > summaryMaxChars {
		summary = string(runes[:summaryTruncateAt]) + "..."
	}
	return summary
}

// summaryWords lowercases and strips punctuation the same way for the
// frequency table and for sentence scoring.
func summaryWords(s string) []string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Fields(b.String())
}
