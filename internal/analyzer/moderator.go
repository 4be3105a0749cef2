package analyzer

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/intentia/backend/internal/models"
)

// bannedTerms are matched case-insensitively as substrings. Grouped by
// violation class; a match flags the post for human review, it never
// blocks creation.
var bannedTerms = []string{
	// violence
	"kill", "murder", "attack", "violence", "bomb", "weapon",
	// hate speech
	"hate", "racist", "discrimination",
	// adult content
	"porn", "xxx", "nude", "sexual",
	// spam phrases
	"buy now", "click here", "earn money", "free money", "guarantee",
}

const (
	capsRatioThreshold = 0.5
	// Texts at or below this length skip the capitalization check, so
	// short shouts like "OK" or acronyms are not flagged.
	capsMinLength   = 20
	repeatRunLength = 5
)

// Moderate checks text against the banned-term list and the spam
// heuristics. It never fails: empty text yields an unflagged result.
func Moderate(text string) models.Moderation {
	var reasons []string

	lower := strings.ToLower(text)
	for _, term := range bannedTerms {
		if strings.Contains(lower, term) {
			reasons = append(reasons, fmt.Sprintf("Potential inappropriate content: %q", term))
		}
	}

	runes := []rune(text)
	if len(runes) > capsMinLength {
		upper := 0
		for _, r := range runes {
			if unicode.IsUpper(r) {
				upper++
			}
		}
		if float64(upper)/float64(len(runes)) > capsRatioThreshold {
			reasons = append(reasons, "Excessive capitalization detected")
		}
	}

	run := 0
	var prev rune
	for i, r := range runes {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		if run >= repeatRunLength {
			reasons = append(reasons, "Spam pattern detected")
			break
		}
	}

	return models.Moderation{Flagged: len(reasons) > 0, Reasons: reasons}
}
