package analyzer

// DefaultMaxKeywords caps the keyword list attached to a post.
const DefaultMaxKeywords = 10

// ExtractKeywords surfaces the most relevant tokens of the text, capped
// at max (DefaultMaxKeywords when max <= 0). Tokens found in the category
// dictionary come first, in order of first occurrence, followed by the
// remaining tokens; duplicates are removed across both groups.
func (c *Classifier) ExtractKeywords(text string, max int) []string {
	if max <= 0 {
		max = DefaultMaxKeywords
	}

	tokens := Tokenize(text)
	seen := make(map[string]struct{}, len(tokens))
	matched := make([]string, 0, len(tokens))
	var unmatched []string
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := c.vocab[t]; ok {
			matched = append(matched, t)
		} else {
			unmatched = append(unmatched, t)
		}
	}

	keywords := append(matched, unmatched...)
	if len(keywords) > max {
		keywords = keywords[:max]
	}
	return keywords
}
