package analyzer

import "strings"

// Keyword match weights. Primary keywords are highly category-specific,
// secondary keywords score at half weight. A partial (substring) match
// earns a quarter of the exact weight and at most one credit per keyword.
const (
	primaryExactWeight     = 2.0
	primaryPartialWeight   = 0.5
	secondaryExactWeight   = 1.0
	secondaryPartialWeight = 0.25

	// scoreThreshold is the minimum winning score; anything below it falls
	// back to the default category.
	scoreThreshold = 1.0

	// minPartialKeywordLen guards partial matching: very short keywords are
	// substrings of too many unrelated tokens to be a useful signal.
	minPartialKeywordLen = 4
)

// indexEntry records that a keyword belongs to one category at one weight
// tier.
type indexEntry struct {
	category int
	weight   float64
}

// Classifier assigns a category to free-form text by scoring it against
// the keyword dictionary. It is immutable after construction and safe for
// concurrent use.
type Classifier struct {
	categories []Category
	fallback   string

	// exact maps keyword to its dictionary entries, built once so exact
	// scoring is a lookup per distinct token instead of a scan over every
	// category list.
	exact map[string][]indexEntry

	// vocab is the union of all dictionary keywords, used by the keyword
	// extractor to surface dictionary-matched tokens first.
	vocab map[string]struct{}
}

func NewClassifier(categories []Category, fallback string) (*Classifier, error) {
	if err := validateCategories(categories); err != nil {
		return nil, err
	}
	if fallback == "" {
		fallback = DefaultFallbackCategory
	}

	c := &Classifier{
		categories: categories,
		fallback:   fallback,
		exact:      make(map[string][]indexEntry),
		vocab:      make(map[string]struct{}),
	}
	for i, cat := range categories {
		for _, kw := range cat.Primary {
			c.exact[kw] = append(c.exact[kw], indexEntry{category: i, weight: primaryExactWeight})
			c.vocab[kw] = struct{}{}
		}
		for _, kw := range cat.Secondary {
			c.exact[kw] = append(c.exact[kw], indexEntry{category: i, weight: secondaryExactWeight})
			c.vocab[kw] = struct{}{}
		}
	}
	return c, nil
}

// Fallback returns the default category used when no category clears the
// score threshold.
func (c *Classifier) Fallback() string {
	return c.fallback
}

// Classify returns the best-scoring category for the text, or the
// fallback category when nothing scores at least the threshold. Identical
// input always yields identical output.
func (c *Classifier) Classify(text string) string {
	category, _ := c.ClassifyWithScores(text)
	return category
}

// ClassifyWithScores additionally returns the per-category score map as a
// diagnostic for callers that want visibility into the decision.
func (c *Classifier) ClassifyWithScores(text string) (string, map[string]float64) {
	scores := make(map[string]float64, len(c.categories))
	for _, cat := range c.categories {
		scores[cat.Name] = 0
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return c.fallback, scores
	}
	set := tokenSet(tokens)

	// Exact matches: the index yields one credit per keyword present in
	// the token set, per category listing it.
	for token := range set {
		for _, e := range c.exact[token] {
			scores[c.categories[e.category].Name] += e.weight
		}
	}

	// Partial matches for keywords without an exact hit. Containment is
	// independent of the category a keyword belongs to, so results are
	// memoized across categories.
	memo := make(map[string]bool)
	for _, cat := range c.categories {
		for _, kw := range cat.Primary {
			if c.partialMatch(kw, set, memo) {
				scores[cat.Name] += primaryPartialWeight
			}
		}
		for _, kw := range cat.Secondary {
			if c.partialMatch(kw, set, memo) {
				scores[cat.Name] += secondaryPartialWeight
			}
		}
	}

	// Strictly highest score wins; on a tie the category listed first in
	// the dictionary wins.
	best := c.fallback
	bestScore := -1.0
	for _, cat := range c.categories {
		if s := scores[cat.Name]; s > bestScore {
			best, bestScore = cat.Name, s
		}
	}
	if bestScore < scoreThreshold {
		return c.fallback, scores
	}
	return best, scores
}

// partialMatch reports whether a keyword with no exact match still
// matches some token by substring containment in either direction. This
// catches inflectional variants ("recipes" matches "recipe"). At most one
// credit per keyword regardless of how many tokens match.
func (c *Classifier) partialMatch(kw string, set map[string]struct{}, memo map[string]bool) bool {
	if _, exact := set[kw]; exact {
		return false
	}
	if len(kw) < minPartialKeywordLen {
		return false
	}
	if v, ok := memo[kw]; ok {
		return v
	}
	matched := false
	for t := range set {
		if strings.Contains(t, kw) || strings.Contains(kw, t) {
			matched = true
			break
		}
	}
	memo[kw] = matched
	return matched
}
