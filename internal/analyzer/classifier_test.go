package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(DefaultCategories(), "")
	require.NoError(t, err)
	return c
}

func TestClassifyGamingPost(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Classify("I love playing games on my new PlayStation console")
	assert.Equal(t, "Play", got)
}

func TestClassifyFallback(t *testing.T) {
	c := newTestClassifier(t)

	assert.Equal(t, "Share & Thoughts", c.Classify(""))
	assert.Equal(t, "Share & Thoughts", c.Classify("   "))
	assert.Equal(t, "Share & Thoughts", c.Classify("zzz qqq xyzzy"))
}

func TestClassifyBelowThresholdFallsBack(t *testing.T) {
	c := newTestClassifier(t)

	// A single partial match scores 0.5, below the 1.0 threshold.
	category, scores := c.ClassifyWithScores("recipes")
	assert.Equal(t, "Share & Thoughts", category)
	assert.Equal(t, 0.5, scores["Food"])
}

func TestClassifyPartialMatches(t *testing.T) {
	c := newTestClassifier(t)

	// Two partial matches reach the threshold exactly.
	category, scores := c.ClassifyWithScores("cooking recipes tonight")
	assert.Equal(t, "Food", category)
	assert.Equal(t, 1.0, scores["Food"])
}

func TestClassifyExactSuppressesPartial(t *testing.T) {
	c := newTestClassifier(t)

	// "recipe" matches exactly; "recipes" must not earn an extra partial
	// credit for the same keyword.
	_, scores := c.ClassifyWithScores("recipe recipes")
	assert.Equal(t, 2.0, scores["Food"])
}

func TestClassifyOnePartialCreditPerKeyword(t *testing.T) {
	c := newTestClassifier(t)

	// Both tokens partially match "recipe", yet the keyword earns a single
	// 0.5 credit.
	_, scores := c.ClassifyWithScores("recipes reciped")
	assert.Equal(t, 0.5, scores["Food"])
}

func TestClassifyShortKeywordsSkipPartial(t *testing.T) {
	c := newTestClassifier(t)

	// "ai" is a secondary keyword but too short for partial matching, so
	// "airports" must not credit Learning & Tech.
	_, scores := c.ClassifyWithScores("airports")
	assert.Equal(t, 0.0, scores["Learning & Tech"])
}

func TestClassifyTieBreakFirstSeen(t *testing.T) {
	categories := []Category{
		{Name: "First", Primary: []string{"shared"}},
		{Name: "Second", Primary: []string{"shared"}},
	}
	c, err := NewClassifier(categories, "None")
	require.NoError(t, err)

	category, scores := c.ClassifyWithScores("shared")
	assert.Equal(t, "First", category)
	assert.Equal(t, scores["First"], scores["Second"])
}

func TestClassifyDeterminism(t *testing.T) {
	c := newTestClassifier(t)
	text := "Breaking news about the latest football match and a new movie trailer"

	first, firstScores := c.ClassifyWithScores(text)
	for i := 0; i < 10; i++ {
		got, scores := c.ClassifyWithScores(text)
		assert.Equal(t, first, got)
		assert.Equal(t, firstScores, scores)
	}
}

func TestClassifyScoreMapCoversAllCategories(t *testing.T) {
	c := newTestClassifier(t)

	_, scores := c.ClassifyWithScores("hello")
	assert.Len(t, scores, len(DefaultCategories()))
}

func TestNewClassifierRejectsBadDictionaries(t *testing.T) {
	_, err := NewClassifier(nil, "")
	assert.Error(t, err)

	_, err = NewClassifier([]Category{}, "")
	assert.Error(t, err)

	_, err = NewClassifier([]Category{
		{Name: "Dup"},
		{Name: "Dup"},
	}, "")
	assert.Error(t, err)

	_, err = NewClassifier([]Category{{Name: ""}}, "")
	assert.Error(t, err)
}
