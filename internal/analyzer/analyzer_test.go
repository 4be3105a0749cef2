package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFullPipeline(t *testing.T) {
	a, err := New(Config{})
	require.NoError(t, err)

	content := "Loving the new #Gaming console and all the games at the expo"
	result := a.Analyze(content)

	assert.Equal(t, "Play", result.Category)
	assert.Equal(t, []string{"gaming"}, result.Hashtags)
	assert.Contains(t, result.Keywords, "gaming")
	assert.Contains(t, result.Keywords, "console")
	assert.LessOrEqual(t, len(result.Keywords), DefaultMaxKeywords)
	assert.Equal(t, content, result.Summary)
	assert.False(t, result.Flagged)
	assert.Empty(t, result.FlagReasons)
}

func TestAnalyzeDeterminism(t *testing.T) {
	a, err := New(Config{})
	require.NoError(t, err)

	content := "Trying out a new recipe tonight! #food #Cooking so excited"
	first := a.Analyze(content)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, a.Analyze(content))
	}
}

func TestAnalyzeEmptyText(t *testing.T) {
	a, err := New(Config{})
	require.NoError(t, err)

	result := a.Analyze("")
	assert.Equal(t, DefaultFallbackCategory, result.Category)
	assert.Empty(t, result.Keywords)
	assert.Empty(t, result.Hashtags)
	assert.Equal(t, "", result.Summary)
	assert.False(t, result.Flagged)
}

func TestNewRejectsEmptyDictionary(t *testing.T) {
	_, err := New(Config{Categories: []Category{}})
	assert.Error(t, err)
}

func TestNewCustomFallback(t *testing.T) {
	a, err := New(Config{Fallback: "General"})
	require.NoError(t, err)

	assert.Equal(t, "General", a.Analyze("zzz").Category)
}
