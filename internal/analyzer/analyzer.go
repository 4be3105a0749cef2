// Package analyzer implements the rule-based text analysis pipeline:
// category classification, keyword extraction, hashtag extraction,
// extractive summarization and content moderation. Everything here is a
// pure function of the input text and the dictionaries loaded at
// construction, so a single Analyzer serves concurrent requests without
// locking.
package analyzer

import (
	"fmt"

	"github.com/intentia/backend/internal/models"
)

// Config tunes the pipeline. Zero values select the built-in defaults.
type Config struct {
	// Categories is the classification dictionary; nil means
	// DefaultCategories.
	Categories []Category

	// Fallback is the category for posts nothing else claims.
	Fallback string

	// MaxKeywords caps the extracted keyword list.
	MaxKeywords int
}

// Analyzer is the single entry point the post workflow calls.
type Analyzer struct {
	classifier  *Classifier
	maxKeywords int
}

// New builds the pipeline. A bad dictionary is a configuration error and
// should abort boot; per-request analysis never fails.
func New(cfg Config) (*Analyzer, error) {
	categories := cfg.Categories
	if categories == nil {
		categories = DefaultCategories()
	}
	clf, err := NewClassifier(categories, cfg.Fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid category dictionary: %w", err)
	}

	maxKeywords := cfg.MaxKeywords
	if maxKeywords <= 0 {
		maxKeywords = DefaultMaxKeywords
	}
	return &Analyzer{classifier: clf, maxKeywords: maxKeywords}, nil
}

// Classifier exposes the underlying classifier for callers that want the
// per-category score diagnostics.
func (a *Analyzer) Classifier() *Classifier {
	return a.classifier
}

// Analyze runs the full pipeline over one post's content. Hashtags come
// from the raw text; every other stage works on the tokenized form. The
// stages are independent: none consumes another's output.
func (a *Analyzer) Analyze(text string) models.Analysis {
	moderation := Moderate(text)
	return models.Analysis{
		Hashtags:    ExtractHashtags(text),
		Category:    a.classifier.Classify(text),
		Summary:     Summarize(text),
		Keywords:    a.classifier.ExtractKeywords(text, a.maxKeywords),
		Flagged:     moderation.Flagged,
		FlagReasons: moderation.Reasons,
	}
}
