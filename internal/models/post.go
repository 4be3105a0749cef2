package models

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Post is a user post with the fields derived by the analysis pipeline at
// creation time. The derived fields (Category, Summary, Keywords, Hashtags,
// Flagged, FlagReasons) are set exactly once and never recomputed.
type Post struct {
	ID            string    `json:"id"`
	AuthorID      string    `json:"author_id"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Summary       string    `json:"summary"`
	Keywords      []string  `json:"keywords"`
	Hashtags      []string  `json:"hashtags"`
	MediaURL      string    `json:"media_url,omitempty"`
	MediaType     MediaType `json:"media_type,omitempty"`
	MediaID       string    `json:"media_id,omitempty"`
	Likes         []string  `json:"likes"`
	CommentsCount int       `json:"comments_count"`
	Flagged       bool      `json:"flagged"`
	FlagReasons   []string  `json:"flag_reasons,omitempty"`
	Visible       bool      `json:"visible"`
	CreatedAt     time.Time `json:"created_at"`
}

// Comment is a comment on a post.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// HashtagCount is an aggregated hashtag usage count for trending queries.
type HashtagCount struct {
	Hashtag string `json:"hashtag"`
	Count   int    `json:"count"`
}
