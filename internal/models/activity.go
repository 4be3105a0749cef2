package models

import "time"

type ActivityType string

const (
	ActivityPost    ActivityType = "post"
	ActivityLike    ActivityType = "like"
	ActivityComment ActivityType = "comment"
	ActivityLogin   ActivityType = "login"
)

// Activity is an audit record of a user action, kept for the activity feed.
type Activity struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	Type       ActivityType `json:"type"`
	Action     string       `json:"action"`
	TargetPost string       `json:"target_post,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}
