package models

import "time"

// User holds the profile fields the post workflow touches. Account
// credentials and two-factor secrets live with the auth collaborator and
// never enter this package.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	TotalPosts     int       `json:"total_posts"`
	ClarityScore   int       `json:"clarity_score"`
	CreatedAt      time.Time `json:"created_at"`
}
