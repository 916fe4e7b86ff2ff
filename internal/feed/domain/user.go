package domain

import "time"

// User is a registered account. PasswordHash never leaves the service layer;
// Followers/Following counts are resolved from the edge table on read.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2id, PHC encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the public projection of a User: what anyone may see about an
// account, with the follow-graph degree counts.
type Profile struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FollowersCount int64     `json:"followersCount"`
	FollowingCount int64     `json:"followingCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
