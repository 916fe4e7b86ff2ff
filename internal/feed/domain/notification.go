package domain

import "time"

// Notification types. These are the only engagement events the system emits.
const (
	NotificationLike    = "like"
	NotificationComment = "comment"
)

// Notification is a one-way event from sender to recipient about a post.
// Only the read flag ever mutates after creation.
type Notification struct {
	ID             string    `json:"id"`
	RecipientID    string    `json:"recipientId"`
	SenderID       string    `json:"senderId"`
	SenderUsername string    `json:"senderUsername"` // resolved on read
	Type           string    `json:"type"`
	PostID         string    `json:"postId"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}
