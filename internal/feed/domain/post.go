package domain

import "time"

// Post is a short text publication owned by exactly one author. Likes carry
// set semantics (a user id appears at most once); Comments are ordered
// oldest-first and live and die with the post.
type Post struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"` // username, resolved on read
	Content    string    `json:"content"`
	Likes      []string  `json:"likes"` // liking user ids
	Comments   []Comment `json:"comments"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LikedBy reports whether userID is in the post's likes set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment is embedded in a post. The author is stored as a user reference;
// the display name is resolved when the post is read.
type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"-"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}
