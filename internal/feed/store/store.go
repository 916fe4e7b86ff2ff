package store

import (
	"context"
	"errors"

	"github.com/bailanysta/api/internal/feed/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement it. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Users() Users
	Follows() Follows
	Posts() Posts
	Notifications() Notifications

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Use it for
	// read-then-write sequences that must not interleave (like toggles).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying database handle.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped Store.
type Tx interface {
	Users() Users
	Follows() Follows
	Posts() Posts
	Notifications() Notifications

	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByIdentifier matches username OR email, used during login.
	GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error)
}

type Follows interface {
	// Follow records the directed edge follower -> followee. Inserting an
	// existing edge is a no-op (set semantics).
	Follow(ctx context.Context, followerID, followeeID string) error

	// Unfollow removes the edge; removing a missing edge is a no-op.
	Unfollow(ctx context.Context, followerID, followeeID string) error

	// IsFollowing reports whether the edge exists.
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)

	// Following returns the ids the user follows.
	Following(ctx context.Context, userID string) ([]string, error)

	// Counts returns (followers, following) degree counts for a user.
	Counts(ctx context.Context, userID string) (int64, int64, error)
}

type Posts interface {
	// CreatePost inserts a new post.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID returns a post with its likes and comments hydrated.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListFeed returns posts authored by viewerID or anyone in its following
	// set, newest-first, fully hydrated. Unbounded by design.
	ListFeed(ctx context.Context, viewerID string) ([]domain.Post, error)

	// ListByAuthor returns one author's posts, newest-first, hydrated.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)

	// UpdateContent replaces the post content and bumps updated_at.
	UpdateContent(ctx context.Context, postID, content string) error

	// DeletePost removes the post; likes and comments cascade.
	DeletePost(ctx context.Context, postID string) error

	// AddLike inserts userID into the post's likes set; no-op if present.
	AddLike(ctx context.Context, postID, userID string) error

	// RemoveLike deletes userID from the likes set; no-op if absent.
	RemoveLike(ctx context.Context, postID, userID string) error

	// AddComment appends a comment to its post.
	AddComment(ctx context.Context, c domain.Comment) error
}

type Notifications interface {
	// CreateNotification inserts a new unread notification.
	CreateNotification(ctx context.Context, n domain.Notification) error

	GetNotificationByID(ctx context.Context, id string) (domain.Notification, error)

	// ListByRecipient returns the newest notifications for a user, capped at
	// limit, sender usernames resolved.
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error)

	// MarkRead flips the read flag; already-read rows are left untouched.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead flips every unread notification for the recipient and
	// returns the number of rows affected.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}
