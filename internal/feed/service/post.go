package service

import (
	"context"
	"errors"
	"strings"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/idx"
	"github.com/bailanysta/api/pkg/slogx"
)

var (
	// ErrNotOwner means the actor is authenticated but does not own the
	// resource they are trying to mutate.
	ErrNotOwner = errors.New("not_owner")

	// ErrEmptyContent covers blank post content and blank comment text.
	ErrEmptyContent = errors.New("empty_content")
)

// PostService handles posts and their engagement (likes, comments) plus the
// notification side effects.
type PostService struct {
	Store store.Store
}

func (s *PostService) Create(ctx context.Context, authorID, content string) (domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Post{}, ErrEmptyContent
	}

	if _, err := s.Store.Users().GetUserByID(ctx, authorID); err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		ID:       idx.New().String(),
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.Store.Posts().CreatePost(ctx, post); err != nil {
		return domain.Post{}, err
	}

	return s.Store.Posts().GetPostByID(ctx, post.ID)
}

func (s *PostService) Update(ctx context.Context, actorID, postID, content string) (domain.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Post{}, ErrEmptyContent
	}

	post, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}
	if post.AuthorID != actorID {
		return domain.Post{}, ErrNotOwner
	}

	if err := s.Store.Posts().UpdateContent(ctx, postID, content); err != nil {
		return domain.Post{}, err
	}
	return s.Store.Posts().GetPostByID(ctx, postID)
}

func (s *PostService) Delete(ctx context.Context, actorID, postID string) error {
	post, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != actorID {
		return ErrNotOwner
	}

	// Comments and likes cascade with the post.
	return s.Store.Posts().DeletePost(ctx, postID)
}

// ToggleLike likes the post when the actor hasn't liked it yet, unlikes it
// otherwise. The membership test and the write run in one transaction so
// concurrent toggles for the same actor and post can't lose an update.
// A NEW like on someone else's post notifies the author; unlikes and
// self-likes never do.
func (s *PostService) ToggleLike(ctx context.Context, actorID, postID string) (domain.Post, error) {
	var (
		liked    bool
		authorID string
	)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		post, err := tx.Posts().GetPostByID(ctx, postID)
		if err != nil {
			return err
		}
		authorID = post.AuthorID

		if post.LikedBy(actorID) {
			return tx.Posts().RemoveLike(ctx, postID, actorID)
		}

		liked = true
		return tx.Posts().AddLike(ctx, postID, actorID)
	})
	if err != nil {
		return domain.Post{}, err
	}

	if liked && actorID != authorID {
		s.notify(ctx, domain.Notification{
			RecipientID: authorID,
			SenderID:    actorID,
			Type:        domain.NotificationLike,
			PostID:      postID,
		})
	}

	return s.Store.Posts().GetPostByID(ctx, postID)
}

// AddComment appends a comment and notifies the post's author unless the
// actor is commenting on their own post.
func (s *PostService) AddComment(ctx context.Context, actorID, postID, text string) (domain.Post, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Post{}, ErrEmptyContent
	}

	if _, err := s.Store.Users().GetUserByID(ctx, actorID); err != nil {
		return domain.Post{}, err
	}

	post, err := s.Store.Posts().GetPostByID(ctx, postID)
	if err != nil {
		return domain.Post{}, err
	}

	comment := domain.Comment{
		ID:       idx.New().String(),
		PostID:   postID,
		AuthorID: actorID,
		Text:     text,
	}
	if err := s.Store.Posts().AddComment(ctx, comment); err != nil {
		return domain.Post{}, err
	}

	if actorID != post.AuthorID {
		s.notify(ctx, domain.Notification{
			RecipientID: post.AuthorID,
			SenderID:    actorID,
			Type:        domain.NotificationComment,
			PostID:      postID,
		})
	}

	return s.Store.Posts().GetPostByID(ctx, postID)
}

// notify creates an engagement notification. Failures are logged and
// swallowed: a broken notification must never fail the like or comment that
// triggered it.
func (s *PostService) notify(ctx context.Context, n domain.Notification) {
	n.ID = idx.New().String()
	if err := s.Store.Notifications().CreateNotification(ctx, n); err != nil {
		slogx.FromContext(ctx).Error("failed to create notification",
			"type", n.Type, "recipient_id", n.RecipientID, "post_id", n.PostID, "err", err)
	}
}
