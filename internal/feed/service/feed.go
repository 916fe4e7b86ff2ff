package service

import (
	"context"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/store"
)

// FeedService composes personalized feeds from the follow graph.
type FeedService struct {
	Store store.Store
}

// Feed returns posts authored by the viewer and everyone they follow,
// newest-first, with author usernames, likes and comments resolved.
// The result is unbounded; pagination is a known, documented limit.
func (s *FeedService) Feed(ctx context.Context, viewerID string) ([]domain.Post, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, viewerID); err != nil {
		return nil, err
	}

	posts, err := s.Store.Posts().ListFeed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}

// UserPosts is the public listing of one author's posts, newest-first,
// independent of any viewer's follow relationship.
func (s *FeedService) UserPosts(ctx context.Context, authorID string) ([]domain.Post, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, authorID); err != nil {
		return nil, err
	}

	posts, err := s.Store.Posts().ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []domain.Post{}
	}
	return posts, nil
}
