package service

import (
	"context"
	"errors"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/idx"
)

// ErrSelfFollow is returned when a user tries to follow themselves,
// regardless of whether the account exists.
var ErrSelfFollow = errors.New("cannot_follow_self")

type UserService struct {
	Store store.Store
}

// Follow adds the actor -> target edge. Idempotent: following an
// already-followed user is a no-op.
func (s *UserService) Follow(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	// Both endpoints must exist before an edge is recorded.
	if _, err := s.Store.Users().GetUserByID(ctx, actorID); err != nil {
		return err
	}
	if _, err := s.Store.Users().GetUserByID(ctx, targetID); err != nil {
		return err
	}

	return s.Store.Follows().Follow(ctx, actorID, targetID)
}

// Unfollow removes the actor -> target edge. Idempotent, and tolerant of
// the target account no longer existing: the edge row is pruned either way.
func (s *UserService) Unfollow(ctx context.Context, actorID, targetID string) error {
	if _, err := s.Store.Users().GetUserByID(ctx, actorID); err != nil {
		return err
	}
	return s.Store.Follows().Unfollow(ctx, actorID, targetID)
}

// Profile returns the public view of a user addressed by id or username.
// Email and password hash are never part of a profile.
func (s *UserService) Profile(ctx context.Context, identifier string) (domain.Profile, error) {
	var (
		user domain.User
		err  error
	)
	if idx.IsValid(identifier) {
		user, err = s.Store.Users().GetUserByID(ctx, identifier)
	} else {
		user, err = s.Store.Users().GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		return domain.Profile{}, err
	}

	followers, following, err := s.Store.Follows().Counts(ctx, user.ID)
	if err != nil {
		return domain.Profile{}, err
	}

	return domain.Profile{
		ID:             user.ID,
		Username:       user.Username,
		FollowersCount: followers,
		FollowingCount: following,
		CreatedAt:      user.CreatedAt,
	}, nil
}
