package service_test

import (
	"context"
	"testing"

	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	users := &service.UserService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")

	t.Run("records the edge on both sides", func(t *testing.T) {
		require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))

		following, err := st.Follows().Following(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, []string{bob.ID}, following)

		bobFollowers, bobFollowing, err := st.Follows().Counts(ctx, bob.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, bobFollowers)
		require.EqualValues(t, 0, bobFollowing)
	})

	t.Run("is idempotent", func(t *testing.T) {
		require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))
		require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))

		followers, _, err := st.Follows().Counts(ctx, bob.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, followers)
	})

	t.Run("self-follow always fails", func(t *testing.T) {
		require.ErrorIs(t, users.Follow(ctx, alice.ID, alice.ID), service.ErrSelfFollow)

		// Even for an id that doesn't exist.
		ghost := "01ARZ3NDEKTSV4RRFFQ69G5FAV"
		require.ErrorIs(t, users.Follow(ctx, ghost, ghost), service.ErrSelfFollow)
	})

	t.Run("absent users are not found", func(t *testing.T) {
		ghost := "01ARZ3NDEKTSV4RRFFQ69G5FAV"
		require.ErrorIs(t, users.Follow(ctx, alice.ID, ghost), store.ErrNotFound)
		require.ErrorIs(t, users.Follow(ctx, ghost, alice.ID), store.ErrNotFound)
	})
}

func TestUnfollowRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	users := &service.UserService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")

	// follow then unfollow restores the pre-follow edge state
	require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, users.Unfollow(ctx, alice.ID, bob.ID))

	following, err := st.Follows().Following(ctx, alice.ID)
	require.NoError(t, err)
	require.Empty(t, following)

	followers, _, err := st.Follows().Counts(ctx, bob.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, followers)

	// unfollowing again is a no-op, not an error
	require.NoError(t, users.Unfollow(ctx, alice.ID, bob.ID))

	// unfollowing someone who was never followed is also fine
	require.NoError(t, users.Unfollow(ctx, bob.ID, alice.ID))
}

func TestProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	users := &service.UserService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")
	require.NoError(t, users.Follow(ctx, bob.ID, alice.ID))

	t.Run("by id", func(t *testing.T) {
		p, err := users.Profile(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "alice", p.Username)
		require.EqualValues(t, 1, p.FollowersCount)
		require.EqualValues(t, 0, p.FollowingCount)
	})

	t.Run("by username", func(t *testing.T) {
		p, err := users.Profile(ctx, "bob")
		require.NoError(t, err)
		require.Equal(t, bob.ID, p.ID)
		require.EqualValues(t, 1, p.FollowingCount)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := users.Profile(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
