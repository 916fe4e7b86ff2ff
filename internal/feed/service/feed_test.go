package service_test

import (
	"context"
	"testing"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/stretchr/testify/require"
)

func contents(posts []domain.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Content)
	}
	return out
}

func TestFeedComposition(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	users := &service.UserService{Store: st}
	feed := &service.FeedService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")
	carol := registerUser(t, st, "carol")

	createPost(t, st, alice.ID, "alice-1")
	createPost(t, st, bob.ID, "bob-1")
	createPost(t, st, carol.ID, "carol-1")
	createPost(t, st, bob.ID, "bob-2")

	require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))

	t.Run("feed is self plus following, nothing else", func(t *testing.T) {
		posts, err := feed.Feed(ctx, alice.ID)
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"alice-1", "bob-1", "bob-2"}, contents(posts))
		require.NotContains(t, contents(posts), "carol-1")
	})

	t.Run("feed is newest-first", func(t *testing.T) {
		posts, err := feed.Feed(ctx, alice.ID)
		require.NoError(t, err)
		for i := 1; i < len(posts); i++ {
			require.False(t, posts[i-1].CreatedAt.Before(posts[i].CreatedAt))
		}
	})

	t.Run("non-follower sees only their own", func(t *testing.T) {
		posts, err := feed.Feed(ctx, carol.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"carol-1"}, contents(posts))
	})

	t.Run("unknown viewer", func(t *testing.T) {
		_, err := feed.Feed(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

// The register/follow/unfollow walkthrough: bob's post appears in alice's
// feed exactly while she follows him.
func TestFeedFollowUnfollowScenario(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)
	users := &service.UserService{Store: st}
	posts := &service.PostService{Store: st}
	feed := &service.FeedService{Store: st}

	alice, err := auth.Register(ctx, "alice", "a@x.com", "pw123456")
	require.NoError(t, err)
	bob, err := auth.Register(ctx, "bob", "b@x.com", "pw123456")
	require.NoError(t, err)

	_, err = posts.Create(ctx, bob.ID, "hello")
	require.NoError(t, err)

	require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))
	got, err := feed.Feed(ctx, alice.ID)
	require.NoError(t, err)
	require.Contains(t, contents(got), "hello")

	require.NoError(t, users.Unfollow(ctx, alice.ID, bob.ID))
	got, err = feed.Feed(ctx, alice.ID)
	require.NoError(t, err)
	require.NotContains(t, contents(got), "hello")
}

func TestUserPosts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	feed := &service.FeedService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")

	createPost(t, st, alice.ID, "mine-1")
	createPost(t, st, bob.ID, "his-1")
	createPost(t, st, alice.ID, "mine-2")

	// Public listing: no follow relationship required.
	posts, err := feed.UserPosts(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"mine-2", "mine-1"}, contents(posts))

	empty, err := feed.UserPosts(ctx, bob.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"his-1"}, contents(empty))
}
