package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/idx"
	"github.com/stretchr/testify/require"
)

func insertNotification(t *testing.T, st store.Store, recipientID, senderID, postID string, read bool) domain.Notification {
	t.Helper()

	n := domain.Notification{
		ID:          idx.New().String(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        domain.NotificationLike,
		PostID:      postID,
		Read:        read,
	}
	require.NoError(t, st.Notifications().CreateNotification(context.Background(), n))
	return n
}

func TestNotificationList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	notifications := &service.NotificationService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")
	post := createPost(t, st, alice.ID, "popular")

	t.Run("empty inbox", func(t *testing.T) {
		got, err := notifications.List(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})

	t.Run("newest first with sender resolved", func(t *testing.T) {
		first := insertNotification(t, st, alice.ID, bob.ID, post.ID, false)
		second := insertNotification(t, st, alice.ID, bob.ID, post.ID, false)

		got, err := notifications.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, second.ID, got[0].ID)
		require.Equal(t, first.ID, got[1].ID)
		require.Equal(t, "bob", got[0].SenderUsername)
	})

	t.Run("capped at the list limit", func(t *testing.T) {
		for i := 0; i < service.NotificationListLimit+5; i++ {
			insertNotification(t, st, alice.ID, bob.ID, post.ID, false)
		}

		got, err := notifications.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, got, service.NotificationListLimit)
	})

	t.Run("scoped to the recipient", func(t *testing.T) {
		got, err := notifications.List(ctx, bob.ID)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestNotificationMarkRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	notifications := &service.NotificationService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")
	post := createPost(t, st, alice.ID, "popular")
	n := insertNotification(t, st, alice.ID, bob.ID, post.ID, false)

	t.Run("recipient marks it read", func(t *testing.T) {
		got, err := notifications.MarkRead(ctx, alice.ID, n.ID)
		require.NoError(t, err)
		require.True(t, got.Read)

		stored, err := st.Notifications().GetNotificationByID(ctx, n.ID)
		require.NoError(t, err)
		require.True(t, stored.Read)
	})

	t.Run("marking again is a no-op", func(t *testing.T) {
		got, err := notifications.MarkRead(ctx, alice.ID, n.ID)
		require.NoError(t, err)
		require.True(t, got.Read)
	})

	t.Run("only the recipient may mark", func(t *testing.T) {
		_, err := notifications.MarkRead(ctx, bob.ID, n.ID)
		require.ErrorIs(t, err, service.ErrNotOwner)
	})

	t.Run("unknown notification", func(t *testing.T) {
		_, err := notifications.MarkRead(ctx, alice.ID, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestNotificationMarkAllRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	notifications := &service.NotificationService{Store: st}

	alice := registerUser(t, st, "alice")
	bob := registerUser(t, st, "bob")
	post := createPost(t, st, alice.ID, "popular")

	for i := 0; i < 3; i++ {
		insertNotification(t, st, alice.ID, bob.ID, post.ID, false)
	}
	insertNotification(t, st, alice.ID, bob.ID, post.ID, true)
	insertNotification(t, st, alice.ID, bob.ID, post.ID, true)

	count, err := notifications.MarkAllRead(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	got, err := notifications.List(ctx, alice.ID)
	require.NoError(t, err)
	for i, n := range got {
		require.True(t, n.Read, fmt.Sprintf("notification %d unread", i))
	}

	count, err = notifications.MarkAllRead(ctx, alice.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}
