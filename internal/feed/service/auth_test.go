package service_test

import (
	"context"
	"testing"

	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		user, err := auth.Register(ctx, "alice", "a@x.com", "pw123456")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice", user.Username)
		require.NotEqual(t, "pw123456", user.PasswordHash)
		require.Contains(t, user.PasswordHash, "$argon2id$")

		// The returned user is what the register response serializes;
		// timestamps must already be set, not zero values.
		require.False(t, user.CreatedAt.IsZero())
		require.False(t, user.UpdatedAt.IsZero())
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := auth.Register(ctx, "alice", "other@x.com", "pw123456")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := auth.Register(ctx, "someone", "a@x.com", "pw123456")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := auth.Register(ctx, "", "b@x.com", "pw123456")
		require.ErrorIs(t, err, service.ErrMissingFields)

		_, err = auth.Register(ctx, "bob", "not-an-email", "pw123456")
		require.ErrorIs(t, err, service.ErrInvalidEmail)

		_, err = auth.Register(ctx, "bob", "b@x.com", "pw")
		require.ErrorIs(t, err, service.ErrShortPassword)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)

	registered, err := auth.Register(ctx, "alice", "a@x.com", "pw123456")
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		token, user, err := auth.Login(ctx, "alice", "pw123456")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("by email", func(t *testing.T) {
		token, _, err := auth.Login(ctx, "a@x.com", "pw123456")
		require.NoError(t, err)
		require.NotEmpty(t, token)
	})

	t.Run("token is verifiable and carries the user id", func(t *testing.T) {
		token, _, err := auth.Login(ctx, "alice", "pw123456")
		require.NoError(t, err)

		verifier, err := jwtx.NewHS256([]byte("test-secret"), "feed-test")
		require.NoError(t, err)

		claims, err := verifier.Verify(token)
		require.NoError(t, err)
		require.Equal(t, registered.ID, claims.Subject)
		require.Equal(t, "alice", claims.Username)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		_, _, errWrongPw := auth.Login(ctx, "alice", "wrong-password")
		require.ErrorIs(t, errWrongPw, service.ErrInvalidCredentials)

		_, _, errNoUser := auth.Login(ctx, "nobody", "pw123456")
		require.ErrorIs(t, errNoUser, service.ErrInvalidCredentials)

		// Same sentinel, same message: nothing reveals which part failed.
		require.Equal(t, errWrongPw.Error(), errNoUser.Error())
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	auth := newAuthService(t, st)

	registered, err := auth.Register(ctx, "alice", "a@x.com", "pw123456")
	require.NoError(t, err)

	user, err := auth.Verify(ctx, registered.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = auth.Verify(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	require.ErrorIs(t, err, store.ErrNotFound)
}
