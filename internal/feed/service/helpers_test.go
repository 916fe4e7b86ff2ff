package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/service"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/internal/feed/store/drivers/sqlite"
	"github.com/bailanysta/api/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newAuthService(t *testing.T, st store.Store) *service.AuthService {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("test-secret"), "feed-test")
	require.NoError(t, err)

	return &service.AuthService{
		Store:    st,
		Signer:   signer,
		Issuer:   "feed-test",
		TokenTTL: time.Hour,
	}
}

// registerUser creates an account through the real registration path so
// every test user has a valid hash and unique constraints are exercised.
func registerUser(t *testing.T, st store.Store, username string) domain.User {
	t.Helper()

	auth := newAuthService(t, st)
	user, err := auth.Register(context.Background(), username, username+"@example.com", "pw123456")
	require.NoError(t, err)
	return user
}

func createPost(t *testing.T, st store.Store, authorID, content string) domain.Post {
	t.Helper()

	posts := &service.PostService{Store: st}
	post, err := posts.Create(context.Background(), authorID, content)
	require.NoError(t, err)
	return post
}
