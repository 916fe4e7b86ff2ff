package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHS256([]byte("test-secret"), "feed-test")
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := NewClaims("user-123", "alice", "feed-test", DefaultTokenTTL, now)

	raw, err := h.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.NoError(t, got.ValidateExpiry())
	require.WithinDuration(t, now.Add(DefaultTokenTTL), got.ExpiresAt.Time, time.Second)
}

func TestHS256RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a, err := NewHS256([]byte("secret-a"), "")
	require.NoError(t, err)
	b, err := NewHS256([]byte("secret-b"), "")
	require.NoError(t, err)

	raw, err := a.Sign(NewClaims("u", "", "", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = b.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256RejectsExpired(t *testing.T) {
	t.Parallel()

	h, err := NewHS256([]byte("secret"), "")
	require.NoError(t, err)

	issued := time.Now().UTC().Add(-2 * time.Hour)
	raw, err := h.Sign(NewClaims("u", "", "", time.Hour, issued))
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256RejectsGarbageAndIssuerMismatch(t *testing.T) {
	t.Parallel()

	h, err := NewHS256([]byte("secret"), "expected-issuer")
	require.NoError(t, err)

	_, err = h.Verify("definitely.not.a.jwt")
	require.ErrorIs(t, err, ErrMalformed)

	raw, err := h.Sign(NewClaims("u", "", "other-issuer", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestNewHS256RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewHS256(nil, "x")
	require.ErrorIs(t, err, ErrEmptyKey)
}
