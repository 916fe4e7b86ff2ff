package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/bailanysta/api/internal/feed/domain"
	"github.com/bailanysta/api/internal/feed/store"
	"github.com/bailanysta/api/pkg/cryptox"
	"github.com/bailanysta/api/pkg/idx"
	"github.com/bailanysta/api/pkg/jwtx"
	"github.com/bailanysta/api/pkg/slogx"
)

// MinPasswordLength is the floor for new account passwords.
const MinPasswordLength = 6

var (
	// ErrInvalidCredentials is returned for BOTH unknown identifier and
	// wrong password so a caller can't probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	ErrMissingFields = errors.New("missing_fields")
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrShortPassword = errors.New("password_too_short")
)

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Register creates a new account. The password is hashed before it touches
// the store; the returned user carries public fields plus the hash, which
// handlers must not serialize.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return domain.User{}, ErrMissingFields
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrShortPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Duplicate username or email surfaces as store.ErrAlreadyExists from
	// the unique constraints; no pre-check read, so no race window.
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login authenticates by username or email and returns a signed bearer
// token alongside the user.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return "", domain.User{}, ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return "", domain.User{}, ErrInvalidCredentials
		}
		return "", domain.User{}, err
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	token, err := s.Signer.Sign(jwtx.NewClaims(user.ID, user.Username, s.Issuer, ttl, time.Now().UTC()))
	if err != nil {
		return "", domain.User{}, err
	}

	return token, user, nil
}

// Verify resolves the authenticated user behind a token subject. Returns
// store.ErrNotFound when the account vanished after issuance.
func (s *AuthService) Verify(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
