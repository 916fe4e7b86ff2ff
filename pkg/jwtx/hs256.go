package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can sign Claims into a compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a compact JWT and returns the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrEmptyKey    = errors.New("jwtx: empty signing secret")
)

// HS256 signs and verifies tokens with a single shared secret. It implements
// both Signer and Verifier; there is no key rotation, the secret is the
// deployment's identity.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds an HS256 signer/verifier. The secret must be non-empty.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) == 0 {
		return nil, ErrEmptyKey
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

func (h *HS256) Alg() string { return "HS256" }

func (h *HS256) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(h.secret)
}

// Verify parses and checks signature, algorithm and issuer. Expiry is
// validated with leeway disabled; callers that want clock-skew tolerance can
// re-check via Claims.ValidateExpiry.
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims

	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return h.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, ErrMalformed
		}
	}
	if !tok.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	return claims, nil
}

// compile-time interface checks
var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

// helper for tests and housekeeping: how long until the claims expire.
func (c *Claims) TTLRemaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
