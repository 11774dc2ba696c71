package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an issued token.
const DefaultTokenTTL = 30 * time.Minute

// Token verification failures. Callers must not expose which one occurred.
var (
	ErrExpiredToken   = errors.New("token expired")
	ErrBadSignature   = errors.New("token signature invalid")
	ErrMalformedToken = errors.New("token malformed")
)

// TokenIssuer signs and verifies HS256 bearer tokens carrying a subject and expiry.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an issuer. The secret must be non-empty.
func NewTokenIssuer(secret []byte, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// WithClock returns a copy of the issuer that reads time from now.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	c := *i
	c.now = now
	return &c
}

// TTL returns the configured token lifetime.
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue returns a signed token for subjectID and its absolute expiry.
func (i *TokenIssuer) Issue(subjectID string) (string, time.Time, error) {
	if subjectID == "" {
		return "", time.Time{}, errors.New("token subject is empty")
	}

	now := i.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	// exp is encoded in whole seconds; report the instant the token really expires.
	return signed, claims.ExpiresAt.Time, nil
}

// Verify checks the signature and expiry of tokenString and returns its subject.
// The returned error wraps ErrBadSignature, ErrExpiredToken or ErrMalformedToken.
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrMalformedToken
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrExpiredToken
		default:
			return "", fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}

	if claims.Subject == "" {
		return "", ErrMalformedToken
	}

	return claims.Subject, nil
}
