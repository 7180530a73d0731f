// Package auth verifies the session tokens issued by the identity provider.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jvedigdev/ai-job-ace/internal/domain"
)

// SessionVerifier validates HS256 session tokens. The subject claim is the
// identity provider's user id, the same id the webhook stores on profiles.
type SessionVerifier struct {
	secret []byte
	issuer string
}

// NewSessionVerifier creates a verifier. An empty issuer disables the
// issuer check.
func NewSessionVerifier(secret, issuer string) *SessionVerifier {
	return &SessionVerifier{secret: []byte(secret), issuer: issuer}
}

// sessionClaims mirrors the provider's JWT template. Email is informational;
// the profile row is authoritative.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Verify parses tokenString and returns the external user id.
// All failures wrap domain.ErrUnauthorized.
func (v *SessionVerifier) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token is empty: %w", domain.ErrUnauthorized)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(30 * time.Second),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("parse token: %w: %w", domain.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject: %w", domain.ErrUnauthorized)
	}

	return claims.Subject, nil
}

// IssueToken signs a session token for externalUserID. The provider issues
// real tokens; this is used by local tooling and tests.
func (v *SessionVerifier) IssueToken(externalUserID string, ttl time.Duration) (string, error) {
	if externalUserID == "" {
		return "", errors.New("issue token: empty subject")
	}

	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   externalUserID,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
