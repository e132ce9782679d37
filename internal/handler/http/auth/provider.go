// Package auth issues and validates the JWT bearer tokens guarding the
// dashboard API. Credentials come from the environment; there is a single
// operator account.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum accepted JWT_SECRET length. HS256 with a
// short secret is brute-forceable offline.
const minSecretLength = 32

// tokenTTL is how long an issued token stays valid.
const tokenTTL = time.Hour

// Provider validates operator credentials and signs access tokens.
type Provider struct {
	username string
	password string
	secret   []byte
}

// NewProviderFromEnv builds a provider from ADMIN_USER, ADMIN_USER_PASSWORD,
// and JWT_SECRET. All three must be set, and the secret must be at least
// minSecretLength bytes.
func NewProviderFromEnv() (*Provider, error) {
	username := os.Getenv("ADMIN_USER")
	password := os.Getenv("ADMIN_USER_PASSWORD")
	secret := os.Getenv("JWT_SECRET")

	if username == "" || password == "" {
		return nil, errors.New("ADMIN_USER and ADMIN_USER_PASSWORD must be set")
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d characters", minSecretLength)
	}
	return &Provider{
		username: username,
		password: password,
		secret:   []byte(secret),
	}, nil
}

// ValidateCredentials checks the supplied credentials against the configured
// operator account. Comparison is constant-time to prevent timing attacks.
func (p *Provider) ValidateCredentials(username, password string) error {
	if username == "" || password == "" {
		return errors.New("credentials must not be empty")
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(p.username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(p.password)) == 1
	if !userMatch || !passMatch {
		return errors.New("invalid credentials")
	}
	return nil
}

// IssueToken signs a fresh HS256 token for the given subject.
func (p *Provider) IssueToken(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a signed token, returning its subject.
func (p *Provider) ValidateToken(tokenString string) (string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", errors.New("invalid sub claim")
	}
	return sub, nil
}
