package jwtverify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainerrors "bazaar/contexts/identity-access/session-service/domain/errors"
	"bazaar/contexts/identity-access/session-service/ports"

	"github.com/golang-jwt/jwt/v5"
)

// Provider verifies identity-provider access tokens locally against a
// shared HMAC secret instead of calling the provider on every request.
// The token subject is the provider's user ID; email and name travel in
// the standard profile claims.
type Provider struct {
	secret   []byte
	issuer   string
	audience string
}

func NewProvider(secret []byte, issuer string, audience string) *Provider {
	return &Provider{secret: secret, issuer: issuer, audience: audience}
}

type accessClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (p *Provider) Authenticate(_ context.Context, token string) (ports.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return ports.Identity{}, domainerrors.ErrUnauthenticated
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if p.issuer != "" {
		options = append(options, jwt.WithIssuer(p.issuer))
	}
	if p.audience != "" {
		options = append(options, jwt.WithAudience(p.audience))
	}

	claims := accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Identity{}, domainerrors.ErrTokenExpired
		}
		return ports.Identity{}, fmt.Errorf("%w: %v", domainerrors.ErrUnauthenticated, err)
	}
	if !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return ports.Identity{}, domainerrors.ErrUnauthenticated
	}

	return ports.Identity{
		UserID:      claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}, nil
}
