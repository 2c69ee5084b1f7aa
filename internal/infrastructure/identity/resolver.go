package identity

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	domain "docchat-api/internal/domain/identity"
)

// Resolver maps an opaque session token issued by the identity provider to
// a stable identity. It never manages sessions itself.
type Resolver struct {
	jwtSecret string
}

func New(jwtSecret string) *Resolver { return &Resolver{jwtSecret: jwtSecret} }

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (r *Resolver) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, nil
	}

	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(r.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	c, ok := parsed.Claims.(*claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return &domain.Identity{
		ID:    c.Subject,
		Email: c.Email,
	}, nil
}
