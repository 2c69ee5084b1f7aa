package ports

import (
	"context"

	"docchat-api/internal/domain/identity"
)

// IdentityResolver maps a session token to a stable identity.
// A nil identity without error means the token resolved to no one.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (*identity.Identity, error)
}
