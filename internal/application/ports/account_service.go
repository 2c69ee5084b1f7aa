package ports

import (
	"context"

	"docchat-api/internal/domain/identity"
)

type AccountService interface {
	// SyncAccount makes sure a User row exists for the resolved identity.
	// Idempotent: N calls for the same identity leave exactly one row.
	SyncAccount(ctx context.Context, ident *identity.Identity) error
}
