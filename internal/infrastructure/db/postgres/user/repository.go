package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "docchat-api/internal/domain/user"
	"docchat-api/internal/infrastructure/db/postgres"
)

// ErrUserAlreadyExists signals a duplicate-key insert. Concurrent first-time
// callers of the same identity treat it as a harmless no-op.
var ErrUserAlreadyExists = errors.New("user already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, id string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, id).Scan(
		&u.ID,
		&u.Email,

		&u.StripeCustomerID,
		&u.StripeSubscriptionID,
		&u.StripePriceID,
		&u.StripeCurrentPeriodEnd,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(ctx, InsertUser, req.ID, req.Email).Scan(
		&u.ID,
		&u.Email,

		&u.StripeCustomerID,
		&u.StripeSubscriptionID,
		&u.StripePriceID,
		&u.StripeCurrentPeriodEnd,

		&u.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}
