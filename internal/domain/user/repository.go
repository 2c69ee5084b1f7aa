package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
}
