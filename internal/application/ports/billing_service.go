package ports

import (
	"context"
)

type BillingService interface {
	// CreateStripeSession returns a billing-portal URL for subscribed users
	// with a payment customer on file, a checkout URL otherwise.
	CreateStripeSession(ctx context.Context, userID string) (string, error)
}
