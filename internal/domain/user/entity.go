package user

import (
	"time"
)

type (
	// User is created lazily on the first authenticated call of an identity.
	// The stripe fields are written by the payment provider's webhook
	// pipeline and only read here for subscription-state reconciliation.
	User struct {
		ID    string
		Email string

		StripeCustomerID       *string
		StripeSubscriptionID   *string
		StripePriceID          *string
		StripeCurrentPeriodEnd *time.Time

		CreatedAt time.Time
	}
	Users []*User
)
