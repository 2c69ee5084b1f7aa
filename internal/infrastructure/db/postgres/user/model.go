package user

import (
	"time"
)

type (
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
