package user

import (
	domain "docchat-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:    model.ID,
		Email: model.Email,

		StripeCustomerID:       model.StripeCustomerID,
		StripeSubscriptionID:   model.StripeSubscriptionID,
		StripePriceID:          model.StripePriceID,
		StripeCurrentPeriodEnd: model.StripeCurrentPeriodEnd,

		CreatedAt: model.CreatedAt,
	}

	return u
}
