package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"docchat-api/config"
	"docchat-api/internal/application/ports"
	domain "docchat-api/internal/domain/user"
)

// Billing failures are normalized at this boundary: callers see one of the
// sentinels below, never the provider's own error type or detail.
var (
	ErrNoBillingAccount = errors.New("no billing account")
	ErrBillingLookup    = errors.New("failed to load billing account")
	ErrPortalSession    = errors.New("failed to create billing portal session")
	ErrCheckoutSession  = errors.New("failed to create checkout session")
)

// Webhook reconciliation can lag the provider; a period end inside the
// grace window still counts as subscribed.
const periodEndGrace = 24 * time.Hour

type BillingService struct {
	logger         *zap.Logger
	billing        ports.BillingProvider
	userRepository domain.Repository
	cfg            config.Stripe
}

func NewBillingService(
	logger *zap.Logger,
	billing ports.BillingProvider,
	userRepository domain.Repository,
	cfg config.Stripe,
) ports.BillingService {
	return &BillingService{
		logger:         logger,
		billing:        billing,
		userRepository: userRepository,
		cfg:            cfg,
	}
}

func (bs *BillingService) CreateStripeSession(ctx context.Context, userID string) (string, error) {
	u, err := bs.userRepository.FetchUserByID(ctx, userID)
	if err != nil {
		bs.logger.Error("billing account lookup failed", zap.Error(err))
		return "", ErrBillingLookup
	}
	if u == nil {
		return "", ErrNoBillingAccount
	}

	if bs.isSubscribed(u) && u.StripeCustomerID != nil {
		url, err := bs.billing.CreateBillingPortalSession(ctx, *u.StripeCustomerID)
		if err != nil {
			bs.logger.Error("billing portal session failed", zap.Error(err))
			return "", ErrPortalSession
		}
		return url, nil
	}

	url, err := bs.billing.CreateCheckoutSession(ctx, u.ID, bs.cfg.ProPriceID)
	if err != nil {
		bs.logger.Error("checkout session failed", zap.Error(err))
		return "", ErrCheckoutSession
	}

	return url, nil
}

// isSubscribed reconciles local state with the Pro plan: the stored price
// must match and the paid period must not have lapsed past the grace window.
func (bs *BillingService) isSubscribed(u *domain.User) bool {
	if u.StripePriceID == nil || *u.StripePriceID != bs.cfg.ProPriceID {
		return false
	}
	if u.StripeCurrentPeriodEnd == nil {
		return false
	}
	return u.StripeCurrentPeriodEnd.Add(periodEndGrace).After(time.Now())
}
