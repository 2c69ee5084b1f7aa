package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docchat-api/config"
	"docchat-api/internal/domain/user"
)

const proPrice = "price_pro_monthly"

func billingCfg() config.Stripe {
	return config.Stripe{
		SecretKey:  "sk_test",
		ProPriceID: proPrice,
		ReturnURL:  "https://app.example.com/billing",
	}
}

func strPtr(s string) *string        { return &s }
func timePtr(t time.Time) *time.Time { return &t }

func subscribedUser(periodEnd time.Time) *user.User {
	return &user.User{
		ID:                     "user-1",
		Email:                  "u1@example.com",
		StripeCustomerID:       strPtr("cus_123"),
		StripeSubscriptionID:   strPtr("sub_123"),
		StripePriceID:          strPtr(proPrice),
		StripeCurrentPeriodEnd: timePtr(periodEnd),
	}
}

func TestBillingService_CreateStripeSession(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name       string
		user       *user.User
		wantPortal bool
	}{
		{
			name:       "active subscription opens the portal",
			user:       subscribedUser(now.Add(20 * 24 * time.Hour)),
			wantPortal: true,
		},
		{
			name:       "period end inside the grace window still counts",
			user:       subscribedUser(now.Add(-12 * time.Hour)),
			wantPortal: true,
		},
		{
			name:       "lapsed past the grace window goes to checkout",
			user:       subscribedUser(now.Add(-48 * time.Hour)),
			wantPortal: false,
		},
		{
			name: "other price goes to checkout",
			user: &user.User{
				ID:                     "user-1",
				StripeCustomerID:       strPtr("cus_123"),
				StripePriceID:          strPtr("price_legacy"),
				StripeCurrentPeriodEnd: timePtr(now.Add(20 * 24 * time.Hour)),
			},
			wantPortal: false,
		},
		{
			name: "no period end on record goes to checkout",
			user: &user.User{
				ID:               "user-1",
				StripeCustomerID: strPtr("cus_123"),
				StripePriceID:    strPtr(proPrice),
			},
			wantPortal: false,
		},
		{
			name: "subscribed but no customer id falls back to checkout",
			user: &user.User{
				ID:                     "user-1",
				StripePriceID:          strPtr(proPrice),
				StripeCurrentPeriodEnd: timePtr(now.Add(20 * 24 * time.Hour)),
			},
			wantPortal: false,
		},
		{
			name:       "fresh user goes to checkout",
			user:       &user.User{ID: "user-1", Email: "u1@example.com"},
			wantPortal: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUserRepo{
				FetchUserByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
					return tt.user, nil
				},
			}
			provider := &fakeBillingProvider{
				CheckoutFunc: func(ctx context.Context, userID, priceID string) (string, error) {
					assert.Equal(t, "user-1", userID)
					assert.Equal(t, proPrice, priceID)
					return "https://checkout.stripe.com/c/abc", nil
				},
				PortalFunc: func(ctx context.Context, customerID string) (string, error) {
					assert.Equal(t, "cus_123", customerID)
					return "https://billing.stripe.com/p/abc", nil
				},
			}
			svc := NewBillingService(zap.NewNop(), provider, repo, billingCfg())

			url, err := svc.CreateStripeSession(context.Background(), "user-1")
			require.NoError(t, err)

			if tt.wantPortal {
				assert.Equal(t, "https://billing.stripe.com/p/abc", url)
			} else {
				assert.Equal(t, "https://checkout.stripe.com/c/abc", url)
			}
		})
	}
}

func TestBillingService_CreateStripeSession_Failures(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		repo     *fakeUserRepo
		provider *fakeBillingProvider
		wantErr  error
	}{
		{
			name: "no account for identity",
			repo: &fakeUserRepo{
				FetchUserByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
					return nil, nil
				},
			},
			wantErr: ErrNoBillingAccount,
		},
		{
			name: "lookup failure is normalized",
			repo: &fakeUserRepo{
				FetchUserByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
					return nil, errors.New("pg: connection reset")
				},
			},
			wantErr: ErrBillingLookup,
		},
		{
			name: "portal failure is normalized",
			repo: &fakeUserRepo{
				FetchUserByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
					return subscribedUser(now.Add(20 * 24 * time.Hour)), nil
				},
			},
			provider: &fakeBillingProvider{
				PortalFunc: func(ctx context.Context, customerID string) (string, error) {
					return "", errors.New("stripe: customer missing")
				},
			},
			wantErr: ErrPortalSession,
		},
		{
			name: "checkout failure is normalized",
			repo: &fakeUserRepo{
				FetchUserByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
					return &user.User{ID: "user-1"}, nil
				},
			},
			provider: &fakeBillingProvider{
				CheckoutFunc: func(ctx context.Context, userID, priceID string) (string, error) {
					return "", errors.New("stripe: price not found")
				},
			},
			wantErr: ErrCheckoutSession,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			provider := tt.provider
			if provider == nil {
				provider = &fakeBillingProvider{}
			}
			svc := NewBillingService(zap.NewNop(), provider, tt.repo, billingCfg())

			_, err := svc.CreateStripeSession(context.Background(), "user-1")
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
