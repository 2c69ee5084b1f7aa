package stripe

import (
	"context"

	stripesdk "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"

	"docchat-api/config"
)

// Client wraps the hosted payment provider. Constructed once; the underlying
// API client is safe for concurrent use.
type Client struct {
	logger *zap.Logger
	api    *client.API
	cfg    config.Stripe
}

func New(logger *zap.Logger, cfg config.Stripe) *Client {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &Client{
		logger: logger,
		api:    api,
		cfg:    cfg,
	}
}

// CreateCheckoutSession starts a subscription checkout for the named
// recurring price, tagged with the caller's id for later reconciliation by
// the webhook pipeline.
func (c *Client) CreateCheckoutSession(ctx context.Context, userID, priceID string) (string, error) {
	params := &stripesdk.CheckoutSessionParams{
		Params: stripesdk.Params{
			Context: ctx,
		},
		SuccessURL:         stripesdk.String(c.cfg.ReturnURL),
		CancelURL:          stripesdk.String(c.cfg.ReturnURL),
		Mode:               stripesdk.String(string(stripesdk.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripesdk.StringSlice([]string{"card"}),
		LineItems: []*stripesdk.CheckoutSessionLineItemParams{
			{
				Price:    stripesdk.String(priceID),
				Quantity: stripesdk.Int64(1),
			},
		},
	}
	params.AddMetadata("userId", userID)

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", err
	}

	return sess.URL, nil
}

// CreateBillingPortalSession opens the management portal for an existing
// payment-provider customer.
func (c *Client) CreateBillingPortalSession(ctx context.Context, customerID string) (string, error) {
	params := &stripesdk.BillingPortalSessionParams{
		Params: stripesdk.Params{
			Context: ctx,
		},
		Customer:  stripesdk.String(customerID),
		ReturnURL: stripesdk.String(c.cfg.ReturnURL),
	}

	sess, err := c.api.BillingPortalSessions.New(params)
	if err != nil {
		return "", err
	}

	return sess.URL, nil
}
