package ports

import "context"

// BillingProvider is the narrow contract against the hosted payment
// provider: either open the management portal of an existing customer or
// start a checkout for a recurring price.
type BillingProvider interface {
	CreateCheckoutSession(ctx context.Context, userID, priceID string) (string, error)
	CreateBillingPortalSession(ctx context.Context, customerID string) (string, error)
}
