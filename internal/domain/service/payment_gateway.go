package service

import "context"

// PaymentGateway defines the interface for the external card-processing
// integration. The backend only brokers payment intents; the storefront
// completes the charge with the returned client secret.
type PaymentGateway interface {
	// CreatePaymentIntent registers a pending charge for the given amount in
	// whole dollars and returns the gateway's client secret.
	CreatePaymentIntent(ctx context.Context, amountDollars int64) (clientSecret string, err error)
}
