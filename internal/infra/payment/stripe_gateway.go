// Package payment implements the card payment gateway on Stripe.
package payment

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"flyingpot/config"
	"flyingpot/internal/domain/service"
)

type stripeGateway struct {
	api *client.API
}

// NewStripeGateway builds a PaymentGateway using the configured Stripe secret key.
func NewStripeGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	api := &client.API{}
	api.Init(cfg.Stripe.SecretKey, nil)

	return &stripeGateway{api: api}, nil
}

// CreatePaymentIntent registers a pending charge for the given amount in
// whole dollars and returns the client secret the storefront needs to
// confirm the card payment.
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, amountDollars int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
		// Stripe amounts are denominated in cents.
		Amount:   stripe.Int64(amountDollars * 100),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", errors.Wrap(err, "create payment intent")
	}

	return intent.ClientSecret, nil
}
