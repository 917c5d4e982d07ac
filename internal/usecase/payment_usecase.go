package usecase

import "context"

// PurchaseEmailInput defines one receipt request as the storefront sends it.
type PurchaseEmailInput struct {
	Email     string
	StoreName string
	CCName    string
	CartTotal float64
	Items     []UpdateCartItemInput
	Timestamp string
}

// PaymentUsecase brokers payment intents and the mail passthrough routes.
type PaymentUsecase interface {
	// CreatePaymentIntent registers a pending charge for the given amount
	// in whole dollars and returns the gateway client secret.
	CreatePaymentIntent(ctx context.Context, amountDollars int64) (string, error)

	// SendPurchaseEmail mails a receipt as submitted by the storefront.
	SendPurchaseEmail(ctx context.Context, input PurchaseEmailInput) error

	// SendVerificationCode mails a signup verification code.
	SendVerificationCode(ctx context.Context, email, code string) error
}
