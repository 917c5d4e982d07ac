package service

import (
	"context"

	"flyingpot/internal/domain/entity"
)

// PurchaseReceipt carries everything the purchase email template needs for
// one vendor's share of a checkout.
type PurchaseReceipt struct {
	Email     string
	StoreName string
	CCName    string
	CartTotal float64
	Items     []entity.CartItem
	Timestamp string
}

// MailService defines the interface for outbound email delivery.
type MailService interface {
	// SendVerificationCode mails a signup verification code.
	SendVerificationCode(ctx context.Context, email, code string) error

	// SendPurchaseReceipt mails a post-checkout receipt for one vendor grouping.
	SendPurchaseReceipt(ctx context.Context, receipt PurchaseReceipt) error
}
