// Package mail implements outbound email delivery over SMTP.
package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"

	"flyingpot/config"
	"flyingpot/internal/domain/service"
)

type smtpMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer builds a MailService backed by the configured SMTP account.
func NewSMTPMailer(cfg *config.Config) (service.MailService, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp config must be provided")
	}

	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.Username),
		gomail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{client: client, from: cfg.SMTP.From}, nil
}

// SendVerificationCode mails a signup verification code.
func (m *smtpMailer) SendVerificationCode(ctx context.Context, email, code string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "set from address")
	}
	if err := msg.To(email); err != nil {
		return errors.Wrap(err, "set to address")
	}

	msg.Subject("Your verification code")
	msg.SetBodyString(gomail.TypeTextPlain,
		fmt.Sprintf("Your verification code is %s. Enter it to finish creating your account.", code))

	return errors.Wrap(m.client.DialAndSendWithContext(ctx, msg), "send verification mail")
}

// SendPurchaseReceipt mails a post-checkout receipt for one vendor grouping.
func (m *smtpMailer) SendPurchaseReceipt(ctx context.Context, receipt service.PurchaseReceipt) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "set from address")
	}
	if err := msg.To(receipt.Email); err != nil {
		return errors.Wrap(err, "set to address")
	}

	msg.Subject(fmt.Sprintf("Your order from %s", receipt.StoreName))
	msg.SetBodyString(gomail.TypeTextPlain, formatReceiptBody(receipt))

	return errors.Wrap(m.client.DialAndSendWithContext(ctx, msg), "send receipt mail")
}

func formatReceiptBody(receipt service.PurchaseReceipt) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Thanks for your order, %s!\n\n", receipt.CCName)
	fmt.Fprintf(&sb, "Order placed at %s with %s:\n\n", receipt.Timestamp, receipt.StoreName)

	for _, item := range receipt.Items {
		fmt.Fprintf(&sb, "  %dx %s - $%.2f\n", item.Quantity, item.ItemName, item.Price)
		if item.Notes != "" {
			fmt.Fprintf(&sb, "     note: %s\n", item.Notes)
		}
	}

	fmt.Fprintf(&sb, "\nTotal: $%.2f\n", receipt.CartTotal)

	return sb.String()
}
