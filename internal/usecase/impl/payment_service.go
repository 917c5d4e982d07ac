package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "flyingpot/internal/delivery/context"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/service"
	"flyingpot/internal/usecase"
)

// paymentService implements the PaymentUsecase interface. It is a thin
// broker: card charges complete on the storefront with the client secret,
// and mail passthroughs forward whatever the storefront composed.
type paymentService struct {
	gateway     service.PaymentGateway
	mailService service.MailService
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for paymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway     service.PaymentGateway
	MailService service.MailService
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		gateway:     params.Gateway,
		mailService: params.MailService,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePaymentIntent registers a pending charge for the given amount in
// whole dollars and returns the gateway client secret.
func (srv *paymentService) CreatePaymentIntent(ctx context.Context, amountDollars int64) (string, error) {
	if amountDollars <= 0 {
		return "", domainerrors.ErrValidationFailed.WithDetails("amount must be a positive integer")
	}

	clientSecret, err := srv.gateway.CreatePaymentIntent(ctx, amountDollars)
	if err != nil {
		srv.log(ctx).Error("Failed to create payment intent", slog.Int64("amount", amountDollars), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to create payment intent")
	}

	return clientSecret, nil
}

// SendPurchaseEmail mails a receipt as submitted by the storefront.
func (srv *paymentService) SendPurchaseEmail(ctx context.Context, input usecase.PurchaseEmailInput) error {
	receipt := service.PurchaseReceipt{
		Email:     input.Email,
		StoreName: input.StoreName,
		CCName:    input.CCName,
		CartTotal: input.CartTotal,
		Timestamp: input.Timestamp,
	}
	for _, it := range input.Items {
		receipt.Items = append(receipt.Items, cartItemFromInput(it))
	}

	if err := srv.mailService.SendPurchaseReceipt(ctx, receipt); err != nil {
		srv.log(ctx).Error("Failed to send purchase email", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send purchase email")
	}

	return nil
}

// SendVerificationCode mails a signup verification code.
func (srv *paymentService) SendVerificationCode(ctx context.Context, email, code string) error {
	if err := srv.mailService.SendVerificationCode(ctx, email, code); err != nil {
		srv.log(ctx).Error("Failed to send verification code", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send verification code")
	}

	return nil
}
