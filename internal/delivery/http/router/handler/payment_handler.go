package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"flyingpot/internal/delivery/http/response"
	"flyingpot/internal/usecase"
)

// PaymentHandler holds dependencies for the payment and mail passthroughs.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

type paymentIntentRequest struct {
	// Amount is in whole dollars; the gateway receives cents.
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// CreatePaymentIntent registers a pending charge and returns the gateway
// client secret the storefront confirms against.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	clientSecret, err := h.uc.CreatePaymentIntent(c.Request().Context(), req.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"clientSecret": clientSecret})
}

type purchaseEmailRequest struct {
	Email     string            `json:"email" validate:"required,email"`
	StoreName string            `json:"storeName"`
	CCName    string            `json:"ccName"`
	CartTotal float64           `json:"cartTotal"`
	Items     []cartItemRequest `json:"items"`
	Timestamp string            `json:"timestamp"`
}

// SendPurchaseEmail mails a receipt as submitted by the storefront.
func (h *PaymentHandler) SendPurchaseEmail(c echo.Context) error {
	var req purchaseEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid receipt input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.PurchaseEmailInput{
		Email:     req.Email,
		StoreName: req.StoreName,
		CCName:    req.CCName,
		CartTotal: req.CartTotal,
		Timestamp: req.Timestamp,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, item.toInput())
	}

	if err := h.uc.SendPurchaseEmail(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Receipt email sent")
}

type verificationCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// SendVerificationCode mails a signup verification code.
func (h *PaymentHandler) SendVerificationCode(c echo.Context) error {
	var req verificationCodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SendVerificationCode(c.Request().Context(), req.Email, req.Code); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent")
}
