package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/delivery/http/response"
	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/usecase"
)

// OrderHandler holds dependencies for order workflow handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

type orderRequest struct {
	Mainkey     string            `json:"mainkey"`
	OrderNumber int               `json:"orderNumber"`
	Items       []cartItemRequest `json:"items"`
	Timestamp   string            `json:"timestamp"`
	CCName      string            `json:"ccName"`
	CartTotal   float64           `json:"cartTotal"`
	Status      string            `json:"status"`
	PatronID    string            `json:"patronId"`
	Tip         float64           `json:"tip"`
}

func (r orderRequest) toInput() (usecase.CreateOrderInput, error) {
	input := usecase.CreateOrderInput{
		Mainkey:     r.Mainkey,
		OrderNumber: r.OrderNumber,
		Timestamp:   r.Timestamp,
		CCName:      r.CCName,
		CartTotal:   r.CartTotal,
		Status:      r.Status,
		Tip:         r.Tip,
	}
	for _, item := range r.Items {
		input.Items = append(input.Items, item.toInput())
	}
	if r.PatronID != "" {
		patronID, err := primitive.ObjectIDFromHex(r.PatronID)
		if err != nil {
			return input, domainerrors.ErrInvalidID.WithDetails(r.PatronID)
		}
		input.PatronID = patronID
	}

	return input, nil
}

// CreateVendorOrder appends an order to a vendor's received list.
func (h *OrderHandler) CreateVendorOrder(c echo.Context) error {
	vendorID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	if err := h.uc.CreateVendorOrder(c.Request().Context(), vendorID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Order created successfully")
}

// ListOrders returns a vendor's received orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	vendorID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), vendorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orderViews(orders), "Orders retrieved successfully")
}

// DeleteOrder removes the vendor-side orders with the given mainkey.
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	vendorID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), vendorID, c.Param("mainkey")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// CreatePatronOrder appends an order to a patron's own list.
func (h *OrderHandler) CreatePatronOrder(c echo.Context) error {
	patronID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req orderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	if err := h.uc.CreatePatronOrder(c.Request().Context(), patronID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Order created successfully")
}

// ListPatronOrders returns a patron's own orders.
func (h *OrderHandler) ListPatronOrders(c echo.Context) error {
	patronID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	orders, err := h.uc.ListPatronOrders(c.Request().Context(), patronID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orderViews(orders), "Orders retrieved successfully")
}

// DeletePatronOrder removes the patron-side order matching both keys.
func (h *OrderHandler) DeletePatronOrder(c echo.Context) error {
	patronID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	orderNumber, err := strconv.Atoi(c.Param("orderNumber"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("orderNumber must be an integer")
	}

	if err := h.uc.DeletePatronOrder(c.Request().Context(), patronID, orderNumber, c.Param("mainkey")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order deleted successfully")
}

// MarkReady sets the patron-side order status to Ready.
func (h *OrderHandler) MarkReady(c echo.Context) error {
	return h.setStatus(c, entity.StatusReady)
}

// MarkReadyIn10 sets the patron-side order status to Ready in 10 Minutes.
func (h *OrderHandler) MarkReadyIn10(c echo.Context) error {
	return h.setStatus(c, entity.StatusReadyIn10)
}

func (h *OrderHandler) setStatus(c echo.Context, status entity.OrderStatus) error {
	patronID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.SetOrderStatus(c.Request().Context(), patronID, c.Param("mainkey"), status); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Order status updated")
}

type checkoutRequest struct {
	CCName         string  `json:"ccName"`
	Tip            float64 `json:"tip"`
	IdempotencyKey string  `json:"mainkey"`
}

// Checkout runs the server-side checkout for the patron's cart.
func (h *OrderHandler) Checkout(c echo.Context) error {
	patronID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	output, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		PatronID:       patronID,
		CCName:         req.CCName,
		Tip:            req.Tip,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	statusCode := http.StatusCreated
	if output.Replayed {
		statusCode = http.StatusOK
	}

	return response.Success(c, statusCode, map[string]any{
		"mainkey":     output.Mainkey,
		"orderNumber": output.OrderNumber,
		"orders":      orderViews(output.Orders),
		"replayed":    output.Replayed,
	}, "Checkout completed")
}
