package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"flyingpot/internal/delivery/http/response"
	"flyingpot/internal/usecase"
)

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToCartRequest struct {
	ItemName string  `json:"itemName" validate:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Notes    string  `json:"notes"`
	StoreID  string  `json:"storeId" validate:"required"`
}

type cartItemRequest struct {
	ID       string  `json:"id"`
	ItemName string  `json:"itemName"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes"`
	StoreID  string  `json:"storeId"`
	FoodID   string  `json:"foodId"`
}

func (r cartItemRequest) toInput() usecase.UpdateCartItemInput {
	return usecase.UpdateCartItemInput{
		CartItemID: r.ID,
		ItemName:   r.ItemName,
		Price:      r.Price,
		Quantity:   r.Quantity,
		Notes:      r.Notes,
		StoreID:    r.StoreID,
		FoodID:     r.FoodID,
	}
}

// GetCart returns the user's current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cartItemViews(cart), "Cart retrieved successfully")
}

// AddToCart appends one entry, resolving the catalog item reference.
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	entry, err := h.uc.AddToCart(c.Request().Context(), userID, usecase.AddToCartInput{
		ItemName: req.ItemName,
		Price:    req.Price,
		Quantity: req.Quantity,
		Notes:    req.Notes,
		StoreID:  req.StoreID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, CartItemView(*entry), "Item added to cart")
}

// UpdateCartItem replaces the entry with the given cart id.
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req cartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	req.ID = c.Param("itemId")

	if err := h.uc.UpdateCartItem(c.Request().Context(), userID, req.toInput()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item updated successfully")
}

// RemoveCartItem deletes the entry with the given cart id.
func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveCartItem(c.Request().Context(), userID, c.Param("itemId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart item removed successfully")
}

type replaceCartRequest struct {
	Items []cartItemRequest `json:"items"`
}

// ReplaceCart overwrites the whole cart.
func (h *CartHandler) ReplaceCart(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req replaceCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	items := make([]usecase.UpdateCartItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, item.toInput())
	}

	if err := h.uc.ReplaceCart(c.Request().Context(), userID, items); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart replaced successfully")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.ClearCart(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared successfully")
}
