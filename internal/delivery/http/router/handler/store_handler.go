package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"flyingpot/internal/delivery/http/response"
	"flyingpot/internal/usecase"
)

// StoreHandler holds dependencies for store and inventory handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		uc:     uc,
		logger: logger,
	}
}

type itemRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Description string  `json:"description"`
}

type storeRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Items       []itemRequest `json:"items" validate:"dive"`
}

func (r storeRequest) toInput() usecase.StoreInput {
	items := make([]usecase.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecase.ItemInput(item))
	}

	return usecase.StoreInput{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Items:       items,
	}
}

// CreateStore publishes a store on the owner's account.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	ownerID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.uc.CreateStore(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, storeView(*store), "Store created successfully")
}

// GetStore returns the owner's store.
func (h *StoreHandler) GetStore(c echo.Context) error {
	ownerID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, storeView(*store), "Store retrieved successfully")
}

// UpdateStore replaces the store wholesale.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	ownerID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, storeView(*store), "Store updated successfully")
}

// DeleteStore removes the store from the owner's account.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	ownerID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteStore(c.Request().Context(), ownerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted successfully")
}

// AddItem appends one catalog entry.
func (h *StoreHandler) AddItem(c echo.Context) error {
	ownerID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), ownerID, usecase.ItemInput(req))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ItemView(*item), "Item added successfully")
}

// UpdateItem replaces the catalog entry with the given id.
func (h *StoreHandler) UpdateItem(c echo.Context) error {
	ownerID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}
	req.ID = c.Param("itemId")

	if err := h.uc.UpdateItem(c.Request().Context(), ownerID, usecase.ItemInput(req)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item updated successfully")
}

// RemoveItem deletes the catalog entry with the given id.
func (h *StoreHandler) RemoveItem(c echo.Context) error {
	ownerID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveItem(c.Request().Context(), ownerID, c.Param("itemId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed successfully")
}

type adjustQuantityRequest struct {
	Delta int `json:"delta" validate:"required,gt=0"`
}

// AdjustQuantity subtracts stock from one catalog item. The decrement is a
// single conditional update; overselling fails without touching the stock.
func (h *StoreHandler) AdjustQuantity(c echo.Context) error {
	var req adjustQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.uc.AdjustQuantity(c.Request().Context(), c.Param("storeId"), c.Param("itemId"), req.Delta)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Quantity adjusted successfully")
}

// ListStores returns every published store with its owner's identity.
func (h *StoreHandler) ListStores(c echo.Context) error {
	listings, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]StoreListingView, 0, len(listings))
	for _, listing := range listings {
		views = append(views, storeListingView(listing))
	}

	return response.Success(c, http.StatusOK, views, "Stores retrieved successfully")
}

// GetStoreByID resolves one store through its composite store id.
func (h *StoreHandler) GetStoreByID(c echo.Context) error {
	listing, err := h.uc.GetStoreByID(c.Request().Context(), c.Param("storeId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, storeListingView(listing), "Store retrieved successfully")
}
