package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"flyingpot/internal/delivery/http/response"
	"flyingpot/internal/domain/entity"
	"flyingpot/internal/usecase"
)

// ComplimentHandler holds dependencies for promotion code handlers.
type ComplimentHandler struct {
	uc     usecase.ComplimentUsecase
	logger *slog.Logger
}

// NewComplimentHandler is the constructor for ComplimentHandler, injected by Fx.
func NewComplimentHandler(uc usecase.ComplimentUsecase, logger *slog.Logger) *ComplimentHandler {
	return &ComplimentHandler{
		uc:     uc,
		logger: logger,
	}
}

type createComplimentRequest struct {
	Title     string  `json:"title" validate:"required"`
	Amount    float64 `json:"amount"`
	StartDate string  `json:"startDate"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Count     int     `json:"count" validate:"required,gt=0"`
}

// CreateGroup issues a batch of promotion codes under one group.
func (h *ComplimentHandler) CreateGroup(c echo.Context) error {
	vendorID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req createComplimentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid compliment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	group, err := h.uc.CreateGroup(c.Request().Context(), vendorID, usecase.CreateComplimentGroupInput{
		Title:     req.Title,
		Amount:    req.Amount,
		StartDate: req.StartDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Count:     req.Count,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	views := groupViews([]entity.ComplimentGroup{*group})

	return response.Success(c, http.StatusCreated, views[0], "Compliment group created")
}

type sendComplimentsRequest struct {
	GroupID   string   `json:"groupId" validate:"required"`
	Followers []string `json:"followers" validate:"required,min=1,dive,email"`
}

// SendCompliments distributes one unsent code per follower.
func (h *ComplimentHandler) SendCompliments(c echo.Context) error {
	vendorID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	var req sendComplimentsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid send input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.SendCompliments(c.Request().Context(), vendorID, req.GroupID, req.Followers); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Compliments sent successfully")
}

// DeleteGroup removes a group and its remaining codes.
func (h *ComplimentHandler) DeleteGroup(c echo.Context) error {
	vendorID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteGroup(c.Request().Context(), vendorID, c.Param("groupId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Compliment group deleted")
}

// ListCompliments returns the user's issued groups and received codes.
func (h *ComplimentHandler) ListCompliments(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.uc.ListCompliments(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"complimentGroups": groupViews(output.Groups),
		"compliments":      complimentViews(output.Received),
	}, "Compliments retrieved successfully")
}

// ListKitchenCompliments returns received codes flagged for the kitchen view.
func (h *ComplimentHandler) ListKitchenCompliments(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	kitchen, err := h.uc.ListKitchenCompliments(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, complimentViews(kitchen), "Kitchen compliments retrieved")
}

// ComplimentQR renders one received code as a PNG.
func (h *ComplimentHandler) ComplimentQR(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.ComplimentQR(c.Request().Context(), userID, c.Param("codeId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
