package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/mocks"
	"flyingpot/internal/usecase"
)

func TestOrderHandler_Checkout(t *testing.T) {
	uc := new(mocks.MockOrderUsecase)
	patronID := primitive.NewObjectID()

	uc.On("Checkout", mock.Anything, usecase.CheckoutInput{
		PatronID:       patronID,
		CCName:         "Pat Doe",
		Tip:            2.5,
		IdempotencyKey: "chk-001",
	}).Return(&usecase.CheckoutOutput{
		Mainkey:     "chk-001",
		OrderNumber: 123456,
		Orders:      []entity.Order{{Mainkey: "chk-001", OrderNumber: 123456}},
	}, nil)

	h := NewOrderHandler(uc, slog.Default())

	e := newTestEcho()
	e.POST("/api/users/:id/checkout", h.Checkout)

	req := httptest.NewRequest(http.MethodPost, "/api/users/"+patronID.Hex()+"/checkout",
		strings.NewReader(`{"ccName":"Pat Doe","tip":2.5,"mainkey":"chk-001"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mainkey":"chk-001"`)
	assert.Contains(t, rec.Body.String(), `"orderNumber":123456`)
	assert.Contains(t, rec.Body.String(), `"replayed":false`)
	uc.AssertExpectations(t)
}

func TestOrderHandler_Checkout_ReplayReturnsOK(t *testing.T) {
	uc := new(mocks.MockOrderUsecase)
	patronID := primitive.NewObjectID()

	uc.On("Checkout", mock.Anything, mock.Anything).Return(&usecase.CheckoutOutput{
		Mainkey:     "chk-002",
		OrderNumber: 654321,
		Orders:      []entity.Order{{Mainkey: "chk-002", OrderNumber: 654321}},
		Replayed:    true,
	}, nil)

	h := NewOrderHandler(uc, slog.Default())

	e := newTestEcho()
	e.POST("/api/users/:id/checkout", h.Checkout)

	req := httptest.NewRequest(http.MethodPost, "/api/users/"+patronID.Hex()+"/checkout",
		strings.NewReader(`{"mainkey":"chk-002"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"replayed":true`)
}

func TestOrderHandler_Checkout_InsufficientStockEnvelope(t *testing.T) {
	uc := new(mocks.MockOrderUsecase)
	uc.On("Checkout", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInsufficientStock.WithDetails("Soup"))

	h := NewOrderHandler(uc, slog.Default())

	e := newTestEcho()
	e.POST("/api/users/:id/checkout", h.Checkout)

	req := httptest.NewRequest(http.MethodPost, "/api/users/"+primitive.NewObjectID().Hex()+"/checkout",
		strings.NewReader(`{"mainkey":"chk-003"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INSUFFICIENT_STOCK")
	assert.Contains(t, rec.Body.String(), "Soup")
}

func TestOrderHandler_MarkReady(t *testing.T) {
	uc := new(mocks.MockOrderUsecase)
	patronID := primitive.NewObjectID()
	uc.On("SetOrderStatus", mock.Anything, patronID, "chk-004", entity.StatusReady).Return(nil)

	h := NewOrderHandler(uc, slog.Default())

	e := newTestEcho()
	e.PUT("/api/users/:id/orders/:mainkey/status/ready", h.MarkReady)

	req := httptest.NewRequest(http.MethodPut,
		"/api/users/"+patronID.Hex()+"/orders/chk-004/status/ready", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestOrderHandler_DeletePatronOrder_RejectsNonNumericOrderNumber(t *testing.T) {
	uc := new(mocks.MockOrderUsecase)
	h := NewOrderHandler(uc, slog.Default())

	e := newTestEcho()
	e.DELETE("/api/users/:id/patronOrders/:orderNumber/:mainkey", h.DeletePatronOrder)

	req := httptest.NewRequest(http.MethodDelete,
		"/api/users/"+primitive.NewObjectID().Hex()+"/patronOrders/abc/chk-005", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "DeletePatronOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
