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
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/mocks"
	"flyingpot/internal/usecase"
)

func TestStoreHandler_AdjustQuantity(t *testing.T) {
	uc := new(mocks.MockStoreUsecase)
	ownerID := primitive.NewObjectID()
	storeID := ownerID.Hex() + "-12345"
	uc.On("AdjustQuantity", mock.Anything, storeID, "SOUP01", 3).Return(nil)

	h := NewStoreHandler(uc, slog.Default())

	e := newTestEcho()
	e.PUT("/api/stores/:storeId/items/:itemId/quantity", h.AdjustQuantity)

	req := httptest.NewRequest(http.MethodPut,
		"/api/stores/"+storeID+"/items/SOUP01/quantity", strings.NewReader(`{"delta":3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestStoreHandler_AdjustQuantity_RejectsMissingDelta(t *testing.T) {
	uc := new(mocks.MockStoreUsecase)
	h := NewStoreHandler(uc, slog.Default())

	e := newTestEcho()
	e.PUT("/api/stores/:storeId/items/:itemId/quantity", h.AdjustQuantity)

	req := httptest.NewRequest(http.MethodPut,
		"/api/stores/abc-12345/items/SOUP01/quantity", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreHandler_GetStoreByID_NotFoundEnvelope(t *testing.T) {
	uc := new(mocks.MockStoreUsecase)
	uc.On("GetStoreByID", mock.Anything, "ghost-00000").Return(nil, domainerrors.ErrStoreNotFound)

	h := NewStoreHandler(uc, slog.Default())

	e := newTestEcho()
	e.GET("/api/stores/:storeId", h.GetStoreByID)

	req := httptest.NewRequest(http.MethodGet, "/api/stores/ghost-00000", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "STORE_NOT_FOUND")
}

func TestStoreHandler_CreateStore(t *testing.T) {
	uc := new(mocks.MockStoreUsecase)
	ownerID := primitive.NewObjectID()
	created := &entity.Store{
		Name:    "The Flying Pot",
		StoreID: ownerID.Hex() + "-54321",
		Items:   []entity.Item{{ID: "A1B2C3", Title: "Soup", Price: 5.5, Quantity: 10}},
	}
	uc.On("CreateStore", mock.Anything, ownerID, mock.MatchedBy(func(input usecase.StoreInput) bool {
		return input.Name == "The Flying Pot" && len(input.Items) == 1
	})).Return(created, nil)

	h := NewStoreHandler(uc, slog.Default())

	e := newTestEcho()
	e.POST("/api/users/:id/store", h.CreateStore)

	req := httptest.NewRequest(http.MethodPost, "/api/users/"+ownerID.Hex()+"/store", strings.NewReader(
		`{"name":"The Flying Pot","location":"Main St","items":[{"title":"Soup","price":5.5,"quantity":10}]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"storeId":"`+created.StoreID+`"`)
}
