package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/delivery/http/middleware"
	"flyingpot/internal/delivery/http/validator"
	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/mocks"
	"flyingpot/internal/usecase"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	return e
}

func TestUserHandler_CheckUser_EmailConflict(t *testing.T) {
	uc := new(mocks.MockUserUsecase)
	uc.On("CheckAvailability", mock.Anything, usecase.CheckAvailabilityInput{
		Email:    "taken@example.com",
		Username: "newbie",
	}).Return(domainerrors.ErrEmailTaken)

	h := NewUserHandler(uc, new(mocks.MockTokenService), slog.Default())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/check-user",
		strings.NewReader(`{"email":"taken@example.com","username":"newbie"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CheckUser(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["errors"], "email")
	assert.NotContains(t, body["errors"], "username")
}

func TestUserHandler_Register(t *testing.T) {
	uc := new(mocks.MockUserUsecase)
	registered := &entity.User{
		ID:       primitive.NewObjectID(),
		Name:     "Pat",
		Username: "pat",
		Email:    "pat@example.com",
		Kind:     entity.RoleUser,
		Verified: true,
	}
	uc.On("Register", mock.Anything, mock.MatchedBy(func(input usecase.RegisterInput) bool {
		return input.Email == "pat@example.com" && input.Kind == "user"
	})).Return(&usecase.RegisterOutput{User: registered}, nil)

	h := NewUserHandler(uc, new(mocks.MockTokenService), slog.Default())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/users/add", strings.NewReader(
		`{"name":"Pat","username":"pat","password":"secret123","email":"pat@example.com","kind":"user"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"pat"`)
	// The password hash must never appear on the wire.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_SignIn_SetsSessionCookie(t *testing.T) {
	uc := new(mocks.MockUserUsecase)
	tokens := new(mocks.MockTokenService)

	account := &entity.User{ID: primitive.NewObjectID(), Email: "pat@example.com", Kind: entity.RoleUser, Verified: true}
	uc.On("SignIn", mock.Anything, usecase.SignInInput{Email: "pat@example.com", Password: "secret123"}).
		Return(&usecase.SignInOutput{Token: "jwt-token", User: account}, nil)
	tokens.On("TokenDuration").Return(time.Hour)

	h := NewUserHandler(uc, tokens, slog.Default())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/api/signin",
		strings.NewReader(`{"email":"pat@example.com","password":"secret123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SignIn(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"jwt-token"`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
	assert.Equal(t, "jwt-token", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestUserHandler_SignIn_InvalidCredentialsEnvelope(t *testing.T) {
	uc := new(mocks.MockUserUsecase)
	uc.On("SignIn", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	h := NewUserHandler(uc, new(mocks.MockTokenService), slog.Default())

	e := newTestEcho()
	e.POST("/api/signin", h.SignIn)

	req := httptest.NewRequest(http.MethodPost, "/api/signin",
		strings.NewReader(`{"email":"pat@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestUserHandler_DeleteUser_InvalidID(t *testing.T) {
	h := NewUserHandler(new(mocks.MockUserUsecase), new(mocks.MockTokenService), slog.Default())

	e := newTestEcho()
	e.DELETE("/api/users/:id", h.DeleteUser)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/not-an-id", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}
