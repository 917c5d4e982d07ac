package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"flyingpot/internal/delivery/http/middleware"
	"flyingpot/internal/delivery/http/response"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/service"
	"flyingpot/internal/usecase"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type checkUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// CheckUser reports identifier conflicts before signup. The storefront
// expects per-field errors in a flat errors map.
func (h *UserHandler) CheckUser(c echo.Context) error {
	var req checkUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid availability check input")
	}

	err := h.uc.CheckAvailability(c.Request().Context(), usecase.CheckAvailabilityInput{
		Email:    req.Email,
		Username: req.Username,
	})
	switch {
	case err == nil:
		return response.Success(c, http.StatusOK, map[string]bool{"available": true}, "Identifiers available")
	case errors.Is(err, domainerrors.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors": map[string]string{"email": "Email already in use"},
		})
	case errors.Is(err, domainerrors.ErrUsernameTaken):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors": map[string]string{"username": "Username already in use"},
		})
	default:
		return errors.WithStack(err)
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	Kind     string `json:"kind" validate:"required"`
}

// Register handles the signup request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Kind:     req.Kind,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, userView(output.User), "User registered successfully")
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignIn checks credentials, sets the session cookie, and returns the token
// alongside the account.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignIn(c.Request().Context(), usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(h.tokenSvc.TokenDuration().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, map[string]any{
		"user":  userView(output.User),
		"token": output.Token,
	}, "Sign-in successful")
}

// CurrentUser returns the account identified by the validated session.
func (h *UserHandler) CurrentUser(c echo.Context) error {
	userID, ok := authUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, userView(user), "User retrieved successfully")
}

// ListUsers returns every account. Admin surface.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, userView(user))
	}

	return response.Success(c, http.StatusOK, views, "Users retrieved successfully")
}

// DeleteUser removes an account entirely.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	userID, err := pathObjectID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
