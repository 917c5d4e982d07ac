// Package handler contains the HTTP handlers for the application.
package handler

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/delivery/http/middleware"
	domainerrors "flyingpot/internal/domain/errors"
)

// pathObjectID parses a path parameter as a Mongo object id.
func pathObjectID(c echo.Context, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		return primitive.NilObjectID, domainerrors.ErrInvalidID.WithDetails(c.Param(name))
	}

	return id, nil
}

// authUserID returns the caller's id as set by the auth middleware.
func authUserID(c echo.Context) (primitive.ObjectID, bool) {
	id, ok := c.Get(middleware.ContextKeyUserID).(primitive.ObjectID)

	return id, ok
}
