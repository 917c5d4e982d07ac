package repository

import (
	"context"
	"errors"

	"flyingpot/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrCartItemNotFound is returned when a cart entry id matches nothing.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository operates on the cart embedded in a patron's user document.
// Every mutation is a single field-level operator on the one cart array, so
// individual operations cannot lose concurrent writes to other fields.
type CartRepository interface {
	// PushItem appends one entry to the cart.
	PushItem(ctx context.Context, userID primitive.ObjectID, item entity.CartItem) error

	// ReplaceCart overwrites the whole cart array.
	ReplaceCart(ctx context.Context, userID primitive.ObjectID, cart []entity.CartItem) error

	// UpdateItem replaces the cart entry matched by the item's id.
	UpdateItem(ctx context.Context, userID primitive.ObjectID, item entity.CartItem) error

	// PullItem removes the cart entry with the given id.
	PullItem(ctx context.Context, userID primitive.ObjectID, cartItemID string) error

	// Clear empties the cart.
	Clear(ctx context.Context, userID primitive.ObjectID) error
}
