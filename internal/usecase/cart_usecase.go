package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
)

// AddToCartInput defines one entry as submitted by the storefront. The
// referenced catalog item is looked up by name inside the given store.
type AddToCartInput struct {
	ItemName string
	Price    float64
	Quantity int
	Notes    string
	StoreID  string
}

// UpdateCartItemInput replaces the entry matched by CartItemID.
type UpdateCartItemInput struct {
	CartItemID string
	ItemName   string
	Price      float64
	Quantity   int
	Notes      string
	StoreID    string
	FoodID     string
}

// CartUsecase defines the interface for shopping cart operations.
type CartUsecase interface {
	// GetCart returns the user's current cart.
	GetCart(ctx context.Context, userID primitive.ObjectID) ([]entity.CartItem, error)

	// AddToCart appends one entry, resolving the catalog item reference.
	// A missing catalog item does not fail the add; the reference is
	// simply left unresolved.
	AddToCart(ctx context.Context, userID primitive.ObjectID, input AddToCartInput) (*entity.CartItem, error)

	// UpdateCartItem replaces the entry with the given cart id.
	UpdateCartItem(ctx context.Context, userID primitive.ObjectID, input UpdateCartItemInput) error

	// RemoveCartItem deletes the entry with the given cart id.
	RemoveCartItem(ctx context.Context, userID primitive.ObjectID, cartItemID string) error

	// ReplaceCart overwrites the whole cart.
	ReplaceCart(ctx context.Context, userID primitive.ObjectID, items []UpdateCartItemInput) error

	// ClearCart empties the cart.
	ClearCart(ctx context.Context, userID primitive.ObjectID) error
}
