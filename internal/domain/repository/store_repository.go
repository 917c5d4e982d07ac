package repository

import (
	"context"
	"errors"

	"flyingpot/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrStoreNotFound is returned when a user has no store published.
var ErrStoreNotFound = errors.New("store not found")

// ErrItemNotFound is returned when an item id does not match any catalog entry.
var ErrItemNotFound = errors.New("item not found")

// ErrInsufficientStock is returned when a decrement would drive an item's
// quantity negative. The stored quantity is left unchanged.
var ErrInsufficientStock = errors.New("insufficient quantity in store")

// StoreRepository operates on the store embedded in a vendor's user document.
type StoreRepository interface {
	// SetStore overwrites the user's store wholesale. No merge.
	SetStore(ctx context.Context, ownerID primitive.ObjectID, store *entity.Store) error

	// UnsetStore removes the store field from the user document.
	UnsetStore(ctx context.Context, ownerID primitive.ObjectID) error

	// PushItem appends one item to the store's catalog.
	PushItem(ctx context.Context, ownerID primitive.ObjectID, item entity.Item) error

	// UpdateItem replaces the catalog entry matched by the item's string id.
	UpdateItem(ctx context.Context, ownerID primitive.ObjectID, item entity.Item) error

	// PullItem removes the catalog entry with the given id.
	PullItem(ctx context.Context, ownerID primitive.ObjectID, itemID string) error

	// DecrementItemQuantity subtracts delta from the item's quantity in one
	// conditional update: it only matches when the current quantity is at
	// least delta, so concurrent decrements can never oversubscribe stock.
	DecrementItemQuantity(ctx context.Context, ownerID primitive.ObjectID, itemID string, delta int) error

	// ListStores projects every user carrying a store into a flattened
	// store+owner view.
	ListStores(ctx context.Context) ([]*entity.StoreListing, error)
}
