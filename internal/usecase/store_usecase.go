package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
)

// --- Input DTOs ---

// StoreInput defines the data for creating or wholesale-updating a store.
type StoreInput struct {
	Name        string
	Description string
	Location    string
	Items       []ItemInput
}

// ItemInput defines one catalog entry as submitted by the storefront.
type ItemInput struct {
	ID          string
	Title       string
	Price       float64
	Quantity    int
	Description string
}

// StoreUsecase defines the interface for vendor store and inventory
// operations.
type StoreUsecase interface {
	// CreateStore publishes a store on the owner's account, assigning a
	// fresh composite store id.
	CreateStore(ctx context.Context, ownerID primitive.ObjectID, input StoreInput) (*entity.Store, error)

	// GetStore returns the owner's store.
	GetStore(ctx context.Context, ownerID primitive.ObjectID) (*entity.Store, error)

	// UpdateStore replaces the store wholesale. Item ids are regenerated,
	// so references held by carts go stale.
	UpdateStore(ctx context.Context, ownerID primitive.ObjectID, input StoreInput) (*entity.Store, error)

	// DeleteStore removes the store from the owner's account.
	DeleteStore(ctx context.Context, ownerID primitive.ObjectID) error

	// AddItem appends one catalog entry.
	AddItem(ctx context.Context, ownerID primitive.ObjectID, input ItemInput) (*entity.Item, error)

	// UpdateItem replaces the catalog entry with the given id.
	UpdateItem(ctx context.Context, ownerID primitive.ObjectID, input ItemInput) error

	// RemoveItem deletes the catalog entry with the given id.
	RemoveItem(ctx context.Context, ownerID primitive.ObjectID, itemID string) error

	// AdjustQuantity subtracts delta from an item's stock. A delta larger
	// than the current quantity fails and leaves the stock untouched.
	AdjustQuantity(ctx context.Context, storeID, itemID string, delta int) error

	// ListStores returns every published store with its owner's identity.
	ListStores(ctx context.Context) ([]*entity.StoreListing, error)

	// GetStoreByID resolves one store through its composite store id.
	GetStoreByID(ctx context.Context, storeID string) (*entity.StoreListing, error)
}
