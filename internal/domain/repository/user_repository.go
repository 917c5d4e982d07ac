// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"flyingpot/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their unique handle.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByStoreID retrieves the user owning the store with the given
	// composite store id.
	FindByStoreID(ctx context.Context, storeID string) (*entity.User, error)

	// Create persists a new user document.
	Create(ctx context.Context, user *entity.User) error

	// UpdateAccount rewrites the account fields (name, username, password
	// hash, kind, verified) of the user matched by email.
	UpdateAccount(ctx context.Context, user *entity.User) error

	// Delete removes the user document entirely.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// ListAll returns every user document. Admin surface only.
	ListAll(ctx context.Context) ([]*entity.User, error)
}
