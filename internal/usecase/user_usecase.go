// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
)

// --- Input DTOs ---

// CheckAvailabilityInput carries the identifiers checked before signup.
type CheckAvailabilityInput struct {
	Email    string
	Username string
}

// RegisterInput defines the data required to register an account.
type RegisterInput struct {
	Name     string
	Username string
	Password string
	Email    string
	Kind     string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the registered user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// SignInOutput returns the session token after a successful sign-in.
type SignInOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// CheckAvailability reports per-field conflicts before signup.
	CheckAvailability(ctx context.Context, input CheckAvailabilityInput) error

	// Register creates the account, or completes a pending unverified one.
	// A successfully registered account comes out verified.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// SignIn checks credentials and issues a session token.
	SignIn(ctx context.Context, input SignInInput) (*SignInOutput, error)

	// CurrentUser loads the account identified by a validated session.
	CurrentUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error)

	// ListUsers returns every account. Admin surface only.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// DeleteUser removes an account entirely.
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
}
