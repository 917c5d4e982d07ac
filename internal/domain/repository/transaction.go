package repository

import "context"

// TransactionManager defines the interface for managing multi-document
// transactions. The use case layer depends on it instead of the database
// driver, so the checkout saga stays testable without a live server.
type TransactionManager interface {
	// Execute runs fn inside one transaction. The context passed to fn
	// carries the session; repositories obtained from the factory must be
	// called with that context so their writes join the transaction.
	// If fn returns an error the transaction is aborted, otherwise committed.
	Execute(ctx context.Context, fn func(ctx context.Context, repos RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the transaction
// managed by the surrounding Execute call.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository joined to the current transaction.
	UserRepo() UserRepository

	// StoreRepo returns a StoreRepository joined to the current transaction.
	StoreRepo() StoreRepository

	// CartRepo returns a CartRepository joined to the current transaction.
	CartRepo() CartRepository

	// OrderRepo returns an OrderRepository joined to the current transaction.
	OrderRepo() OrderRepository

	// ComplimentRepo returns a ComplimentRepository joined to the current transaction.
	ComplimentRepo() ComplimentRepository
}
