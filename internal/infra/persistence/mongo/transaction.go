package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"flyingpot/internal/domain/repository"
	"flyingpot/internal/errors"
)

// mongoTransactionManager implements the domain's TransactionManager
// interface on driver sessions. The session travels inside the context the
// callback receives, so repositories joined through the factory only have to
// be called with that context for their writes to take part in the
// transaction.
type mongoTransactionManager struct {
	db *mongo.Database
}

// mongoRepositoryFactory implements the domain's RepositoryFactory
// interface. The repositories it hands out carry no transaction state of
// their own; the session context does all the binding.
type mongoRepositoryFactory struct {
	db *mongo.Database
}

// UserRepo returns a UserRepository joined to the current transaction.
func (f *mongoRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.db)
}

// StoreRepo returns a StoreRepository joined to the current transaction.
func (f *mongoRepositoryFactory) StoreRepo() repository.StoreRepository {
	return NewStoreRepository(f.db)
}

// CartRepo returns a CartRepository joined to the current transaction.
func (f *mongoRepositoryFactory) CartRepo() repository.CartRepository {
	return NewCartRepository(f.db)
}

// OrderRepo returns an OrderRepository joined to the current transaction.
func (f *mongoRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.db)
}

// ComplimentRepo returns a ComplimentRepository joined to the current transaction.
func (f *mongoRepositoryFactory) ComplimentRepo() repository.ComplimentRepository {
	return NewComplimentRepository(f.db)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &mongoTransactionManager{db: db}
}

// Execute runs the given function within a single multi-document
// transaction. The driver retries transient transaction errors on its own.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start session")
	}
	defer session.EndSession(ctx)

	factory := &mongoRepositoryFactory{db: tm.db}

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx, factory)
	})
	if err != nil {
		return err
	}

	return nil
}
