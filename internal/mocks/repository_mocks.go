// Package mocks provides hand-written testify mocks for the domain
// repository and service interfaces, plus an inline transaction manager for
// exercising transactional use cases without a live database.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
	"flyingpot/internal/domain/repository"
)

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByStoreID(ctx context.Context, storeID string) (*entity.User, error) {
	args := m.Called(ctx, storeID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockStoreRepository mocks repository.StoreRepository.
type MockStoreRepository struct {
	mock.Mock
}

func (m *MockStoreRepository) SetStore(ctx context.Context, ownerID primitive.ObjectID, store *entity.Store) error {
	return m.Called(ctx, ownerID, store).Error(0)
}

func (m *MockStoreRepository) UnsetStore(ctx context.Context, ownerID primitive.ObjectID) error {
	return m.Called(ctx, ownerID).Error(0)
}

func (m *MockStoreRepository) PushItem(ctx context.Context, ownerID primitive.ObjectID, item entity.Item) error {
	return m.Called(ctx, ownerID, item).Error(0)
}

func (m *MockStoreRepository) UpdateItem(ctx context.Context, ownerID primitive.ObjectID, item entity.Item) error {
	return m.Called(ctx, ownerID, item).Error(0)
}

func (m *MockStoreRepository) PullItem(ctx context.Context, ownerID primitive.ObjectID, itemID string) error {
	return m.Called(ctx, ownerID, itemID).Error(0)
}

func (m *MockStoreRepository) DecrementItemQuantity(ctx context.Context, ownerID primitive.ObjectID, itemID string, delta int) error {
	return m.Called(ctx, ownerID, itemID, delta).Error(0)
}

func (m *MockStoreRepository) ListStores(ctx context.Context) ([]*entity.StoreListing, error) {
	args := m.Called(ctx)
	if listings, ok := args.Get(0).([]*entity.StoreListing); ok {
		return listings, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockCartRepository mocks repository.CartRepository.
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) PushItem(ctx context.Context, userID primitive.ObjectID, item entity.CartItem) error {
	return m.Called(ctx, userID, item).Error(0)
}

func (m *MockCartRepository) ReplaceCart(ctx context.Context, userID primitive.ObjectID, cart []entity.CartItem) error {
	return m.Called(ctx, userID, cart).Error(0)
}

func (m *MockCartRepository) UpdateItem(ctx context.Context, userID primitive.ObjectID, item entity.CartItem) error {
	return m.Called(ctx, userID, item).Error(0)
}

func (m *MockCartRepository) PullItem(ctx context.Context, userID primitive.ObjectID, cartItemID string) error {
	return m.Called(ctx, userID, cartItemID).Error(0)
}

func (m *MockCartRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) PushVendorOrder(ctx context.Context, vendorID primitive.ObjectID, order entity.Order) error {
	return m.Called(ctx, vendorID, order).Error(0)
}

func (m *MockOrderRepository) PushPatronOrder(ctx context.Context, patronID primitive.ObjectID, order entity.Order) error {
	return m.Called(ctx, patronID, order).Error(0)
}

func (m *MockOrderRepository) PullVendorOrder(ctx context.Context, vendorID primitive.ObjectID, mainkey string) error {
	return m.Called(ctx, vendorID, mainkey).Error(0)
}

func (m *MockOrderRepository) PullPatronOrder(ctx context.Context, patronID primitive.ObjectID, orderNumber int, mainkey string) error {
	return m.Called(ctx, patronID, orderNumber, mainkey).Error(0)
}

func (m *MockOrderRepository) SetPatronOrderStatus(ctx context.Context, patronID primitive.ObjectID, mainkey string, status entity.OrderStatus) error {
	return m.Called(ctx, patronID, mainkey, status).Error(0)
}

// MockComplimentRepository mocks repository.ComplimentRepository.
type MockComplimentRepository struct {
	mock.Mock
}

func (m *MockComplimentRepository) PushGroup(ctx context.Context, vendorID primitive.ObjectID, group entity.ComplimentGroup) error {
	return m.Called(ctx, vendorID, group).Error(0)
}

func (m *MockComplimentRepository) PullGroup(ctx context.Context, vendorID primitive.ObjectID, groupID string) error {
	return m.Called(ctx, vendorID, groupID).Error(0)
}

func (m *MockComplimentRepository) MarkCodeSent(ctx context.Context, vendorID primitive.ObjectID, groupID, codeID string) error {
	return m.Called(ctx, vendorID, groupID, codeID).Error(0)
}

func (m *MockComplimentRepository) PushReceived(ctx context.Context, userID primitive.ObjectID, compliment entity.Compliment) error {
	return m.Called(ctx, userID, compliment).Error(0)
}

// InlineTransactionManager runs the transactional callback immediately with
// a factory built over the supplied mocks. It does not emulate rollback;
// tests assert which repository calls happened before the failure.
type InlineTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (tm *InlineTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	return fn(ctx, tm.Factory)
}

// StubRepositoryFactory hands out the mocks it was built with.
type StubRepositoryFactory struct {
	Users       repository.UserRepository
	Stores      repository.StoreRepository
	Carts       repository.CartRepository
	Orders      repository.OrderRepository
	Compliments repository.ComplimentRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository { return f.Users }

func (f *StubRepositoryFactory) StoreRepo() repository.StoreRepository { return f.Stores }

func (f *StubRepositoryFactory) CartRepo() repository.CartRepository { return f.Carts }

func (f *StubRepositoryFactory) OrderRepo() repository.OrderRepository { return f.Orders }

func (f *StubRepositoryFactory) ComplimentRepo() repository.ComplimentRepository { return f.Compliments }
