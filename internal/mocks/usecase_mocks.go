package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
	"flyingpot/internal/usecase"
)

// MockUserUsecase mocks usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CheckAvailability(ctx context.Context, input usecase.CheckAvailabilityInput) error {
	return m.Called(ctx, input).Error(0)
}

func (m *MockUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) SignIn(ctx context.Context, input usecase.SignInInput) (*usecase.SignInOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.SignInOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) CurrentUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users, ok := args.Get(0).([]*entity.User); ok {
		return users, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID primitive.ObjectID) error {
	return m.Called(ctx, userID).Error(0)
}

// MockStoreUsecase mocks usecase.StoreUsecase.
type MockStoreUsecase struct {
	mock.Mock
}

func (m *MockStoreUsecase) CreateStore(ctx context.Context, ownerID primitive.ObjectID, input usecase.StoreInput) (*entity.Store, error) {
	args := m.Called(ctx, ownerID, input)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreUsecase) GetStore(ctx context.Context, ownerID primitive.ObjectID) (*entity.Store, error) {
	args := m.Called(ctx, ownerID)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreUsecase) UpdateStore(ctx context.Context, ownerID primitive.ObjectID, input usecase.StoreInput) (*entity.Store, error) {
	args := m.Called(ctx, ownerID, input)
	if store, ok := args.Get(0).(*entity.Store); ok {
		return store, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreUsecase) DeleteStore(ctx context.Context, ownerID primitive.ObjectID) error {
	return m.Called(ctx, ownerID).Error(0)
}

func (m *MockStoreUsecase) AddItem(ctx context.Context, ownerID primitive.ObjectID, input usecase.ItemInput) (*entity.Item, error) {
	args := m.Called(ctx, ownerID, input)
	if item, ok := args.Get(0).(*entity.Item); ok {
		return item, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreUsecase) UpdateItem(ctx context.Context, ownerID primitive.ObjectID, input usecase.ItemInput) error {
	return m.Called(ctx, ownerID, input).Error(0)
}

func (m *MockStoreUsecase) RemoveItem(ctx context.Context, ownerID primitive.ObjectID, itemID string) error {
	return m.Called(ctx, ownerID, itemID).Error(0)
}

func (m *MockStoreUsecase) AdjustQuantity(ctx context.Context, storeID, itemID string, delta int) error {
	return m.Called(ctx, storeID, itemID, delta).Error(0)
}

func (m *MockStoreUsecase) ListStores(ctx context.Context) ([]*entity.StoreListing, error) {
	args := m.Called(ctx)
	if listings, ok := args.Get(0).([]*entity.StoreListing); ok {
		return listings, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockStoreUsecase) GetStoreByID(ctx context.Context, storeID string) (*entity.StoreListing, error) {
	args := m.Called(ctx, storeID)
	if listing, ok := args.Get(0).(*entity.StoreListing); ok {
		return listing, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockOrderUsecase mocks usecase.OrderUsecase.
type MockOrderUsecase struct {
	mock.Mock
}

func (m *MockOrderUsecase) CreateVendorOrder(ctx context.Context, vendorID primitive.ObjectID, input usecase.CreateOrderInput) error {
	return m.Called(ctx, vendorID, input).Error(0)
}

func (m *MockOrderUsecase) CreatePatronOrder(ctx context.Context, patronID primitive.ObjectID, input usecase.CreateOrderInput) error {
	return m.Called(ctx, patronID, input).Error(0)
}

func (m *MockOrderUsecase) ListOrders(ctx context.Context, vendorID primitive.ObjectID) ([]entity.Order, error) {
	args := m.Called(ctx, vendorID)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderUsecase) ListPatronOrders(ctx context.Context, patronID primitive.ObjectID) ([]entity.Order, error) {
	args := m.Called(ctx, patronID)
	if orders, ok := args.Get(0).([]entity.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockOrderUsecase) DeleteOrder(ctx context.Context, vendorID primitive.ObjectID, mainkey string) error {
	return m.Called(ctx, vendorID, mainkey).Error(0)
}

func (m *MockOrderUsecase) DeletePatronOrder(ctx context.Context, patronID primitive.ObjectID, orderNumber int, mainkey string) error {
	return m.Called(ctx, patronID, orderNumber, mainkey).Error(0)
}

func (m *MockOrderUsecase) SetOrderStatus(ctx context.Context, patronID primitive.ObjectID, mainkey string, status entity.OrderStatus) error {
	return m.Called(ctx, patronID, mainkey, status).Error(0)
}

func (m *MockOrderUsecase) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.CheckoutOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}
