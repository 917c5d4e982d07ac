package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/mocks"
	"flyingpot/internal/usecase"
)

func newStoreService(userRepo *mocks.MockUserRepository, storeRepo *mocks.MockStoreRepository) usecase.StoreUsecase {
	return NewStoreService(StoreServiceParams{
		UserRepo:  userRepo,
		StoreRepo: storeRepo,
		Logger:    slog.Default(),
	})
}

func TestStoreService_CreateStore(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	storeRepo := new(mocks.MockStoreRepository)

	ownerID := primitive.NewObjectID()
	storeRepo.On("SetStore", mock.Anything, ownerID, mock.MatchedBy(func(s *entity.Store) bool {
		return strings.HasPrefix(s.StoreID, ownerID.Hex()+"-") && len(s.Items) == 1 && s.Items[0].ID != ""
	})).Return(nil)

	srv := newStoreService(userRepo, storeRepo)

	store, err := srv.CreateStore(context.Background(), ownerID, usecase.StoreInput{
		Name:     "The Flying Pot",
		Location: "Main St",
		Items:    []usecase.ItemInput{{Title: "Soup", Price: 5.5, Quantity: 10}},
	})
	require.NoError(t, err)

	// The store id must resolve back to its owner.
	resolved, err := entity.OwnerIDFromStoreID(store.StoreID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, resolved)
	storeRepo.AssertExpectations(t)
}

func TestStoreService_GetStore_RoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	storeRepo := new(mocks.MockStoreRepository)

	ownerID := primitive.NewObjectID()
	published := &entity.Store{
		Name:    "The Flying Pot",
		StoreID: ownerID.Hex() + "-12345",
		Items:   []entity.Item{{ID: "A1B2C3", Title: "Soup", Price: 5.5, Quantity: 10}},
	}
	userRepo.On("FindByID", mock.Anything, ownerID).
		Return(&entity.User{ID: ownerID, Store: published}, nil)

	srv := newStoreService(userRepo, storeRepo)

	store, err := srv.GetStore(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, published, store)
}

func TestStoreService_GetStore_NoStore(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	ownerID := primitive.NewObjectID()
	userRepo.On("FindByID", mock.Anything, ownerID).Return(&entity.User{ID: ownerID}, nil)

	srv := newStoreService(userRepo, new(mocks.MockStoreRepository))

	_, err := srv.GetStore(context.Background(), ownerID)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestStoreService_UpdateStore_RegeneratesItemIDs(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	storeRepo := new(mocks.MockStoreRepository)

	ownerID := primitive.NewObjectID()
	storeID := ownerID.Hex() + "-12345"
	userRepo.On("FindByID", mock.Anything, ownerID).Return(&entity.User{
		ID:    ownerID,
		Store: &entity.Store{StoreID: storeID, Items: []entity.Item{{ID: "OLDID1", Title: "Soup"}}},
	}, nil)

	var saved *entity.Store
	storeRepo.On("SetStore", mock.Anything, ownerID, mock.Anything).
		Run(func(args mock.Arguments) { saved = args.Get(2).(*entity.Store) }).
		Return(nil)

	srv := newStoreService(userRepo, storeRepo)

	_, err := srv.UpdateStore(context.Background(), ownerID, usecase.StoreInput{
		Name:  "The Flying Pot",
		Items: []usecase.ItemInput{{ID: "OLDID1", Title: "Soup", Price: 6, Quantity: 8}},
	})
	require.NoError(t, err)

	// Wholesale update keeps the store id but hands every item a new id,
	// so references held by carts go stale.
	require.NotNil(t, saved)
	assert.Equal(t, storeID, saved.StoreID)
	require.Len(t, saved.Items, 1)
	assert.NotEqual(t, "OLDID1", saved.Items[0].ID)
}

func TestStoreService_AdjustQuantity(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	storeRepo := new(mocks.MockStoreRepository)

	ownerID := primitive.NewObjectID()
	storeID := ownerID.Hex() + "-54321"
	storeRepo.On("DecrementItemQuantity", mock.Anything, ownerID, "SOUP01", 3).Return(nil)

	srv := newStoreService(userRepo, storeRepo)

	err := srv.AdjustQuantity(context.Background(), storeID, "SOUP01", 3)
	assert.NoError(t, err)
	storeRepo.AssertExpectations(t)
}

func TestStoreService_AdjustQuantity_InsufficientStock(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	storeRepo := new(mocks.MockStoreRepository)

	ownerID := primitive.NewObjectID()
	storeID := ownerID.Hex() + "-54321"
	storeRepo.On("DecrementItemQuantity", mock.Anything, ownerID, "SOUP01", 6).
		Return(repository.ErrInsufficientStock)

	srv := newStoreService(userRepo, storeRepo)

	err := srv.AdjustQuantity(context.Background(), storeID, "SOUP01", 6)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestStoreService_AdjustQuantity_RejectsNonPositiveDelta(t *testing.T) {
	storeRepo := new(mocks.MockStoreRepository)
	srv := newStoreService(new(mocks.MockUserRepository), storeRepo)

	ownerID := primitive.NewObjectID()

	for _, delta := range []int{0, -2} {
		err := srv.AdjustQuantity(context.Background(), ownerID.Hex()+"-54321", "SOUP01", delta)
		require.Error(t, err)
	}
	storeRepo.AssertNotCalled(t, "DecrementItemQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStoreService_UpdateItem_NotFound(t *testing.T) {
	storeRepo := new(mocks.MockStoreRepository)
	storeRepo.On("UpdateItem", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrItemNotFound)

	srv := newStoreService(new(mocks.MockUserRepository), storeRepo)

	err := srv.UpdateItem(context.Background(), primitive.NewObjectID(), usecase.ItemInput{ID: "GHOST1", Title: "Soup"})
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestStoreService_GetStoreByID(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)

	ownerID := primitive.NewObjectID()
	storeID := ownerID.Hex() + "-11111"
	userRepo.On("FindByStoreID", mock.Anything, storeID).Return(&entity.User{
		ID:    ownerID,
		Name:  "Vendor",
		Email: "vendor@example.com",
		Store: &entity.Store{Name: "The Flying Pot", StoreID: storeID},
	}, nil)

	srv := newStoreService(userRepo, new(mocks.MockStoreRepository))

	listing, err := srv.GetStoreByID(context.Background(), storeID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, listing.OwnerID)
	assert.Equal(t, "The Flying Pot", listing.Store.Name)
}
