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

func newCartService(userRepo *mocks.MockUserRepository, cartRepo *mocks.MockCartRepository) usecase.CartUsecase {
	return NewCartService(CartServiceParams{
		UserRepo: userRepo,
		CartRepo: cartRepo,
		Logger:   slog.Default(),
	})
}

func TestCartService_AddToCart_ResolvesFoodID(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	cartRepo := new(mocks.MockCartRepository)

	vendorID := primitive.NewObjectID()
	storeID := vendorID.Hex() + "-12345"
	userRepo.On("FindByStoreID", mock.Anything, storeID).Return(&entity.User{
		ID:    vendorID,
		Store: &entity.Store{StoreID: storeID, Items: []entity.Item{{ID: "SOUP01", Title: "Soup", Price: 5.5, Quantity: 10}}},
	}, nil)

	patronID := primitive.NewObjectID()
	cartRepo.On("PushItem", mock.Anything, patronID, mock.MatchedBy(func(item entity.CartItem) bool {
		return item.FoodID == "SOUP01" && strings.HasPrefix(item.ID, "_") && len(item.ID) == 10
	})).Return(nil)

	srv := newCartService(userRepo, cartRepo)

	entry, err := srv.AddToCart(context.Background(), patronID, usecase.AddToCartInput{
		ItemName: "Soup", Price: 5.5, Quantity: 2, StoreID: storeID,
	})
	require.NoError(t, err)
	assert.Equal(t, "SOUP01", entry.FoodID)
	cartRepo.AssertExpectations(t)
}

func TestCartService_AddToCart_UnresolvedItemStillAdds(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	cartRepo := new(mocks.MockCartRepository)

	vendorID := primitive.NewObjectID()
	storeID := vendorID.Hex() + "-12345"
	userRepo.On("FindByStoreID", mock.Anything, storeID).Return(&entity.User{
		ID:    vendorID,
		Store: &entity.Store{StoreID: storeID},
	}, nil)

	patronID := primitive.NewObjectID()
	cartRepo.On("PushItem", mock.Anything, patronID, mock.MatchedBy(func(item entity.CartItem) bool {
		return item.FoodID == ""
	})).Return(nil)

	srv := newCartService(userRepo, cartRepo)

	entry, err := srv.AddToCart(context.Background(), patronID, usecase.AddToCartInput{
		ItemName: "Off Menu Special", Price: 9, Quantity: 1, StoreID: storeID,
	})
	require.NoError(t, err)
	assert.Empty(t, entry.FoodID)
}

func TestCartService_AddToCart_UnknownStoreStillAdds(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	cartRepo := new(mocks.MockCartRepository)

	userRepo.On("FindByStoreID", mock.Anything, "bogus-00000").Return(nil, repository.ErrUserNotFound)

	patronID := primitive.NewObjectID()
	cartRepo.On("PushItem", mock.Anything, patronID, mock.Anything).Return(nil)

	srv := newCartService(userRepo, cartRepo)

	entry, err := srv.AddToCart(context.Background(), patronID, usecase.AddToCartInput{
		ItemName: "Soup", Price: 5.5, Quantity: 1, StoreID: "bogus-00000",
	})
	require.NoError(t, err)
	assert.Empty(t, entry.FoodID)
}

func TestCartService_UpdateCartItem_NotFound(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	cartRepo.On("UpdateItem", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrCartItemNotFound)

	srv := newCartService(new(mocks.MockUserRepository), cartRepo)

	err := srv.UpdateCartItem(context.Background(), primitive.NewObjectID(), usecase.UpdateCartItemInput{
		CartItemID: "_abc123def", ItemName: "Soup", Quantity: 3,
	})
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveCartItem_NotFound(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	cartRepo.On("PullItem", mock.Anything, mock.Anything, "_ghost1234").Return(repository.ErrCartItemNotFound)

	srv := newCartService(new(mocks.MockUserRepository), cartRepo)

	err := srv.RemoveCartItem(context.Background(), primitive.NewObjectID(), "_ghost1234")
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_GetCart(t *testing.T) {
	userRepo := new(mocks.MockUserRepository)
	patronID := primitive.NewObjectID()
	cart := []entity.CartItem{{ID: "_abc123def", ItemName: "Soup", Price: 5.5, Quantity: 2}}
	userRepo.On("FindByID", mock.Anything, patronID).Return(&entity.User{ID: patronID, Cart: cart}, nil)

	srv := newCartService(userRepo, new(mocks.MockCartRepository))

	got, err := srv.GetCart(context.Background(), patronID)
	require.NoError(t, err)
	assert.Equal(t, cart, got)
}

func TestCartService_ClearCart(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	patronID := primitive.NewObjectID()
	cartRepo.On("Clear", mock.Anything, patronID).Return(nil)

	srv := newCartService(new(mocks.MockUserRepository), cartRepo)

	assert.NoError(t, srv.ClearCart(context.Background(), patronID))
	cartRepo.AssertExpectations(t)
}
