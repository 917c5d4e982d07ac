package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "flyingpot/internal/delivery/context"
	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/usecase"
	"flyingpot/internal/util"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	userRepo repository.UserRepository
	cartRepo repository.CartRepository
	logger   *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	CartRepo repository.CartRepository
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		userRepo: params.UserRepo,
		cartRepo: params.CartRepo,
		logger:   params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's current cart.
func (srv *cartService) GetCart(ctx context.Context, userID primitive.ObjectID) ([]entity.CartItem, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load cart owner")
	}

	return user.Cart, nil
}

// AddToCart appends one entry, resolving the referenced catalog item by name
// inside the given store. An unresolvable reference does not fail the add;
// the entry just carries no food id.
func (srv *cartService) AddToCart(ctx context.Context, userID primitive.ObjectID, input usecase.AddToCartInput) (*entity.CartItem, error) {
	entry := entity.CartItem{
		ID:       util.GenerateCartItemID(),
		ItemName: input.ItemName,
		Price:    input.Price,
		Quantity: input.Quantity,
		Notes:    input.Notes,
		StoreID:  input.StoreID,
		FoodID:   srv.resolveFoodID(ctx, input.StoreID, input.ItemName),
	}

	if err := srv.cartRepo.PushItem(ctx, userID, entry); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return &entry, nil
}

// UpdateCartItem replaces the entry with the given cart id.
func (srv *cartService) UpdateCartItem(ctx context.Context, userID primitive.ObjectID, input usecase.UpdateCartItemInput) error {
	if input.CartItemID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("cart item id is required")
	}

	if err := srv.cartRepo.UpdateItem(ctx, userID, cartItemFromInput(input)); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return domainerrors.ErrCartItemNotFound
		}

		return errors.Wrap(err, "failed to update cart item")
	}

	return nil
}

// RemoveCartItem deletes the entry with the given cart id.
func (srv *cartService) RemoveCartItem(ctx context.Context, userID primitive.ObjectID, cartItemID string) error {
	if err := srv.cartRepo.PullItem(ctx, userID, cartItemID); err != nil {
		switch {
		case errors.Is(err, repository.ErrCartItemNotFound):
			return domainerrors.ErrCartItemNotFound
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ReplaceCart overwrites the whole cart.
func (srv *cartService) ReplaceCart(ctx context.Context, userID primitive.ObjectID, items []usecase.UpdateCartItemInput) error {
	cart := make([]entity.CartItem, 0, len(items))
	for _, input := range items {
		cart = append(cart, cartItemFromInput(input))
	}

	if err := srv.cartRepo.ReplaceCart(ctx, userID, cart); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to replace cart")
	}

	return nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, userID primitive.ObjectID) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Debug("Cleared cart", slog.Any("userID", userID))

	return nil
}

// resolveFoodID looks up the referenced catalog item by name inside the
// vendor's store. Cart entries reference items by name at add time, so this
// is the one place the name gets pinned to an item id.
func (srv *cartService) resolveFoodID(ctx context.Context, storeID, itemName string) string {
	vendor, err := srv.userRepo.FindByStoreID(ctx, storeID)
	if err != nil || vendor.Store == nil {
		srv.log(ctx).Debug("Cart entry references unknown store", slog.String("storeID", storeID))

		return ""
	}

	item := vendor.Store.FindItemByTitle(itemName)
	if item == nil {
		srv.log(ctx).Debug("Cart entry references unknown item",
			slog.String("storeID", storeID), slog.String("itemName", itemName))

		return ""
	}

	return item.ID
}

func cartItemFromInput(input usecase.UpdateCartItemInput) entity.CartItem {
	id := input.CartItemID
	if id == "" {
		id = util.GenerateCartItemID()
	}

	return entity.CartItem{
		ID:       id,
		ItemName: input.ItemName,
		Price:    input.Price,
		Quantity: input.Quantity,
		Notes:    input.Notes,
		StoreID:  input.StoreID,
		FoodID:   input.FoodID,
	}
}
