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

// storeService implements the StoreUsecase interface.
type storeService struct {
	userRepo  repository.UserRepository
	storeRepo repository.StoreRepository
	logger    *slog.Logger
}

// StoreServiceParams holds dependencies for storeService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	StoreRepo repository.StoreRepository
	Logger    *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		userRepo:  params.UserRepo,
		storeRepo: params.StoreRepo,
		logger:    params.Logger,
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStore publishes a store on the owner's account. The composite store
// id embeds the owner's hex id so later lookups resolve through it.
func (srv *storeService) CreateStore(ctx context.Context, ownerID primitive.ObjectID, input usecase.StoreInput) (*entity.Store, error) {
	store := buildStore(input, util.GenerateStoreID(ownerID.Hex()), false)

	if err := srv.storeRepo.SetStore(ctx, ownerID, store); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create store")
	}

	srv.log(ctx).Info("Created store", slog.Any("ownerID", ownerID), slog.String("storeID", store.StoreID))

	return store, nil
}

// GetStore returns the owner's store.
func (srv *storeService) GetStore(ctx context.Context, ownerID primitive.ObjectID) (*entity.Store, error) {
	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load store owner")
	}

	if owner.Store == nil {
		return nil, domainerrors.ErrStoreNotFound
	}

	return owner.Store, nil
}

// UpdateStore replaces the store wholesale, keeping its store id. Item ids
// are regenerated on every update, so references held by carts go stale.
func (srv *storeService) UpdateStore(ctx context.Context, ownerID primitive.ObjectID, input usecase.StoreInput) (*entity.Store, error) {
	existing, err := srv.GetStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	store := buildStore(input, existing.StoreID, true)

	if err := srv.storeRepo.SetStore(ctx, ownerID, store); err != nil {
		return nil, errors.Wrap(err, "failed to update store")
	}

	srv.log(ctx).Info("Updated store", slog.Any("ownerID", ownerID), slog.String("storeID", store.StoreID))

	return store, nil
}

// DeleteStore removes the store from the owner's account.
func (srv *storeService) DeleteStore(ctx context.Context, ownerID primitive.ObjectID) error {
	if err := srv.storeRepo.UnsetStore(ctx, ownerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete store")
	}

	srv.log(ctx).Info("Deleted store", slog.Any("ownerID", ownerID))

	return nil
}

// AddItem appends one catalog entry.
func (srv *storeService) AddItem(ctx context.Context, ownerID primitive.ObjectID, input usecase.ItemInput) (*entity.Item, error) {
	item := buildItem(input, false)

	if err := srv.storeRepo.PushItem(ctx, ownerID, item); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to add item")
	}

	return &item, nil
}

// UpdateItem replaces the catalog entry with the given id.
func (srv *storeService) UpdateItem(ctx context.Context, ownerID primitive.ObjectID, input usecase.ItemInput) error {
	if input.ID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("item id is required")
	}

	if err := srv.storeRepo.UpdateItem(ctx, ownerID, entity.Item(input)); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to update item")
	}

	return nil
}

// RemoveItem deletes the catalog entry with the given id.
func (srv *storeService) RemoveItem(ctx context.Context, ownerID primitive.ObjectID, itemID string) error {
	if err := srv.storeRepo.PullItem(ctx, ownerID, itemID); err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			return domainerrors.ErrItemNotFound
		case errors.Is(err, repository.ErrUserNotFound):
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to remove item")
	}

	return nil
}

// AdjustQuantity subtracts delta from an item's stock. The decrement is one
// conditional update, so concurrent orders cannot drive the quantity
// negative: the losing request fails and the stock stays untouched.
func (srv *storeService) AdjustQuantity(ctx context.Context, storeID, itemID string, delta int) error {
	if delta <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("quantity must be a positive integer")
	}

	ownerID, err := entity.OwnerIDFromStoreID(storeID)
	if err != nil {
		return domainerrors.ErrStoreNotFound
	}

	if err := srv.storeRepo.DecrementItemQuantity(ctx, ownerID, itemID, delta); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return domainerrors.ErrInsufficientStock
		case errors.Is(err, repository.ErrItemNotFound):
			return domainerrors.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to adjust quantity")
	}

	return nil
}

// ListStores returns every published store with its owner's identity.
func (srv *storeService) ListStores(ctx context.Context) ([]*entity.StoreListing, error) {
	listings, err := srv.storeRepo.ListStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return listings, nil
}

// GetStoreByID resolves one store through its composite store id.
func (srv *storeService) GetStoreByID(ctx context.Context, storeID string) (*entity.StoreListing, error) {
	owner, err := srv.userRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to load store by id")
	}

	if owner.Store == nil {
		return nil, domainerrors.ErrStoreNotFound
	}

	return &entity.StoreListing{
		OwnerID:    owner.ID,
		OwnerName:  owner.Name,
		OwnerEmail: owner.Email,
		Store:      *owner.Store,
	}, nil
}

// buildStore maps the input to a store entity. When regenerate is set every
// item gets a fresh id regardless of what the input carried.
func buildStore(input usecase.StoreInput, storeID string, regenerate bool) *entity.Store {
	items := make([]entity.Item, 0, len(input.Items))
	for _, it := range input.Items {
		items = append(items, buildItem(it, regenerate))
	}

	return &entity.Store{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		StoreID:     storeID,
		Items:       items,
	}
}

func buildItem(input usecase.ItemInput, regenerate bool) entity.Item {
	item := entity.Item(input)
	if regenerate || item.ID == "" {
		item.ID = util.GenerateRandomKey()
	}

	return item
}
