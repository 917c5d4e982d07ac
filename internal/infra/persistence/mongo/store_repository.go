package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/infra/persistence/model"
)

// storeRepository implements the domain.StoreRepository interface on the
// store structure embedded in vendor documents.
type storeRepository struct {
	collection *mongo.Collection
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *mongo.Database) repository.StoreRepository {
	return &storeRepository{collection: users(db)}
}

// SetStore overwrites the user's store wholesale. No merge.
func (repo *storeRepository) SetStore(ctx context.Context, ownerID primitive.ObjectID, store *entity.Store) error {
	update := bson.M{"$set": bson.M{"store": model.FromStoreDomain(store)}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": ownerID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set store")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UnsetStore removes the store field from the user document.
func (repo *storeRepository) UnsetStore(ctx context.Context, ownerID primitive.ObjectID) error {
	update := bson.M{"$unset": bson.M{"store": ""}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": ownerID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unset store")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// PushItem appends one item to the store's catalog.
func (repo *storeRepository) PushItem(ctx context.Context, ownerID primitive.ObjectID, item entity.Item) error {
	filter := bson.M{"_id": ownerID, "store": bson.M{"$exists": true}}
	update := bson.M{"$push": bson.M{"store.items": model.ItemModel(item)}}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push store item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// UpdateItem replaces the catalog entry matched by the item's string id
// through the positional operator.
func (repo *storeRepository) UpdateItem(ctx context.Context, ownerID primitive.ObjectID, item entity.Item) error {
	filter := bson.M{"_id": ownerID, "store.items.id": item.ID}
	update := bson.M{"$set": bson.M{"store.items.$": model.ItemModel(item)}}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update store item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// PullItem removes the catalog entry with the given id.
func (repo *storeRepository) PullItem(ctx context.Context, ownerID primitive.ObjectID, itemID string) error {
	update := bson.M{"$pull": bson.M{"store.items": bson.M{"id": itemID}}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": ownerID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull store item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// DecrementItemQuantity subtracts delta from the item's quantity in one
// conditional update. The filter only matches while the current quantity is
// at least delta, so racing decrements serialize on the document and the
// loser observes no match instead of driving the quantity negative.
func (repo *storeRepository) DecrementItemQuantity(ctx context.Context, ownerID primitive.ObjectID, itemID string, delta int) error {
	filter := bson.M{
		"_id": ownerID,
		"store.items": bson.M{"$elemMatch": bson.M{
			"id":       itemID,
			"quantity": bson.M{"$gte": delta},
		}},
	}
	update := bson.M{"$inc": bson.M{"store.items.$.quantity": -delta}}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to decrement item quantity")
	}
	if result.MatchedCount == 0 {
		// Distinguish a missing item from one with too little stock.
		exists := repo.collection.FindOne(ctx, bson.M{"_id": ownerID, "store.items.id": itemID})
		if exists.Err() != nil {
			return repository.ErrItemNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// ListStores projects every user carrying a store into a flattened
// store+owner view.
func (repo *storeRepository) ListStores(ctx context.Context) ([]*entity.StoreListing, error) {
	filter := bson.M{"store": bson.M{"$exists": true}}

	cursor, err := repo.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}
	defer cursor.Close(ctx)

	var models []model.UserModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode stores")
	}

	listings := make([]*entity.StoreListing, 0, len(models))
	for i := range models {
		store := model.ToStoreDomain(models[i].Store)
		if store == nil {
			continue
		}
		listings = append(listings, &entity.StoreListing{
			OwnerID:    models[i].ID,
			OwnerName:  models[i].Name,
			OwnerEmail: models[i].Email,
			Store:      *store,
		})
	}

	return listings, nil
}
