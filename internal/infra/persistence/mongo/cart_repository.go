package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/infra/persistence/model"
)

// cartRepository implements the domain.CartRepository interface on the cart
// array embedded in patron documents.
type cartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{collection: users(db)}
}

// PushItem appends one entry to the cart.
func (repo *cartRepository) PushItem(ctx context.Context, userID primitive.ObjectID, item entity.CartItem) error {
	update := bson.M{"$push": bson.M{"cart": model.CartItemModel(item)}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push cart item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ReplaceCart overwrites the whole cart array.
func (repo *cartRepository) ReplaceCart(ctx context.Context, userID primitive.ObjectID, cart []entity.CartItem) error {
	models := model.FromCartDomain(cart)
	if models == nil {
		models = []model.CartItemModel{}
	}
	update := bson.M{"$set": bson.M{"cart": models}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace cart")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateItem replaces the cart entry matched by the item's id through the
// positional operator.
func (repo *cartRepository) UpdateItem(ctx context.Context, userID primitive.ObjectID, item entity.CartItem) error {
	filter := bson.M{"_id": userID, "cart.id": item.ID}
	update := bson.M{"$set": bson.M{"cart.$": model.CartItemModel(item)}}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// PullItem removes the cart entry with the given id.
func (repo *cartRepository) PullItem(ctx context.Context, userID primitive.ObjectID, cartItemID string) error {
	update := bson.M{"$pull": bson.M{"cart": bson.M{"id": cartItemID}}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull cart item")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Clear empties the cart.
func (repo *cartRepository) Clear(ctx context.Context, userID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"cart": []model.CartItemModel{}}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear cart")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
