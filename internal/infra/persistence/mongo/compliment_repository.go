package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flyingpot/internal/domain/entity"
	domainerrors "flyingpot/internal/domain/errors"
	"flyingpot/internal/domain/repository"
	"flyingpot/internal/infra/persistence/model"
)

// complimentRepository implements the domain.ComplimentRepository interface
// on the promotion structures embedded in user documents.
type complimentRepository struct {
	collection *mongo.Collection
}

// NewComplimentRepository is the constructor for complimentRepository.
func NewComplimentRepository(db *mongo.Database) repository.ComplimentRepository {
	return &complimentRepository{collection: users(db)}
}

// PushGroup appends a new code group to the vendor's document.
func (repo *complimentRepository) PushGroup(ctx context.Context, vendorID primitive.ObjectID, group entity.ComplimentGroup) error {
	update := bson.M{"$push": bson.M{"complimentGroups": model.FromGroupDomain(group)}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": vendorID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push compliment group")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// PullGroup removes the group with the given id.
func (repo *complimentRepository) PullGroup(ctx context.Context, vendorID primitive.ObjectID, groupID string) error {
	update := bson.M{"$pull": bson.M{"complimentGroups": bson.M{"groupId": groupID}}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": vendorID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull compliment group")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// MarkCodeSent flags one code inside a group as distributed. Array filters
// address the nested code through its group, so only the one code flips.
func (repo *complimentRepository) MarkCodeSent(ctx context.Context, vendorID primitive.ObjectID, groupID, codeID string) error {
	filter := bson.M{"_id": vendorID, "complimentGroups.groupId": groupID}
	update := bson.M{"$set": bson.M{"complimentGroups.$[group].codes.$[code].sent": true}}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"group.groupId": groupID},
			bson.M{"code.id": codeID},
		},
	})

	result, err := repo.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark code sent")
	}
	if result.MatchedCount == 0 {
		return repository.ErrGroupNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrCodeNotFound
	}

	return nil
}

// PushReceived appends a received promotion copy to a follower's document.
func (repo *complimentRepository) PushReceived(ctx context.Context, userID primitive.ObjectID, compliment entity.Compliment) error {
	update := bson.M{"$push": bson.M{"compliments": model.ComplimentModel(compliment)}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push compliment")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
