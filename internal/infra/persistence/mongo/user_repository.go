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

// userRepository implements the domain.UserRepository interface on the
// users collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering
// to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{collection: users(db)}
}

// FindByID retrieves a single user document by its unique id.
func (repo *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id})
}

// FindByEmail retrieves a single user document by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

// FindByUsername retrieves a single user document by handle.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username})
}

// FindByStoreID retrieves the vendor document owning the given composite
// store id. The owner's id is the prefix of the store id, so this resolves
// through _id rather than scanning store fields.
func (repo *userRepository) FindByStoreID(ctx context.Context, storeID string) (*entity.User, error) {
	ownerID, err := entity.OwnerIDFromStoreID(storeID)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	user, err := repo.findOne(ctx, bson.M{"_id": ownerID, "store.storeId": storeID})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Create persists a new user document.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := model.FromUserDomain(user)
	if userM.ID.IsZero() {
		userM.ID = primitive.NewObjectID()
	}

	if _, err := repo.collection.InsertOne(ctx, userM); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// UpdateAccount rewrites the account fields of the user matched by email.
// Embedded structures (store, cart, orders) are deliberately untouched.
func (repo *userRepository) UpdateAccount(ctx context.Context, user *entity.User) error {
	update := bson.M{"$set": bson.M{
		"name":     user.Name,
		"username": user.Username,
		"password": user.PasswordHash,
		"kind":     user.Kind.String(),
		"verified": user.Verified,
	}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"email": user.Email}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user account")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user document entirely.
func (repo *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := repo.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}
	if result.DeletedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ListAll returns every user document. Admin surface only.
func (repo *userRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	defer cursor.Close(ctx)

	var models []model.UserModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.Wrap(err, "failed to decode users")
	}

	userList := make([]*entity.User, 0, len(models))
	for i := range models {
		userList = append(userList, model.ToUserDomain(&models[i]))
	}

	return userList, nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return model.ToUserDomain(&userM), nil
}
