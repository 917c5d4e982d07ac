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

// orderRepository implements the domain.OrderRepository interface on the two
// order arrays embedded in user documents. The vendor view and the patron
// view are independent copies; nothing here touches both at once.
type orderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *mongo.Database) repository.OrderRepository {
	return &orderRepository{collection: users(db)}
}

// PushVendorOrder appends an order to the vendor's received-orders list.
func (repo *orderRepository) PushVendorOrder(ctx context.Context, vendorID primitive.ObjectID, order entity.Order) error {
	return repo.pushOrder(ctx, vendorID, "orders", order)
}

// PushPatronOrder appends an order to the patron's own order list.
func (repo *orderRepository) PushPatronOrder(ctx context.Context, patronID primitive.ObjectID, order entity.Order) error {
	return repo.pushOrder(ctx, patronID, "patronOrders", order)
}

// PullVendorOrder removes every vendor-side order with the given mainkey.
func (repo *orderRepository) PullVendorOrder(ctx context.Context, vendorID primitive.ObjectID, mainkey string) error {
	update := bson.M{"$pull": bson.M{"orders": bson.M{"mainkey": mainkey}}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": vendorID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull vendor order")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// PullPatronOrder removes the patron-side order matching both keys.
func (repo *orderRepository) PullPatronOrder(ctx context.Context, patronID primitive.ObjectID, orderNumber int, mainkey string) error {
	update := bson.M{"$pull": bson.M{"patronOrders": bson.M{
		"orderNumber": orderNumber,
		"mainkey":     mainkey,
	}}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": patronID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to pull patron order")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}
	if result.ModifiedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// SetPatronOrderStatus updates the status of the patron-side order with the
// given mainkey. Readiness set by the vendor is surfaced on the patron's
// copy, so this writes patronOrders, not orders.
func (repo *orderRepository) SetPatronOrderStatus(ctx context.Context, patronID primitive.ObjectID, mainkey string, status entity.OrderStatus) error {
	filter := bson.M{"_id": patronID, "patronOrders.mainkey": mainkey}
	update := bson.M{"$set": bson.M{"patronOrders.$.status": status.String()}}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to set order status")
	}
	if result.MatchedCount == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) pushOrder(ctx context.Context, userID primitive.ObjectID, field string, order entity.Order) error {
	update := bson.M{"$push": bson.M{field: model.FromOrderDomain(order)}}

	result, err := repo.collection.UpdateOne(ctx, bson.M{"_id": userID}, update)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to push order")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
