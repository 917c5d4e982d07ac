package repository

import (
	"context"
	"errors"

	"flyingpot/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrOrderNotFound is returned when no order matches the given key.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository operates on the two order views embedded in user documents.
// The vendor view (orders) and the patron view (patronOrders) are independent
// copies: mutating one never touches the other.
type OrderRepository interface {
	// PushVendorOrder appends an order to the vendor's received-orders list.
	PushVendorOrder(ctx context.Context, vendorID primitive.ObjectID, order entity.Order) error

	// PushPatronOrder appends an order to the patron's own order list.
	PushPatronOrder(ctx context.Context, patronID primitive.ObjectID, order entity.Order) error

	// PullVendorOrder removes every vendor-side order with the given mainkey.
	PullVendorOrder(ctx context.Context, vendorID primitive.ObjectID, mainkey string) error

	// PullPatronOrder removes the patron-side order matching both keys.
	PullPatronOrder(ctx context.Context, patronID primitive.ObjectID, orderNumber int, mainkey string) error

	// SetPatronOrderStatus updates the status of the patron-side order with
	// the given mainkey. Vendor readiness is surfaced on the patron's view.
	SetPatronOrderStatus(ctx context.Context, patronID primitive.ObjectID, mainkey string, status entity.OrderStatus) error
}
