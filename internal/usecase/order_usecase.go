package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"flyingpot/internal/domain/entity"
)

// CreateOrderInput defines one order as submitted directly by the
// storefront, for the low-level order routes that predate the checkout saga.
type CreateOrderInput struct {
	Mainkey     string
	OrderNumber int
	Items       []UpdateCartItemInput
	Timestamp   string
	CCName      string
	CartTotal   float64
	Status      string
	PatronID    primitive.ObjectID
	Tip         float64
}

// CheckoutInput drives the server-side checkout saga.
type CheckoutInput struct {
	PatronID primitive.ObjectID
	CCName   string
	Tip      float64
	// IdempotencyKey is the client-supplied token that becomes the
	// mainkey of every order the checkout produces. Repeating a key
	// returns the orders already created for it.
	IdempotencyKey string
}

// CheckoutOutput reports what one checkout produced.
type CheckoutOutput struct {
	Mainkey     string
	OrderNumber int
	// Orders holds the patron-side view, one entry per vendor grouping.
	Orders []entity.Order
	// Replayed is true when the idempotency key had already been used and
	// the existing orders were returned without re-executing.
	Replayed bool
}

// OrderUsecase defines the interface for the order workflow. The vendor view
// and the patron view of an order are independent copies correlated by
// mainkey; operations on one side never touch the other.
type OrderUsecase interface {
	// CreateVendorOrder appends an order to a vendor's received list.
	CreateVendorOrder(ctx context.Context, vendorID primitive.ObjectID, input CreateOrderInput) error

	// CreatePatronOrder appends an order to a patron's own list.
	CreatePatronOrder(ctx context.Context, patronID primitive.ObjectID, input CreateOrderInput) error

	// ListOrders returns a vendor's received orders.
	ListOrders(ctx context.Context, vendorID primitive.ObjectID) ([]entity.Order, error)

	// ListPatronOrders returns a patron's own orders.
	ListPatronOrders(ctx context.Context, patronID primitive.ObjectID) ([]entity.Order, error)

	// DeleteOrder removes the vendor-side orders with the given mainkey.
	DeleteOrder(ctx context.Context, vendorID primitive.ObjectID, mainkey string) error

	// DeletePatronOrder removes the patron-side order matching both keys.
	DeletePatronOrder(ctx context.Context, patronID primitive.ObjectID, orderNumber int, mainkey string) error

	// SetOrderStatus records vendor readiness on the patron's view.
	SetOrderStatus(ctx context.Context, patronID primitive.ObjectID, mainkey string, status entity.OrderStatus) error

	// Checkout turns the patron's cart into orders: one vendor order plus
	// one mirrored patron order per vendor in the cart, all sharing one
	// mainkey and order number, with stock decremented and the cart
	// cleared in the same transaction.
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutOutput, error)
}
