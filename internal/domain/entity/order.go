package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the fulfillment state of an order, set by vendor action.
type OrderStatus string

const (
	// StatusPending is the initial state of every order.
	StatusPending OrderStatus = "Pending"
	// StatusReady marks an order as ready for pickup.
	StatusReady OrderStatus = "Ready"
	// StatusReadyIn10 marks an order as ready shortly.
	StatusReadyIn10 OrderStatus = "Ready in 10 Minutes"
)

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReady, StatusReadyIn10:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is expected. Deletion is
// the only other exit from a terminal state.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusReady || s == StatusReadyIn10
}

// Order is one vendor's share of a checkout. The same shape serves both the
// vendor view (orders) and the patron view (patronOrders); the two are
// independently owned copies correlated by Mainkey, not a single record.
type Order struct {
	// Mainkey is the correlation token shared by every vendor-side and
	// patron-side order produced by one checkout.
	Mainkey string
	// OrderNumber is a small human-readable number shared across the
	// multi-vendor split of one checkout. It is not guaranteed unique;
	// Mainkey is the authoritative identifier.
	OrderNumber int
	Items       []CartItem
	Timestamp   string
	CCName      string
	CartTotal   float64
	Status      OrderStatus
	// PatronID identifies the buyer on vendor-side orders. Zero on the
	// patron's own view.
	PatronID primitive.ObjectID
	Tip      float64
}
