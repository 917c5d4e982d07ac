package entity

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is a user's embedded selling profile with its own item catalog.
type Store struct {
	Name        string
	Description string
	Location    string
	// StoreID is a denormalized composite key "<ownerHexID>-<5 digits>".
	// The prefix before '-' must equal the owning user's id, since it is
	// used to resolve the vendor document.
	StoreID string
	Items   []Item
}

// Item is a single catalog entry inside a store.
type Item struct {
	// ID is an opaque string assigned by the storefront, not a
	// database-generated id.
	ID          string
	Title       string
	Price       float64
	Quantity    int // Never negative after an order.
	Description string
}

// StoreListing is the flattened store+owner view returned by store browsing.
type StoreListing struct {
	OwnerID    primitive.ObjectID
	OwnerName  string
	OwnerEmail string
	Store      Store
}

// FindItemByID returns the catalog item with the given id, or nil.
func (s *Store) FindItemByID(itemID string) *Item {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return &s.Items[i]
		}
	}

	return nil
}

// FindItemByTitle returns the first catalog item with the given title, or nil.
// Cart entries reference items by name when they are added, so title lookup
// is how foodId gets resolved.
func (s *Store) FindItemByTitle(title string) *Item {
	for i := range s.Items {
		if s.Items[i].Title == title {
			return &s.Items[i]
		}
	}

	return nil
}

// OwnerIDFromStoreID extracts the owning user's id from a composite store id.
// It returns an error when the prefix is not a valid object id.
func OwnerIDFromStoreID(storeID string) (primitive.ObjectID, error) {
	prefix, _, _ := strings.Cut(storeID, "-")

	return primitive.ObjectIDFromHex(prefix)
}
