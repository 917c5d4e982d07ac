// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the root aggregate of the system. A single user document owns the
// user's credentials and profile plus, optionally, a vendor store, a shopping
// cart, both order views, and any promotions the user issued or received.
type User struct {
	ID           primitive.ObjectID // Unique identifier for the user document.
	Name         string             // Display name.
	Username     string             // Unique handle, checked at registration.
	Email        string             // Unique login identifier.
	PasswordHash string             // Bcrypt hash; never serialized outward.
	Kind         Role               // Account kind: "user" or "admin".
	Verified     bool               // Whether the email verification completed.

	Store            *Store            // Vendor profile with its item catalog. Nil for non-vendors.
	Cart             []CartItem        // The user's current shopping cart.
	Orders           []Order           // Orders received as a vendor (kitchen view).
	PatronOrders     []Order           // Orders placed as a patron.
	ComplimentGroups []ComplimentGroup // Promotion code batches issued as a vendor.
	Compliments      []Compliment      // Promotion codes received from vendors.
}

// IsVendor reports whether this user has published a store.
func (u *User) IsVendor() bool {
	return u.Store != nil
}
