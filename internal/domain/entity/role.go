// Package entity contains the core business objects of the project.
package entity

// Role represents the account kind a user signs up with.
type Role string

const (
	// RoleUser indicates a regular (patron/vendor) account.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrative account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
// The role tag is always an explicit enum; it is never derived from the
// length or shape of a free-text field.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
