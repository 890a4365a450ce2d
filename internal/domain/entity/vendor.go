// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Vendor is an account that owns zero or more shops.
// Username and Email are each unique across all vendors.
type Vendor struct {
	ID             int64     // Numeric identifier assigned by the store at creation.
	Username       string    // Login name, unique.
	Email          string    // Contact email, unique.
	HashedPassword string    // bcrypt hash; the plaintext is never stored.
	CreatedAt      time.Time // Timestamp of registration.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
