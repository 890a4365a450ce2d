// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shopradar/internal/domain/entity"
)

// ErrVendorNotFound is returned when no vendor matches the lookup.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the persistence operations for vendor accounts.
type VendorRepository interface {
	// Create persists a new vendor and fills in its generated ID and timestamps.
	Create(ctx context.Context, vendor *entity.Vendor) error

	// FindByID retrieves a vendor by its numeric ID.
	FindByID(ctx context.Context, id int64) (*entity.Vendor, error)

	// FindByUsername retrieves a vendor by login name.
	FindByUsername(ctx context.Context, username string) (*entity.Vendor, error)

	// ExistsByUsernameOrEmail reports whether any vendor already uses the username OR the email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
