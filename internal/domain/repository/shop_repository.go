package repository

import (
	"context"
	"errors"

	"shopradar/internal/domain/entity"

	"github.com/paulmach/orb"
)

// ErrShopNotFound is returned when no shop matches both the shop ID and the owning vendor ID.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the persistence operations for shops.
type ShopRepository interface {
	// Create persists a new shop and fills in its generated ID and timestamps.
	Create(ctx context.Context, shop *entity.Shop) error

	// FindByIDAndVendor returns the shop only when it exists AND belongs to vendorID.
	FindByIDAndVendor(ctx context.Context, shopID, vendorID int64) (*entity.Shop, error)

	// FindByVendor lists the vendor's shops ordered by ID.
	FindByVendor(ctx context.Context, vendorID int64) ([]*entity.Shop, error)

	// Update overwrites every mutable column of the shop row.
	Update(ctx context.Context, shop *entity.Shop) error

	// Delete hard-deletes the shop owned by vendorID.
	Delete(ctx context.Context, shopID, vendorID int64) error

	// ListAll returns every shop; used as the full candidate set by proximity search.
	ListAll(ctx context.Context) ([]*entity.Shop, error)

	// FindWithinBounds returns shops whose coordinate falls inside any of the boxes.
	FindWithinBounds(ctx context.Context, bounds []orb.Bound) ([]*entity.Shop, error)

	// FindByIDs loads the shops with the given IDs; unknown IDs are skipped.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Shop, error)
}
