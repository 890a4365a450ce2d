package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
)

// ShopInput is the client-supplied content of a shop. It carries no owner:
// the owning vendor always comes from the authenticated caller.
type ShopInput struct {
	Name      string
	Type      string
	Latitude  float64
	Longitude float64
	Details   entity.ShopDetails
}

// ShopUsecase manages a vendor's own shops. Every operation is scoped to vendorID,
// and a shop owned by someone else is reported exactly like a missing one.
type ShopUsecase interface {
	CreateShop(ctx context.Context, vendorID int64, input *ShopInput) (*entity.Shop, error)
	ListShops(ctx context.Context, vendorID int64) ([]*entity.Shop, error)

	// UpdateShop replaces every mutable field; omitted optional fields are cleared.
	UpdateShop(ctx context.Context, vendorID, shopID int64, input *ShopInput) (*entity.Shop, error)
	DeleteShop(ctx context.Context, vendorID, shopID int64) error
}
