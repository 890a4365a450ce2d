package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
)

// SearchInput describes a proximity query. A nil RadiusKm selects the configured default.
type SearchInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  *float64
}

// SearchUsecase answers public proximity queries.
type SearchUsecase interface {
	SearchNearby(ctx context.Context, input *SearchInput) ([]entity.ShopMatch, error)
}
