package service

import (
	"context"

	"shopradar/internal/domain/entity"
)

// ProximitySearcher finds shops within a radius of a point.
//
// Every implementation honours the same contract: a shop is returned iff its
// ellipsoidal distance from center is <= radiusKm, results are ordered by
// ascending distance with ties broken by shop ID, and an empty result is not
// an error.
type ProximitySearcher interface {
	// Engine names the backing implementation, used for metrics and logs.
	Engine() string

	// Search runs the query. center must be valid and radiusKm >= 0.
	Search(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]entity.ShopMatch, error)
}

// ShopIndexer keeps a stateful search engine in step with committed shop writes.
type ShopIndexer interface {
	// Upsert adds or moves a shop in the index.
	Upsert(ctx context.Context, shop *entity.Shop) error

	// Remove drops a shop from the index.
	Remove(ctx context.Context, shopID int64) error
}
