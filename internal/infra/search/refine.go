// Package search contains the proximity search engines. Every engine narrows
// the candidate set its own way and then hands the candidates to refine, so
// distance semantics, boundary inclusion and ordering are identical across
// engines.
package search

import (
	"context"
	"slices"
	"time"

	"shopradar/internal/domain/entity"
	"shopradar/internal/infra/geo"

	"github.com/paulmach/orb"
)

// ShopSource is the read side of shop storage used by the engines.
type ShopSource interface {
	ListAll(ctx context.Context) ([]*entity.Shop, error)
	FindWithinBounds(ctx context.Context, bounds []orb.Bound) ([]*entity.Shop, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Shop, error)
}

// Observer receives one record per completed search.
type Observer interface {
	ObserveSearch(engine string, elapsed time.Duration, candidates, results int)
}

type noopObserver struct{}

func (noopObserver) ObserveSearch(string, time.Duration, int, int) {}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return noopObserver{}
	}

	return o
}

// refine keeps the candidates whose exact distance from center is within
// radiusKm (inclusive) and orders them by distance, then by shop ID.
func refine(center orb.Point, radiusKm float64, candidates []*entity.Shop) []entity.ShopMatch {
	matches := make([]entity.ShopMatch, 0)
	for _, shop := range candidates {
		if shop == nil {
			continue
		}

		distance := geo.DistanceKm(center, shop.Location().Point())
		if distance <= radiusKm {
			matches = append(matches, entity.ShopMatch{Shop: shop, DistanceKm: distance})
		}
	}

	slices.SortFunc(matches, compareMatches)

	return matches
}

func compareMatches(a, b entity.ShopMatch) int {
	switch {
	case a.DistanceKm < b.DistanceKm:
		return -1
	case a.DistanceKm > b.DistanceKm:
		return 1
	case a.Shop.ID < b.Shop.ID:
		return -1
	case a.Shop.ID > b.Shop.ID:
		return 1
	default:
		return 0
	}
}
