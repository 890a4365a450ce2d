package search

import (
	"context"
	"math"
	"sync"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/service"
	"shopradar/internal/infra/geo"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// kmPerDegreeLat is the approximate length of one degree of latitude.
const kmPerDegreeLat = 111.0

// GridIndex keeps every shop in memory, bucketed into uniform
// latitude/longitude cells. A query visits only the cells overlapping the
// search boxes and refines the shops found there with the exact distance.
type GridIndex struct {
	mu       sync.RWMutex
	source   ShopSource
	observer Observer

	cellSize float64 // cell edge in degrees
	shops    map[int64]*entity.Shop
	cells    map[gridKey]map[int64]struct{}
}

type gridKey struct {
	latCell int
	lonCell int
}

var (
	_ service.ProximitySearcher = (*GridIndex)(nil)
	_ service.ShopIndexer       = (*GridIndex)(nil)
)

// NewGridIndex creates an empty grid. cellSizeKm is the cell edge along a
// meridian; non-positive values fall back to 1 km.
func NewGridIndex(source ShopSource, cellSizeKm float64, observer Observer) *GridIndex {
	if cellSizeKm <= 0 {
		cellSizeKm = 1
	}

	return &GridIndex{
		source:   source,
		observer: observerOrNoop(observer),
		cellSize: cellSizeKm / kmPerDegreeLat,
		shops:    make(map[int64]*entity.Shop),
		cells:    make(map[gridKey]map[int64]struct{}),
	}
}

func (g *GridIndex) Engine() string {
	return constants.SearchEngineGrid
}

// Load replaces the grid contents with every shop in the store.
func (g *GridIndex) Load(ctx context.Context) error {
	shops, err := g.source.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load shops into grid index")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.shops = make(map[int64]*entity.Shop, len(shops))
	g.cells = make(map[gridKey]map[int64]struct{})
	for _, shop := range shops {
		if shop != nil {
			g.insertLocked(cloneShop(shop))
		}
	}

	return nil
}

// Size returns the number of indexed shops.
func (g *GridIndex) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.shops)
}

// Upsert indexes shop unless the grid already holds a newer version of it.
// Index updates run after commit and may arrive out of order.
func (g *GridIndex) Upsert(_ context.Context, shop *entity.Shop) error {
	if shop == nil {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if current, ok := g.shops[shop.ID]; ok && shop.UpdatedAt.Before(current.UpdatedAt) {
		return nil
	}

	g.removeLocked(shop.ID)
	g.insertLocked(cloneShop(shop))

	return nil
}

func (g *GridIndex) Remove(_ context.Context, shopID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.removeLocked(shopID)

	return nil
}

func (g *GridIndex) Search(_ context.Context, center entity.Coordinate, radiusKm float64) ([]entity.ShopMatch, error) {
	start := time.Now()
	bounds := geo.SearchBounds(center.Point(), radiusKm)

	g.mu.RLock()
	candidates := g.candidatesLocked(bounds)
	g.mu.RUnlock()

	matches := refine(center.Point(), radiusKm, candidates)
	g.observer.ObserveSearch(g.Engine(), time.Since(start), len(candidates), len(matches))

	return matches, nil
}

func (g *GridIndex) candidatesLocked(bounds []orb.Bound) []*entity.Shop {
	// Walking more cells than there are shops is slower than checking every shop.
	if g.cellCount(bounds) > len(g.shops) {
		candidates := make([]*entity.Shop, 0, len(g.shops))
		for _, shop := range g.shops {
			if geo.BoundsContain(bounds, shop.Location().Point()) {
				candidates = append(candidates, cloneShop(shop))
			}
		}

		return candidates
	}

	seen := make(map[int64]struct{})
	candidates := make([]*entity.Shop, 0)
	for _, bound := range bounds {
		minKey := g.key(bound.Min.Lat(), bound.Min.Lon())
		maxKey := g.key(bound.Max.Lat(), bound.Max.Lon())

		for latCell := minKey.latCell; latCell <= maxKey.latCell; latCell++ {
			for lonCell := minKey.lonCell; lonCell <= maxKey.lonCell; lonCell++ {
				for id := range g.cells[gridKey{latCell: latCell, lonCell: lonCell}] {
					if _, ok := seen[id]; ok {
						continue
					}
					seen[id] = struct{}{}
					candidates = append(candidates, cloneShop(g.shops[id]))
				}
			}
		}
	}

	return candidates
}

func (g *GridIndex) cellCount(bounds []orb.Bound) int {
	total := 0
	for _, bound := range bounds {
		minKey := g.key(bound.Min.Lat(), bound.Min.Lon())
		maxKey := g.key(bound.Max.Lat(), bound.Max.Lon())
		total += (maxKey.latCell - minKey.latCell + 1) * (maxKey.lonCell - minKey.lonCell + 1)
	}

	return total
}

func (g *GridIndex) key(lat, lon float64) gridKey {
	return gridKey{
		latCell: int(math.Floor(lat / g.cellSize)),
		lonCell: int(math.Floor(lon / g.cellSize)),
	}
}

func (g *GridIndex) insertLocked(shop *entity.Shop) {
	g.shops[shop.ID] = shop

	key := g.key(shop.Latitude, shop.Longitude)
	cell, ok := g.cells[key]
	if !ok {
		cell = make(map[int64]struct{})
		g.cells[key] = cell
	}
	cell[shop.ID] = struct{}{}
}

func (g *GridIndex) removeLocked(shopID int64) {
	shop, ok := g.shops[shopID]
	if !ok {
		return
	}
	delete(g.shops, shopID)

	key := g.key(shop.Latitude, shop.Longitude)
	if cell, ok := g.cells[key]; ok {
		delete(cell, shopID)
		if len(cell) == 0 {
			delete(g.cells, key)
		}
	}
}

func cloneShop(shop *entity.Shop) *entity.Shop {
	copied := *shop
	copied.Details = entity.ShopDetails{
		Description:      cloneString(shop.Details.Description),
		Phone:            cloneString(shop.Details.Phone),
		Email:            cloneString(shop.Details.Email),
		Website:          cloneString(shop.Details.Website),
		OpeningHours:     cloneString(shop.Details.OpeningHours),
		BusinessCategory: cloneString(shop.Details.BusinessCategory),
		Address:          cloneString(shop.Details.Address),
	}

	return &copied
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s

	return &v
}
