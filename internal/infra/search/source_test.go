package search

import (
	"context"
	"slices"
	"sync"

	"shopradar/internal/domain/entity"
	"shopradar/internal/infra/geo"

	"github.com/paulmach/orb"
)

// memorySource is an in-memory ShopSource for engine tests.
type memorySource struct {
	mu    sync.Mutex
	shops map[int64]*entity.Shop

	listAllCalls int
	boundsCalls  int
	idBatches    []int
}

func newMemorySource(shops ...*entity.Shop) *memorySource {
	src := &memorySource{shops: make(map[int64]*entity.Shop)}
	for _, shop := range shops {
		src.shops[shop.ID] = shop
	}

	return src
}

func (s *memorySource) put(shop *entity.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shops[shop.ID] = shop
}

func (s *memorySource) delete(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.shops, id)
}

func (s *memorySource) sorted() []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		shops = append(shops, shop)
	}
	slices.SortFunc(shops, func(a, b *entity.Shop) int { return int(a.ID - b.ID) })

	return shops
}

func (s *memorySource) ListAll(context.Context) ([]*entity.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listAllCalls++

	return s.sorted(), nil
}

func (s *memorySource) FindWithinBounds(_ context.Context, bounds []orb.Bound) ([]*entity.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boundsCalls++

	var shops []*entity.Shop
	for _, shop := range s.sorted() {
		if geo.BoundsContain(bounds, shop.Location().Point()) {
			shops = append(shops, shop)
		}
	}

	return shops, nil
}

func (s *memorySource) FindByIDs(_ context.Context, ids []int64) ([]*entity.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idBatches = append(s.idBatches, len(ids))

	var shops []*entity.Shop
	for _, id := range ids {
		if shop, ok := s.shops[id]; ok {
			shops = append(shops, shop)
		}
	}

	return shops, nil
}

func newShop(id int64, name string, lat, lon float64) *entity.Shop {
	return &entity.Shop{ID: id, VendorID: 1, Name: name, Type: "cafe", Latitude: lat, Longitude: lon}
}
