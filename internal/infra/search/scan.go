package search

import (
	"context"
	"time"

	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/service"
	"shopradar/internal/infra/geo"

	"github.com/pkg/errors"
)

// ScanEngine re-reads the candidate set from the store on every query and
// computes the exact distance to each candidate. It keeps no state between
// calls, so results are read-committed at query time.
type ScanEngine struct {
	source    ShopSource
	prefilter bool
	observer  Observer
}

var (
	_ service.ProximitySearcher = (*ScanEngine)(nil)
	_ service.ShopIndexer       = (*ScanEngine)(nil)
)

// NewScanEngine creates a scan engine. With prefilter set, the store is asked
// only for shops inside the query's bounding boxes instead of every shop.
func NewScanEngine(source ShopSource, prefilter bool, observer Observer) *ScanEngine {
	return &ScanEngine{
		source:    source,
		prefilter: prefilter,
		observer:  observerOrNoop(observer),
	}
}

func (e *ScanEngine) Engine() string {
	return constants.SearchEngineScan
}

func (e *ScanEngine) Search(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]entity.ShopMatch, error) {
	start := time.Now()

	var (
		candidates []*entity.Shop
		err        error
	)
	if e.prefilter {
		candidates, err = e.source.FindWithinBounds(ctx, geo.SearchBounds(center.Point(), radiusKm))
	} else {
		candidates, err = e.source.ListAll(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate shops")
	}

	matches := refine(center.Point(), radiusKm, candidates)
	e.observer.ObserveSearch(e.Engine(), time.Since(start), len(candidates), len(matches))

	return matches, nil
}

// Upsert is a no-op: the scan engine reads the store directly.
func (e *ScanEngine) Upsert(context.Context, *entity.Shop) error {
	return nil
}

// Remove is a no-op: the scan engine reads the store directly.
func (e *ScanEngine) Remove(context.Context, int64) error {
	return nil
}
