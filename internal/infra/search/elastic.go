package search

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/service"
	"shopradar/internal/infra/geo"

	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
)

const (
	// elasticEarthRadiusM is the sphere Elasticsearch uses for arc distances.
	elasticEarthRadiusM = 6371008.7714

	// minElasticRadiusKm keeps a zero radius query from becoming an invalid distance.
	minElasticRadiusKm = 0.001

	// maxElasticRadiusKm is half the circumference of the arc sphere; a filter
	// of this size already covers every point.
	maxElasticRadiusKm = math.Pi * elasticEarthRadiusM / 1000

	defaultElasticPageSize = 1000

	// maxElasticPageSize bounds both the search page and the ID list handed to
	// the store per hydration query.
	maxElasticPageSize = 10000
)

// shopDocument is the document stored per shop. Only the ID and location are
// indexed; full rows are loaded from the store after the geo filter.
type shopDocument struct {
	ID       int64            `json:"id"`
	Location elastic.GeoPoint `json:"location"`
}

var shopIndexMapping = map[string]any{
	"mappings": map[string]any{
		"properties": map[string]any{
			"id":       map[string]any{"type": "long"},
			"location": map[string]any{"type": "geo_point"},
		},
	},
}

// ElasticEngine narrows candidates with an Elasticsearch geo_distance filter
// and then loads and refines the matching rows from the store.
type ElasticEngine struct {
	client   *elastic.Client
	index    string
	pageSize int
	source   ShopSource
	observer Observer
	logger   *slog.Logger
}

var (
	_ service.ProximitySearcher = (*ElasticEngine)(nil)
	_ service.ShopIndexer       = (*ElasticEngine)(nil)
)

// NewElasticClient builds a client for the configured cluster without
// contacting it.
func NewElasticClient(cfg *config.ElasticConfig) (*elastic.Client, error) {
	if cfg == nil || len(cfg.URLs) == 0 {
		return nil, errors.New("elastic search engine requires at least one URL")
	}

	client, err := elastic.NewClient(
		elastic.SetURL(cfg.URLs...),
		elastic.SetSniff(cfg.Sniff),
		elastic.SetHealthcheck(false),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create elastic client")
	}

	return client, nil
}

func NewElasticEngine(
	client *elastic.Client,
	index string,
	pageSize int,
	source ShopSource,
	observer Observer,
	logger *slog.Logger,
) *ElasticEngine {
	if pageSize <= 0 {
		pageSize = defaultElasticPageSize
	}
	pageSize = min(pageSize, maxElasticPageSize)

	return &ElasticEngine{
		client:   client,
		index:    index,
		pageSize: pageSize,
		source:   source,
		observer: observerOrNoop(observer),
		logger:   logger,
	}
}

func (e *ElasticEngine) Engine() string {
	return constants.SearchEngineElastic
}

// EnsureIndex creates the shop index with its geo_point mapping when missing.
func (e *ElasticEngine) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.IndexExists(e.index).Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to check index %s", e.index)
	}
	if exists {
		return nil
	}

	created, err := e.client.CreateIndex(e.index).BodyJson(shopIndexMapping).Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to create index %s", e.index)
	}
	if !created.Acknowledged {
		e.logger.Warn("Index creation was not acknowledged", slog.String("index", e.index))
	}

	return nil
}

// Reindex writes a document for every shop in the store.
func (e *ElasticEngine) Reindex(ctx context.Context) error {
	shops, err := e.source.ListAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load shops for reindex")
	}
	if len(shops) == 0 {
		return nil
	}

	bulk := e.client.Bulk().Index(e.index).Refresh("wait_for")
	for _, shop := range shops {
		bulk.Add(elastic.NewBulkIndexRequest().Id(documentID(shop.ID)).Doc(newShopDocument(shop)))
	}

	resp, err := bulk.Do(ctx)
	if err != nil {
		return errors.Wrap(err, "bulk reindex failed")
	}
	if resp.Errors {
		failed := resp.Failed()
		return errors.Errorf("bulk reindex failed for %d of %d shops", len(failed), len(shops))
	}

	e.logger.Info("Reindexed shops", slog.String("index", e.index), slog.Int("count", len(shops)))

	return nil
}

func (e *ElasticEngine) Upsert(ctx context.Context, shop *entity.Shop) error {
	if shop == nil {
		return nil
	}

	_, err := e.client.Index().
		Index(e.index).
		Id(documentID(shop.ID)).
		BodyJson(newShopDocument(shop)).
		Refresh("wait_for").
		Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to index shop %d", shop.ID)
	}

	return nil
}

func (e *ElasticEngine) Remove(ctx context.Context, shopID int64) error {
	_, err := e.client.Delete().
		Index(e.index).
		Id(documentID(shopID)).
		Refresh("wait_for").
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return errors.Wrapf(err, "failed to remove shop %d from index", shopID)
	}

	return nil
}

func (e *ElasticEngine) Search(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]entity.ShopMatch, error) {
	start := time.Now()

	candidates, err := e.candidates(ctx, center, radiusKm)
	if err != nil {
		return nil, err
	}

	matches := refine(center.Point(), radiusKm, candidates)
	e.observer.ObserveSearch(e.Engine(), time.Since(start), len(candidates), len(matches))

	return matches, nil
}

// candidateQuery filters documents to a sphere around center that contains
// the ellipsoidal radius. Radii covering the whole ellipsoid match everything.
func candidateQuery(center entity.Coordinate, radiusKm float64) elastic.Query {
	if radiusKm >= geo.MaxDistanceKm {
		return elastic.NewMatchAllQuery()
	}

	filterKm := geo.SphereSearchRadiusKm(radiusKm, elasticEarthRadiusM)
	filterKm = min(max(filterKm, minElasticRadiusKm), maxElasticRadiusKm)

	return elastic.NewBoolQuery().Filter(
		elastic.NewGeoDistanceQuery("location").
			Point(center.Latitude, center.Longitude).
			Distance(strconv.FormatFloat(filterKm, 'f', 6, 64) + "km").
			DistanceType("arc"),
	)
}

// candidates walks the matching documents with search_after and loads each
// page of shops from the store as it arrives.
func (e *ElasticEngine) candidates(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Shop, error) {
	query := candidateQuery(center, radiusKm)

	shops := make([]*entity.Shop, 0)
	var searchAfter []any
	for {
		svc := e.client.Search().
			Index(e.index).
			Query(query).
			FetchSource(false).
			Size(e.pageSize).
			SortBy(elastic.NewFieldSort("id").Asc())
		if searchAfter != nil {
			svc = svc.SearchAfter(searchAfter...)
		}

		result, err := svc.Do(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "elastic geo search failed")
		}
		if result.Hits == nil || len(result.Hits.Hits) == 0 {
			return shops, nil
		}

		page, err := e.loadPage(ctx, result.Hits.Hits)
		if err != nil {
			return nil, err
		}
		shops = append(shops, page...)

		if len(result.Hits.Hits) < e.pageSize {
			return shops, nil
		}
		searchAfter = result.Hits.Hits[len(result.Hits.Hits)-1].Sort
		if len(searchAfter) == 0 {
			return shops, nil
		}
	}
}

func (e *ElasticEngine) loadPage(ctx context.Context, hits []*elastic.SearchHit) ([]*entity.Shop, error) {
	ids := make([]int64, 0, len(hits))
	for _, hit := range hits {
		id, err := strconv.ParseInt(hit.Id, 10, 64)
		if err != nil {
			e.logger.Warn("Skipping document with non-numeric id",
				slog.String("index", e.index),
				slog.String("id", hit.Id))
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	shops, err := e.source.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate shops")
	}

	return shops, nil
}

func newShopDocument(shop *entity.Shop) shopDocument {
	return shopDocument{
		ID:       shop.ID,
		Location: elastic.GeoPoint{Lat: shop.Latitude, Lon: shop.Longitude},
	}
}

func documentID(id int64) string {
	return strconv.FormatInt(id, 10)
}
