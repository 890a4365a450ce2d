package search

import (
	"context"
	"log/slog"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/lifecycle"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the search engine provider.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Shops   repository.ShopRepository
	Metrics *metrics.Metrics `optional:"true"`
}

// Result exposes the configured engine as both the searcher and the indexer
// kept in sync by shop writes.
type Result struct {
	fx.Out

	Searcher service.ProximitySearcher
	Indexer  service.ShopIndexer
}

// New builds the engine selected by search.engine and registers its warm-up
// on application start.
func New(params Params) (Result, error) {
	cfg := params.Config.Search
	if cfg == nil {
		cfg = &config.SearchConfig{Engine: constants.SearchEngineScan}
	}

	var observer Observer
	if params.Metrics != nil {
		observer = params.Metrics
	}

	switch cfg.Engine {
	case "", constants.SearchEngineScan:
		engine := NewScanEngine(params.Shops, cfg.StorePrefilter, observer)
		params.Logger.Info("Proximity search engine selected", slog.String("engine", engine.Engine()))

		return Result{Searcher: engine, Indexer: engine}, nil

	case constants.SearchEngineGrid:
		engine := NewGridIndex(params.Shops, cfg.GridCellSizeKm, observer)
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := engine.Load(ctx); err != nil {
					return err
				}
				params.Logger.Info("Proximity search engine selected",
					slog.String("engine", engine.Engine()),
					slog.Int("shops", engine.Size()))

				return nil
			},
		})

		return Result{Searcher: engine, Indexer: engine}, nil

	case constants.SearchEngineElastic:
		client, err := NewElasticClient(cfg.Elastic)
		if err != nil {
			return Result{}, err
		}
		engine := NewElasticEngine(client, cfg.Elastic.Index, cfg.Elastic.PageSize, params.Shops, observer, params.Logger)
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := engine.EnsureIndex(ctx); err != nil {
					return err
				}
				if err := engine.Reindex(ctx); err != nil {
					return err
				}
				params.Logger.Info("Proximity search engine selected", slog.String("engine", engine.Engine()))

				return nil
			},
			OnStop: func(context.Context) error {
				client.Stop()

				return nil
			},
		})

		return Result{Searcher: engine, Indexer: engine}, nil

	default:
		return Result{}, errors.Errorf("unknown search engine %q", cfg.Engine)
	}
}
