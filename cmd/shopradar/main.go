package main

import (
	"context"
	"log/slog"
	"os"

	"shopradar/config"
	"shopradar/internal/delivery"
	"shopradar/internal/delivery/api"
	apimiddleware "shopradar/internal/delivery/api/middleware"
	"shopradar/internal/delivery/api/router/handler"
	"shopradar/internal/delivery/worker"
	workerhandler "shopradar/internal/delivery/worker/handler"
	"shopradar/internal/infra/auth"
	logs "shopradar/internal/infra/log"
	"shopradar/internal/infra/metrics"
	"shopradar/internal/infra/persistence/postgres"
	"shopradar/internal/infra/pubsub"
	"shopradar/internal/infra/search"
	"shopradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		newMetrics,
	)
}

// newMetrics returns nil when metrics are disabled; every consumer treats a
// nil recorder as a no-op.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewVendorRepository,
			postgres.NewShopRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			search.New,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVendorService,
			impl.NewShopService,
			impl.NewSearchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewVendorHandler,
			handler.NewShopHandler,
			handler.NewSearchHandler,
			workerhandler.NewShopEventHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
