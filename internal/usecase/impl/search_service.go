package impl

import (
	"context"
	"log/slog"
	"math"

	"shopradar/config"
	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/service"
	"shopradar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type searchService struct {
	searcher        service.ProximitySearcher
	defaultRadiusKm float64
	logger          *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Searcher service.ProximitySearcher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	radius := constants.DefaultSearchRadiusKm
	if params.Config != nil && params.Config.Search != nil && params.Config.Search.DefaultRadiusKm > 0 {
		radius = params.Config.Search.DefaultRadiusKm
	}

	return &searchService{
		searcher:        params.Searcher,
		defaultRadiusKm: radius,
		logger:          params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchNearby validates the query and hands it to the configured engine.
// Invalid input never reaches the engine.
func (srv *searchService) SearchNearby(ctx context.Context, input *usecase.SearchInput) ([]entity.ShopMatch, error) {
	center := entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !center.Valid() {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]")
	}

	radiusKm := srv.defaultRadiusKm
	if input.RadiusKm != nil {
		radiusKm = *input.RadiusKm
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm < 0 {
		return nil, domainerrors.ErrValidationFailed.
			WithDetails("radius must be a finite, non-negative number of kilometers")
	}

	matches, err := srv.searcher.Search(ctx, center, radiusKm)
	if err != nil {
		srv.log(ctx).Error("Proximity search failed",
			slog.String("engine", srv.searcher.Engine()),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "proximity search")
	}

	return matches, nil
}
