package impl

import (
	"context"
	"math"
	"testing"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockSvc "shopradar/internal/mocks/service"
	"shopradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSearchService(t *testing.T, cfg *config.Config) (usecase.SearchUsecase, *mockSvc.MockProximitySearcher) {
	searcher := mockSvc.NewMockProximitySearcher(t)

	return NewSearchService(SearchServiceParams{
		Searcher: searcher,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	}), searcher
}

func radius(km float64) *float64 {
	return &km
}

func TestSearchService_DefaultRadius(t *testing.T) {
	svc, searcher := createTestSearchService(t, nil)
	ctx := context.Background()
	center := entity.Coordinate{Latitude: 40.7829, Longitude: -73.9654}
	matches := []entity.ShopMatch{{Shop: &entity.Shop{ID: 1}, DistanceKm: 0}}

	searcher.EXPECT().Search(ctx, center, 5.0).Return(matches, nil)

	got, err := svc.SearchNearby(ctx, &usecase.SearchInput{Latitude: 40.7829, Longitude: -73.9654})

	require.NoError(t, err)
	assert.Equal(t, matches, got)
}

func TestSearchService_ConfiguredDefaultRadius(t *testing.T) {
	cfg := &config.Config{Search: &config.SearchConfig{DefaultRadiusKm: 2.5}}
	svc, searcher := createTestSearchService(t, cfg)
	ctx := context.Background()

	searcher.EXPECT().Search(ctx, entity.Coordinate{Latitude: 1, Longitude: 2}, 2.5).Return([]entity.ShopMatch{}, nil)

	got, err := svc.SearchNearby(ctx, &usecase.SearchInput{Latitude: 1, Longitude: 2})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchService_ExplicitRadius(t *testing.T) {
	for _, km := range []float64{0, 1, 20000} {
		svc, searcher := createTestSearchService(t, nil)
		ctx := context.Background()

		searcher.EXPECT().Search(ctx, entity.Coordinate{Latitude: 51.5074, Longitude: -0.1278}, km).Return([]entity.ShopMatch{}, nil)

		_, err := svc.SearchNearby(ctx, &usecase.SearchInput{Latitude: 51.5074, Longitude: -0.1278, RadiusKm: radius(km)})
		require.NoError(t, err)
	}
}

func TestSearchService_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.SearchInput
	}{
		{name: "latitude above 90", input: &usecase.SearchInput{Latitude: 91, Longitude: 0}},
		{name: "latitude below -90", input: &usecase.SearchInput{Latitude: -90.0001, Longitude: 0}},
		{name: "longitude below -180", input: &usecase.SearchInput{Latitude: 0, Longitude: -181}},
		{name: "longitude above 180", input: &usecase.SearchInput{Latitude: 0, Longitude: 180.5}},
		{name: "NaN latitude", input: &usecase.SearchInput{Latitude: math.NaN(), Longitude: 0}},
		{name: "negative radius", input: &usecase.SearchInput{RadiusKm: radius(-1)}},
		{name: "NaN radius", input: &usecase.SearchInput{RadiusKm: radius(math.NaN())}},
		{name: "infinite radius", input: &usecase.SearchInput{RadiusKm: radius(math.Inf(1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The searcher has no expectations, so reaching it fails the test.
			svc, _ := createTestSearchService(t, nil)

			got, err := svc.SearchNearby(context.Background(), tt.input)

			assert.Nil(t, got)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestSearchService_AcceptsBoundaryCoordinates(t *testing.T) {
	for _, c := range []entity.Coordinate{{Latitude: 90, Longitude: 180}, {Latitude: -90, Longitude: -180}} {
		svc, searcher := createTestSearchService(t, nil)
		searcher.EXPECT().Search(context.Background(), c, 5.0).Return([]entity.ShopMatch{}, nil)

		_, err := svc.SearchNearby(context.Background(), &usecase.SearchInput{Latitude: c.Latitude, Longitude: c.Longitude})
		require.NoError(t, err)
	}
}

func TestSearchService_EngineFailure(t *testing.T) {
	svc, searcher := createTestSearchService(t, nil)
	engineErr := errors.New("store unavailable")

	searcher.EXPECT().Search(context.Background(), entity.Coordinate{}, 5.0).Return(nil, engineErr)
	searcher.EXPECT().Engine().Return("scan")

	_, err := svc.SearchNearby(context.Background(), &usecase.SearchInput{})

	assert.ErrorIs(t, err, engineErr)
}
