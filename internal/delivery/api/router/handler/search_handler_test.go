package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockUC "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockSearchUsecase) {
	uc := mockUC.NewMockSearchUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{SearchUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.GET("/search", h.Search)

	return e, uc
}

func TestSearchHandler_Search(t *testing.T) {
	e, uc := newSearchTestEcho(t)

	uc.EXPECT().
		SearchNearby(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Latitude == 40.7829 && in.Longitude == -73.9654 && in.RadiusKm == nil
		})).
		Return([]entity.ShopMatch{
			{Shop: &entity.Shop{ID: 1, VendorID: 3, Name: "Park"}, DistanceKm: 0},
			{Shop: &entity.Shop{ID: 2, VendorID: 4, Name: "Times Sq"}, DistanceKm: 3.1},
		}, nil)

	rec := doJSON(e, http.MethodGet, "/search?lat=40.7829&lon=-73.9654", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, 3.1, got[1].DistanceKm)
}

func TestSearchHandler_RadiusAndAliases(t *testing.T) {
	e, uc := newSearchTestEcho(t)

	uc.EXPECT().
		SearchNearby(mock.Anything, mock.MatchedBy(func(in *usecase.SearchInput) bool {
			return in.Latitude == 51.5074 && in.Longitude == -0.1278 && in.RadiusKm != nil && *in.RadiusKm == 1
		})).
		Return([]entity.ShopMatch{}, nil)

	rec := doJSON(e, http.MethodGet, "/search?latitude=51.5074&longitude=-0.1278&radius=1.0", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSearchHandler_RejectsBadQuery(t *testing.T) {
	for _, query := range []string{
		"",
		"lat=40",
		"lon=-73",
		"lat=abc&lon=0",
		"lat=0&lon=0&radius=far",
	} {
		e, _ := newSearchTestEcho(t)

		rec := doJSON(e, http.MethodGet, "/search?"+query, "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, query)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code, query)
	}
}

func TestSearchHandler_OutOfRangeFromUsecase(t *testing.T) {
	e, uc := newSearchTestEcho(t)

	uc.EXPECT().SearchNearby(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("latitude must be within [-90, 90] and longitude within [-180, 180]"))

	rec := doJSON(e, http.MethodGet, "/search?lat=91&lon=0", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error.Details, "latitude")
}
