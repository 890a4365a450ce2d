package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"shopradar/internal/delivery/api/response"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves the public proximity search.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// SearchResult is a shop plus its distance from the query point.
type SearchResult struct {
	ShopResponse
	DistanceKm float64 `json:"distance_km"`
}

// Search handles GET /search?lat=..&lon=..&radius=..
func (h *SearchHandler) Search(c echo.Context) error {
	lat, err := requiredFloatQuery(c, "lat", "latitude")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	lon, err := requiredFloatQuery(c, "lon", "longitude")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.SearchInput{Latitude: lat, Longitude: lon}
	if raw := strings.TrimSpace(c.QueryParam("radius")); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("radius must be a number"))
		}
		input.RadiusKm = &radius
	}

	matches, err := h.searchUC.SearchNearby(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSearchResults(matches))
}

// requiredFloatQuery reads the first present of names as a float.
func requiredFloatQuery(c echo.Context, names ...string) (float64, error) {
	for _, name := range names {
		raw := strings.TrimSpace(c.QueryParam(name))
		if raw == "" {
			continue
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, domainerrors.ErrValidationFailed.WithDetails(names[0] + " must be a number")
		}

		return value, nil
	}

	return 0, domainerrors.ErrValidationFailed.WithDetails(names[0] + " is required")
}

func toSearchResults(matches []entity.ShopMatch) []SearchResult {
	out := make([]SearchResult, 0, len(matches))
	for _, match := range matches {
		out = append(out, SearchResult{
			ShopResponse: toShopResponse(match.Shop),
			DistanceKm:   match.DistanceKm,
		})
	}

	return out
}
