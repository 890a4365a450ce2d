package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"shopradar/internal/delivery/api/response"
	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	ShopUC usecase.ShopUsecase
	Logger *slog.Logger
}

// ShopHandler serves the authenticated shop management endpoints.
type ShopHandler struct {
	shopUC usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		shopUC: params.ShopUC,
		logger: params.Logger,
	}
}

// ShopRequest is the body of shop create and update. It has no owner field;
// any vendor_id or id sent by the client is ignored.
type ShopRequest struct {
	Name      *string  `json:"name" validate:"required,max=255"`
	Type      *string  `json:"type" validate:"required,max=100"`
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`

	Description      *string `json:"description"`
	Phone            *string `json:"phone" validate:"omitempty,max=50"`
	Email            *string `json:"email" validate:"omitempty,email,max=255"`
	Website          *string `json:"website" validate:"omitempty,max=255"`
	OpeningHours     *string `json:"opening_hours"`
	BusinessCategory *string `json:"business_category" validate:"omitempty,max=100"`
	Address          *string `json:"address"`
}

// ShopResponse is the public view of a shop. Absent optional fields are null.
type ShopResponse struct {
	ID               int64   `json:"id"`
	VendorID         int64   `json:"vendor_id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Description      *string `json:"description"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	Website          *string `json:"website"`
	OpeningHours     *string `json:"opening_hours"`
	BusinessCategory *string `json:"business_category"`
	Address          *string `json:"address"`
}

const shopDeletedMessage = "Shop deleted successfully"

// CreateShop creates a shop owned by the caller.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	vendorID, ok := deliverycontext.GetVendorID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	input, err := bindShopInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.CreateShop(c.Request().Context(), vendorID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// ListShops lists the caller's shops.
func (h *ShopHandler) ListShops(c echo.Context) error {
	vendorID, ok := deliverycontext.GetVendorID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	shops, err := h.shopUC.ListShops(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ShopResponse, 0, len(shops))
	for _, shop := range shops {
		out = append(out, toShopResponse(shop))
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateShop replaces one of the caller's shops.
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	vendorID, ok := deliverycontext.GetVendorID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	shopID, ok := parseShopID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrShopNotFound)
	}

	input, err := bindShopInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.shopUC.UpdateShop(c.Request().Context(), vendorID, shopID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toShopResponse(shop))
}

// DeleteShop deletes one of the caller's shops.
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	vendorID, ok := deliverycontext.GetVendorID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	shopID, ok := parseShopID(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrShopNotFound)
	}

	if err := h.shopUC.DeleteShop(c.Request().Context(), vendorID, shopID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Detail(c, http.StatusOK, shopDeletedMessage)
}

// bindShopInput binds and validates the body into a use case input.
func bindShopInput(c echo.Context) (*usecase.ShopInput, error) {
	var req ShopRequest
	if err := c.Bind(&req); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("Invalid shop input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &usecase.ShopInput{
		Name:      *req.Name,
		Type:      *req.Type,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Details: entity.ShopDetails{
			Description:      req.Description,
			Phone:            req.Phone,
			Email:            req.Email,
			Website:          req.Website,
			OpeningHours:     req.OpeningHours,
			BusinessCategory: req.BusinessCategory,
			Address:          req.Address,
		},
	}, nil
}

// parseShopID accepts only positive decimal IDs; anything else cannot name a shop.
func parseShopID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func toShopResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:               shop.ID,
		VendorID:         shop.VendorID,
		Name:             shop.Name,
		Type:             shop.Type,
		Latitude:         shop.Latitude,
		Longitude:        shop.Longitude,
		Description:      shop.Details.Description,
		Phone:            shop.Details.Phone,
		Email:            shop.Details.Email,
		Website:          shop.Details.Website,
		OpeningHours:     shop.Details.OpeningHours,
		BusinessCategory: shop.Details.BusinessCategory,
		Address:          shop.Details.Address,
	}
}
