// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"math"
	"net/http"
	"time"

	"shopradar/internal/delivery/api/response"
	"shopradar/internal/domain/entity"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler serves registration and login.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler.
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=255"`
	// bcrypt ignores everything past 72 bytes
	Password string `json:"password" validate:"required,max=72"`
}

// TokenRequest is the OAuth2 password-grant form of POST /token; JSON is accepted too.
type TokenRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// VendorResponse is the public view of a vendor.
type VendorResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenResponse follows the OAuth2 access token response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in,omitempty"`
}

// Register handles vendor registration.
func (h *VendorHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	vendor, err := h.vendorUC.Register(c.Request().Context(), &usecase.RegisterVendorInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toVendorResponse(vendor))
}

// Token handles login and returns a bearer token.
func (h *VendorHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.vendorUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTokenResponse(token, time.Now()))
}

func toVendorResponse(vendor *entity.Vendor) VendorResponse {
	return VendorResponse{
		ID:       vendor.ID,
		Username: vendor.Username,
		Email:    vendor.Email,
	}
}

func toTokenResponse(token *entity.AccessToken, now time.Time) TokenResponse {
	resp := TokenResponse{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
	}
	if !token.ExpiresAt.IsZero() {
		resp.ExpiresIn = int64(math.Max(0, math.Round(token.ExpiresAt.Sub(now).Seconds())))
	}

	return resp
}
