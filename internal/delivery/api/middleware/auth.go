package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "shopradar/internal/delivery/context"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	Logger       *slog.Logger
}

// AuthMiddleware resolves the calling vendor from a bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		logger:   params.Logger,
	}
}

// Authenticate rejects the request with 401 unless it carries a valid
// "Authorization: Bearer <token>" header, and stores the vendor ID otherwise.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		scheme, token, found := strings.Cut(c.Request().Header.Get(echo.HeaderAuthorization), " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected bearer token", slog.Any("error", err))

			return domainerrors.ErrUnauthenticated.WrapMessage("invalid bearer token")
		}

		deliverycontext.SetVendorID(c, claims.VendorID)
		ctx := deliverycontext.WithLogAttrs(c.Request().Context(), m.logger, slog.Int64("vendor_id", claims.VendorID))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
