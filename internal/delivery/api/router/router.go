// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopradar/config"
	"shopradar/internal/delivery/api/middleware"
	"shopradar/internal/delivery/api/router/handler"
	"shopradar/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	VendorHandler  *handler.VendorHandler
	ShopHandler    *handler.ShopHandler
	SearchHandler  *handler.SearchHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics `optional:"true"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	vendorHandler  *handler.VendorHandler
	shopHandler    *handler.ShopHandler
	searchHandler  *handler.SearchHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		vendorHandler:  params.VendorHandler,
		shopHandler:    params.ShopHandler,
		searchHandler:  params.SearchHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Vendor accounts
	e.POST("/register", r.vendorHandler.Register)
	e.POST("/token", r.vendorHandler.Token)

	// Public proximity search
	e.GET("/search", r.searchHandler.Search)

	// Shop management, scoped to the authenticated vendor
	shopsGroup := e.Group("/shops")
	shopsGroup.Use(r.authMiddleware.Authenticate)
	{
		shopsGroup.POST("", r.shopHandler.CreateShop)
		shopsGroup.GET("", r.shopHandler.ListShops)
		shopsGroup.PUT("/:id", r.shopHandler.UpdateShop)
		shopsGroup.DELETE("/:id", r.shopHandler.DeleteShop)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
