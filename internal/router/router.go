// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/happyhours/backend/internal/handler"
	"github.com/happyhours/backend/internal/middleware"
	"github.com/happyhours/backend/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware. Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	if limiter != nil {
		g.Use(limiter)
	}
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Issue a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout accepts a refresh token in the body or a bearer token; it does
	// not require the JWT middleware.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleClient, model.RolePartner))
	auth.GET("/me", a.Me)
}

// RegisterPartner registers partner-only management routes: establishments,
// menu items and the cross-establishment order history.
func RegisterPartner(e *echo.Echo, p *handler.PartnerHandler, o *handler.OrderHandler, jwtSecret string) {
	g := e.Group("/v1/partner")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RolePartner))
	g.POST("/establishments", p.CreateEstablishment)
	g.GET("/establishments", p.ListMyEstablishments)
	g.PUT("/establishments/:id/happyhours", p.UpdateHappyHours)
	g.POST("/establishments/:id/beverages", p.CreateBeverage)
	g.GET("/orders", o.PartnerOrders)
}

// RegisterClient registers client-facing routes: public menu browsing plus
// authenticated order placement and history.
func RegisterClient(e *echo.Echo, p *handler.PartnerHandler, o *handler.OrderHandler, jwtSecret string) {
	// Venue and menu browsing are public so clients can look before
	// registering.
	e.GET("/v1/establishments/:id", p.GetEstablishment)
	e.GET("/v1/establishments/:id/beverages", p.ListBeverages)

	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole(model.RoleClient))
	g.POST("/orders", o.PlaceOrder)
	g.GET("/orders", o.MyOrders)
}

// RegisterRealtime registers the partner order feed. Authentication and
// authorization happen inside the handler, before the WebSocket upgrade,
// so no JWT middleware is applied here.
func RegisterRealtime(e *echo.Echo, r *handler.RealtimeHandler) {
	e.GET("/v1/realtime/orders/:establishment_id", r.OrderFeed)
}
