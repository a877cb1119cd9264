// Package router contains routing for the console API.
package router

import (
	"portal/internal/delivery/api/middleware"
	"portal/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AddressHandler    *handler.AddressHandler
	CatalogHandler    *handler.CatalogHandler
	ExportHandler     *handler.ExportHandler
	GeocodeHandler    *handler.GeocodeHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	addressHandler    *handler.AddressHandler
	catalogHandler    *handler.CatalogHandler
	exportHandler     *handler.ExportHandler
	geocodeHandler    *handler.GeocodeHandler
	sessionMiddleware *middleware.SessionMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		addressHandler:    params.AddressHandler,
		catalogHandler:    params.CatalogHandler,
		exportHandler:     params.ExportHandler,
		geocodeHandler:    params.GeocodeHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the console.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.sessionMiddleware.RequireSession)
	}

	// Everything below needs a signed-in operator
	requireSession := r.sessionMiddleware.RequireSession

	addressesGroup := e.Group("/addresses", requireSession)
	{
		addressesGroup.GET("", r.catalogHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.GET("/details", r.addressHandler.Details)
		addressesGroup.GET("/export/:format", r.exportHandler.ExportAddresses)
		addressesGroup.GET("/:id", r.addressHandler.OpenDetails)
		addressesGroup.PATCH("/:id", r.addressHandler.EditAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressesGroup.DELETE("/:id/details", r.addressHandler.CloseDetails)
		addressesGroup.PUT("/:id/manager", r.addressHandler.AssignManager)
		addressesGroup.DELETE("/:id/manager", r.addressHandler.UnassignManager)
		addressesGroup.GET("/:id/occupants", r.addressHandler.Occupants)
		addressesGroup.GET("/:id/map-link", r.exportHandler.MapLink)
		addressesGroup.GET("/:id/map-qr", r.exportHandler.MapQRCode)
	}

	usersGroup := e.Group("/users", requireSession)
	{
		usersGroup.GET("", r.catalogHandler.ListUsers)
		usersGroup.GET("/managers", r.addressHandler.ManagerCandidates)
	}

	e.GET("/devices", r.catalogHandler.ListDevices, requireSession)

	geocodeGroup := e.Group("/geocode", requireSession)
	{
		geocodeGroup.GET("/search", r.geocodeHandler.Search)
		geocodeGroup.POST("/autocomplete", r.geocodeHandler.Autocomplete)
		geocodeGroup.GET("/candidates", r.geocodeHandler.Candidates)
		geocodeGroup.POST("/candidates/:index/select", r.geocodeHandler.SelectCandidate)
	}
}
