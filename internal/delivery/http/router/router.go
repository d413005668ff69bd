// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nearbite/config"
	"nearbite/internal/delivery/http/middleware"
	"nearbite/internal/delivery/http/router/handler"
	"nearbite/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config            *config.Config
	RestaurantHandler *handler.RestaurantHandler
	MessageHandler    *handler.MessageHandler
	EngagementHandler *handler.EngagementHandler
	FavoriteHandler   *handler.FavoriteHandler
	DeviceHandler     *handler.DeviceHandler
	UserHandler       *handler.UserHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg               *config.Config
	restaurantHandler *handler.RestaurantHandler
	messageHandler    *handler.MessageHandler
	engagementHandler *handler.EngagementHandler
	favoriteHandler   *handler.FavoriteHandler
	deviceHandler     *handler.DeviceHandler
	userHandler       *handler.UserHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:               params.Config,
		restaurantHandler: params.RestaurantHandler,
		messageHandler:    params.MessageHandler,
		engagementHandler: params.EngagementHandler,
		favoriteHandler:   params.FavoriteHandler,
		deviceHandler:     params.DeviceHandler,
		userHandler:       params.UserHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Restaurant management routes that require the "owner" role
	ownerGroup := e.Group("/restaurants")
	ownerGroup.Use(r.authMiddleware.Authenticate)
	ownerGroup.Use(r.authMiddleware.RequireRole(constants.RoleOwner))
	{
		ownerGroup.POST("", r.restaurantHandler.CreateRestaurant)
		ownerGroup.GET("", r.restaurantHandler.GetOwnerRestaurants)
		ownerGroup.GET("/:restaurantId", r.restaurantHandler.GetRestaurant)
		ownerGroup.PUT("/:restaurantId", r.restaurantHandler.UpdateRestaurant)
		ownerGroup.POST("/:restaurantId/refresh-coordinates", r.restaurantHandler.RefreshCoordinates)

		ownerGroup.POST("/:restaurantId/messages", r.messageHandler.BroadcastMessage)
		ownerGroup.GET("/:restaurantId/messages", r.messageHandler.GetRestaurantMessages)
		ownerGroup.GET("/:restaurantId/stats", r.engagementHandler.GetRestaurantStats)
		ownerGroup.GET("/:restaurantId/qrcode", r.favoriteHandler.GenerateFavoriteQR)
	}

	// Message management routes, also owner-scoped
	messageGroup := e.Group("/messages")
	messageGroup.Use(r.authMiddleware.Authenticate)
	messageGroup.Use(r.authMiddleware.RequireRole(constants.RoleOwner))
	{
		messageGroup.GET("/:messageId", r.messageHandler.GetMessage)
		messageGroup.PUT("/:messageId", r.messageHandler.UpdateMessage)
		messageGroup.PATCH("/:messageId/active", r.messageHandler.SetMessageActive)
		messageGroup.DELETE("/:messageId", r.messageHandler.DeleteMessage)
		messageGroup.GET("/:messageId/stats", r.engagementHandler.GetMessageStats)
	}

	// Customer routes that require authentication
	feedGroup := e.Group("/feed")
	feedGroup.Use(r.authMiddleware.Authenticate)
	{
		feedGroup.GET("", r.engagementHandler.GetUserFeed)
		feedGroup.POST("/:messageId/viewed", r.engagementHandler.MarkViewed)
		feedGroup.POST("/:messageId/clicked", r.engagementHandler.MarkClicked)
	}

	favoriteGroup := e.Group("/favorites")
	favoriteGroup.Use(r.authMiddleware.Authenticate)
	{
		favoriteGroup.POST("", r.favoriteHandler.FavoriteRestaurant)
		favoriteGroup.GET("", r.favoriteHandler.GetUserFavorites)
		favoriteGroup.DELETE("/:restaurantId", r.favoriteHandler.UnfavoriteRestaurant)
		favoriteGroup.POST("/qr", r.favoriteHandler.ProcessQRFavorite)
	}

	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:deviceId/token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:deviceId", r.deviceHandler.DeactivateDevice)
	}

	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/origin", r.userHandler.UpdateOrigin)
	}

	// Test routes for middleware validation, disabled outside local setups
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
		}
	}
}
