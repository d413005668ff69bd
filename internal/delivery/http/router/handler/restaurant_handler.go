package handler

import (
	"log/slog"
	"net/http"

	"nearbite/internal/delivery/http/middleware"
	"nearbite/internal/delivery/http/response"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	RestaurantUC usecase.RestaurantUsecase
	Logger       *slog.Logger
}

// RestaurantHandler holds dependencies for restaurant-related handlers
type RestaurantHandler struct {
	restaurantUC usecase.RestaurantUsecase
	logger       *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantUC: params.RestaurantUC,
		logger:       params.Logger,
	}
}

// CreateRestaurant handles creating a restaurant for the authenticated owner
func (h *RestaurantHandler) CreateRestaurant(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req usecase.RestaurantInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	restaurant, err := h.restaurantUC.CreateRestaurant(c.Request().Context(), ownerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, restaurant, "Restaurant created successfully")
}

// GetRestaurant handles retrieving a single restaurant
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	restaurant, err := h.restaurantUC.GetRestaurant(c.Request().Context(), restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant retrieved successfully")
}

// GetOwnerRestaurants handles listing the authenticated owner's restaurants
func (h *RestaurantHandler) GetOwnerRestaurants(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurants, err := h.restaurantUC.GetOwnerRestaurants(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurants, "Restaurants retrieved successfully")
}

// UpdateRestaurant handles updating a restaurant's profile and address
func (h *RestaurantHandler) UpdateRestaurant(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	var req usecase.RestaurantInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid restaurant input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	restaurant, err := h.restaurantUC.UpdateRestaurant(c.Request().Context(), ownerID, restaurantID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Restaurant updated successfully")
}

// RefreshCoordinates handles retrying geocoding for a restaurant
func (h *RestaurantHandler) RefreshCoordinates(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	restaurant, err := h.restaurantUC.RefreshCoordinates(c.Request().Context(), ownerID, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, restaurant, "Coordinates refreshed successfully")
}
