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

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// FavoriteRequest represents the request body for favoriting a restaurant
type FavoriteRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
}

// ProcessQRRequest represents the request body for favoriting via scanned QR data
type ProcessQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// FavoriteRestaurant handles favoriting a restaurant
func (h *FavoriteHandler) FavoriteRestaurant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	favorite, err := h.favoriteUC.FavoriteRestaurant(c.Request().Context(), userID, req.RestaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Restaurant favorited successfully")
}

// UnfavoriteRestaurant handles deactivating a favorite
func (h *FavoriteHandler) UnfavoriteRestaurant(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	if err := h.favoriteUC.UnfavoriteRestaurant(c.Request().Context(), userID, restaurantID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unfavorited successfully"}, "Restaurant unfavorited successfully")
}

// GetUserFavorites handles listing the caller's active favorites
func (h *FavoriteHandler) GetUserFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.favoriteUC.GetUserFavorites(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// GenerateFavoriteQR handles generating a printable QR code for a restaurant
func (h *FavoriteHandler) GenerateFavoriteQR(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	qrCode, err := h.favoriteUC.GenerateFavoriteQR(c.Request().Context(), ownerID, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=favorite-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ProcessQRFavorite handles favoriting the restaurant embedded in scanned QR data
func (h *FavoriteHandler) ProcessQRFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProcessQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR favorite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	favorite, err := h.favoriteUC.ProcessQRFavorite(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Restaurant favorited via QR code successfully")
}
