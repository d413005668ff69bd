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

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	EngagementUC usecase.EngagementUsecase
	Logger       *slog.Logger
}

// EngagementHandler holds dependencies for engagement tracking handlers
type EngagementHandler struct {
	engagementUC usecase.EngagementUsecase
	logger       *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		engagementUC: params.EngagementUC,
		logger:       params.Logger,
	}
}

// MarkViewed handles recording the first view of a message by the caller
func (h *EngagementHandler) MarkViewed(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	firstView, err := h.engagementUC.MarkMessageViewed(c.Request().Context(), messageID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"first_view": firstView}, "Message view recorded successfully")
}

// MarkClicked handles recording the first click of a message by the caller
func (h *EngagementHandler) MarkClicked(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	firstClick, err := h.engagementUC.MarkMessageClicked(c.Request().Context(), messageID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"first_click": firstClick}, "Message click recorded successfully")
}

// GetMessageStats handles retrieving engagement stats for one message, owner-scoped
func (h *EngagementHandler) GetMessageStats(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	stats, err := h.engagementUC.GetMessageStats(c.Request().Context(), ownerID, messageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Message stats retrieved successfully")
}

// GetRestaurantStats handles retrieving engagement stats for every message
// of a restaurant, owner-scoped
func (h *EngagementHandler) GetRestaurantStats(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	stats, err := h.engagementUC.GetRestaurantStats(c.Request().Context(), ownerID, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Restaurant stats retrieved successfully")
}

// GetUserFeed handles retrieving the caller's delivered-message feed
func (h *EngagementHandler) GetUserFeed(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	feed, err := h.engagementUC.GetUserFeed(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feed, "Feed retrieved successfully")
}
