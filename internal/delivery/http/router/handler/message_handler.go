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

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler holds dependencies for message broadcast handlers
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// SetActiveRequest represents the request body for toggling a message
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// BroadcastMessage handles broadcasting a message to a restaurant's audience
func (h *MessageHandler) BroadcastMessage(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	var req usecase.BroadcastInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.messageUC.BroadcastMessage(c.Request().Context(), ownerID, restaurantID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result, "Message broadcast successfully")
}

// GetMessage handles retrieving a single message
func (h *MessageHandler) GetMessage(c echo.Context) error {
	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	message, err := h.messageUC.GetMessage(c.Request().Context(), messageID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message, "Message retrieved successfully")
}

// GetRestaurantMessages handles listing a restaurant's messages, newest first
func (h *MessageHandler) GetRestaurantMessages(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	restaurantID, err := uuid.Parse(c.Param("restaurantId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid restaurant ID")
	}

	messages, err := h.messageUC.GetRestaurantMessages(c.Request().Context(), ownerID, restaurantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// UpdateMessage handles editing message content; the recipient snapshot is untouched
func (h *MessageHandler) UpdateMessage(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	var req usecase.MessageUpdateInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	message, err := h.messageUC.UpdateMessage(c.Request().Context(), ownerID, messageID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message, "Message updated successfully")
}

// SetMessageActive handles flipping the message's active toggle
func (h *MessageHandler) SetMessageActive(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid toggle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.messageUC.SetMessageActive(c.Request().Context(), ownerID, messageID, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_active": *req.IsActive}, "Message active state updated successfully")
}

// DeleteMessage handles removing a message and its recipient snapshot
func (h *MessageHandler) DeleteMessage(c echo.Context) error {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	messageID, err := uuid.Parse(c.Param("messageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message ID")
	}

	if err := h.messageUC.DeleteMessage(c.Request().Context(), ownerID, messageID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Message deleted"}, "Message deleted successfully")
}
