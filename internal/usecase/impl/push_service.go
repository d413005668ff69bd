package impl

import (
	"context"
	"log/slog"

	deliverycontext "nearbite/internal/delivery/context"
	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fcmBatchSize is the FCM multicast token limit per request.
const fcmBatchSize = 500

type pushService struct {
	deviceRepo repository.DeviceRepository
	pushSender service.PushSender
	logger     *slog.Logger
}

// NewPushService creates a new push delivery service instance
func NewPushService(
	deviceRepo repository.DeviceRepository,
	pushSender service.PushSender,
	logger *slog.Logger,
) usecase.PushUsecase {
	return &pushService{
		deviceRepo: deviceRepo,
		pushSender: pushSender,
		logger:     logger,
	}
}

// DeliverBroadcast sends the push notification for one committed broadcast.
// The snapshot is already durable, so every failure here is logged and
// counted but never escalated back to the broadcast path.
func (s *pushService) DeliverBroadcast(ctx context.Context, event *service.BroadcastEvent) (*usecase.DeliveryResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	userIDs := make([]uuid.UUID, 0, len(event.RecipientIDs))
	for _, raw := range event.RecipientIDs {
		userID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("Skipping malformed recipient id",
				slog.String("message_id", event.MessageID),
				slog.String("recipient_id", raw),
			)

			continue
		}
		userIDs = append(userIDs, userID)
	}

	result := &usecase.DeliveryResult{
		RecipientCount: len(userIDs),
	}

	if len(userIDs) == 0 {
		return result, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipient devices")
	}

	result.DeviceCount = len(devices)
	if len(devices) == 0 {
		logger.Info("Broadcast has no registered devices",
			slog.String("message_id", event.MessageID),
		)

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	devicesByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		devicesByToken[device.FCMToken] = device
	}

	data := map[string]string{
		"message_id":    event.MessageID,
		"restaurant_id": event.RestaurantID,
	}

	var invalidTokens []string

	for start := 0; start < len(tokens); start += fcmBatchSize {
		end := min(start+fcmBatchSize, len(tokens))
		batch := tokens[start:end]

		successCount, failureCount, batchInvalid, err := s.pushSender.SendBatch(ctx, batch, event.Title, event.Body, data)
		if err != nil {
			// A whole-batch failure still leaves the remaining batches worth trying.
			logger.Error("Push batch failed",
				slog.String("message_id", event.MessageID),
				slog.Int("batch_size", len(batch)),
				slog.String("error", err.Error()),
			)
			result.FailedCount += len(batch)

			continue
		}

		result.SentCount += successCount
		result.FailedCount += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	// Tokens FCM reports as invalid or unregistered belong to devices that
	// will never receive anything again; deactivate them.
	for _, token := range invalidTokens {
		device, ok := devicesByToken[token]
		if !ok {
			continue
		}

		if err := s.deviceRepo.DeleteDevice(ctx, device.ID); err != nil {
			logger.Warn("Failed to deactivate invalid device",
				slog.String("device_id", device.ID.String()),
				slog.String("error", err.Error()),
			)

			continue
		}
		result.DeactivatedDevices++
	}

	logger.Info("Broadcast delivery finished",
		slog.String("message_id", event.MessageID),
		slog.Int("recipients", result.RecipientCount),
		slog.Int("devices", result.DeviceCount),
		slog.Int("sent", result.SentCount),
		slog.Int("failed", result.FailedCount),
		slog.Int("deactivated_devices", result.DeactivatedDevices),
	)

	return result, nil
}
