package usecase

import (
	"context"

	"nearbite/internal/domain/service"
)

// DeliveryResult summarizes one broadcast's push delivery run
type DeliveryResult struct {
	RecipientCount     int `json:"recipient_count"`
	DeviceCount        int `json:"device_count"`
	SentCount          int `json:"sent_count"`
	FailedCount        int `json:"failed_count"`
	DeactivatedDevices int `json:"deactivated_devices"`
}

// PushUsecase defines the worker-side use case that turns a committed
// broadcast event into FCM deliveries
type PushUsecase interface {
	// DeliverBroadcast collects the active devices of the event's recipients
	// and sends the push notification in FCM-sized batches. Devices whose
	// tokens FCM reports as invalid are deactivated. Delivery failure never
	// propagates back to the broadcast.
	DeliverBroadcast(ctx context.Context, event *service.BroadcastEvent) (*DeliveryResult, error)
}
