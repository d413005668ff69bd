package repository

import (
	"context"
	"errors"

	"nearbite/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device registration.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices of a user, active or not.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUsers retrieves all active devices for a list of users.
	// Used by the push worker to collect FCM tokens for a recipient snapshot.
	FindActiveDevicesByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the FCM token of a device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeleteDevice removes a device registration (soft delete). Invoked by the
	// push worker when FCM reports the token as unregistered.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
