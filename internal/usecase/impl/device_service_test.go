package impl

import (
	"context"
	"testing"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceInfo := &usecase.DeviceInfo{
		FCMToken: "fcm-token-1",
		DeviceID: "device-abc",
		Platform: "ios",
	}

	deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, nil)
	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, deviceInfo)
	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "fcm-token-1", device.FCMToken)
	assert.Equal(t, "device-abc", device.DeviceID)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingDeviceUpdatesToken(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	existingID := uuid.New()

	existing := &entity.UserDevice{
		ID:       existingID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-abc",
		Platform: "android",
		IsActive: true,
	}
	refreshed := &entity.UserDevice{
		ID:       existingID,
		UserID:   userID,
		FCMToken: "new-token",
		DeviceID: "device-abc",
		Platform: "android",
		IsActive: true,
	}

	deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{existing}, nil)
	deviceRepo.EXPECT().
		UpdateFCMToken(ctx, existingID, "new-token").
		Return(nil)
	deviceRepo.EXPECT().
		FindDeviceByID(ctx, existingID).
		Return(refreshed, nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "new-token",
		DeviceID: "device-abc",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, existingID, device.ID)
	assert.Equal(t, "new-token", device.FCMToken)
}

func TestDeviceService_UpdateFCMToken_Unauthorized(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-token")
	assert.Equal(t, ErrDeviceUnauthorized, err)
}

func TestDeviceService_UpdateFCMToken_NotFound(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	ctx := context.Background()
	deviceID := uuid.New()

	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(nil, repository.ErrDeviceNotFound)

	err := service.UpdateFCMToken(ctx, uuid.New(), deviceID, "new-token")
	assert.Equal(t, ErrDeviceNotFound, err)
}

func TestDeviceService_GetUserDevices_Error(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindDevicesByUser(ctx, userID).
		Return(nil, errors.New("db error"))

	devices, err := service.GetUserDevices(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, devices)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	deviceRepo.EXPECT().
		FindDeviceByID(ctx, deviceID).
		Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	deviceRepo.EXPECT().
		DeleteDevice(ctx, deviceID).
		Return(nil)

	err := service.DeactivateDevice(ctx, userID, deviceID)
	assert.NoError(t, err)
}
