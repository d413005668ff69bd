package impl

import (
	"context"
	"strconv"
	"testing"

	"nearbite/internal/domain/entity"
	"nearbite/internal/domain/service"
	mockRepo "nearbite/internal/mocks/repository"
	mockSvc "nearbite/internal/mocks/service"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pushServiceFixture struct {
	deviceRepo *mockRepo.MockDeviceRepository
	pushSender *mockSvc.MockPushSender
	service    usecase.PushUsecase
}

func newPushServiceFixture(t *testing.T) *pushServiceFixture {
	fx := &pushServiceFixture{
		deviceRepo: mockRepo.NewMockDeviceRepository(t),
		pushSender: mockSvc.NewMockPushSender(t),
	}
	fx.service = NewPushService(fx.deviceRepo, fx.pushSender, newDiscardLogger())

	return fx
}

func testBroadcastEvent(recipientIDs ...string) *service.BroadcastEvent {
	return &service.BroadcastEvent{
		MessageID:    uuid.New().String(),
		RestaurantID: uuid.New().String(),
		Title:        "Lunch Deal",
		Body:         "Set lunch at half price until 14:00.",
		RecipientIDs: recipientIDs,
	}
}

func testDevice(userID uuid.UUID, token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: token,
		DeviceID: "device-" + token,
		Platform: "ios",
		IsActive: true,
	}
}

func TestPushService_DeliverBroadcast_Success(t *testing.T) {
	fx := newPushServiceFixture(t)

	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	event := testBroadcastEvent(userA.String(), userB.String())

	devices := []*entity.UserDevice{
		testDevice(userA, "token-a"),
		testDevice(userB, "token-b"),
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userA, userB}).
		Return(devices, nil)
	fx.pushSender.EXPECT().
		SendBatch(ctx, []string{"token-a", "token-b"}, event.Title, event.Body, map[string]string{
			"message_id":    event.MessageID,
			"restaurant_id": event.RestaurantID,
		}).
		Return(2, 0, nil, nil)

	result, err := fx.service.DeliverBroadcast(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecipientCount)
	assert.Equal(t, 2, result.DeviceCount)
	assert.Equal(t, 2, result.SentCount)
	assert.Equal(t, 0, result.FailedCount)
	assert.Equal(t, 0, result.DeactivatedDevices)
}

func TestPushService_DeliverBroadcast_SkipsMalformedRecipientIDs(t *testing.T) {
	fx := newPushServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testBroadcastEvent("not-a-uuid", userID.String())

	device := testDevice(userID, "token-x")

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{device}, nil)
	fx.pushSender.EXPECT().
		SendBatch(ctx, []string{"token-x"}, event.Title, event.Body, map[string]string{
			"message_id":    event.MessageID,
			"restaurant_id": event.RestaurantID,
		}).
		Return(1, 0, nil, nil)

	result, err := fx.service.DeliverBroadcast(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecipientCount)
	assert.Equal(t, 1, result.SentCount)
}

func TestPushService_DeliverBroadcast_AllRecipientsMalformed(t *testing.T) {
	fx := newPushServiceFixture(t)

	result, err := fx.service.DeliverBroadcast(context.Background(), testBroadcastEvent("bogus", "also-bogus"))
	require.NoError(t, err)
	assert.Equal(t, 0, result.RecipientCount)
	assert.Equal(t, 0, result.DeviceCount)
}

func TestPushService_DeliverBroadcast_NoRegisteredDevices(t *testing.T) {
	fx := newPushServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testBroadcastEvent(userID.String())

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return(nil, nil)

	result, err := fx.service.DeliverBroadcast(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecipientCount)
	assert.Equal(t, 0, result.DeviceCount)
	assert.Equal(t, 0, result.SentCount)
}

func TestPushService_DeliverBroadcast_DeactivatesInvalidTokens(t *testing.T) {
	fx := newPushServiceFixture(t)

	ctx := context.Background()
	userA := uuid.New()
	userB := uuid.New()
	event := testBroadcastEvent(userA.String(), userB.String())

	staleDevice := testDevice(userA, "stale-token")
	liveDevice := testDevice(userB, "live-token")

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userA, userB}).
		Return([]*entity.UserDevice{staleDevice, liveDevice}, nil)
	fx.pushSender.EXPECT().
		SendBatch(ctx, []string{"stale-token", "live-token"}, event.Title, event.Body, map[string]string{
			"message_id":    event.MessageID,
			"restaurant_id": event.RestaurantID,
		}).
		Return(1, 1, []string{"stale-token"}, nil)
	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, staleDevice.ID).
		Return(nil)

	result, err := fx.service.DeliverBroadcast(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, 1, result.DeactivatedDevices)
}

func TestPushService_DeliverBroadcast_DeactivationFailureIsCounted(t *testing.T) {
	fx := newPushServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testBroadcastEvent(userID.String())

	device := testDevice(userID, "stale-token")

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.UserDevice{device}, nil)
	fx.pushSender.EXPECT().
		SendBatch(ctx, []string{"stale-token"}, event.Title, event.Body, map[string]string{
			"message_id":    event.MessageID,
			"restaurant_id": event.RestaurantID,
		}).
		Return(0, 1, []string{"stale-token"}, nil)
	fx.deviceRepo.EXPECT().
		DeleteDevice(ctx, device.ID).
		Return(errors.New("db error"))

	result, err := fx.service.DeliverBroadcast(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 0, result.DeactivatedDevices)
}

func TestPushService_DeliverBroadcast_BatchFailureContinues(t *testing.T) {
	fx := newPushServiceFixture(t)

	ctx := context.Background()

	// 501 devices split into a 500-token batch and a 1-token batch; the
	// first batch fails outright, the second still goes out.
	userIDs := make([]uuid.UUID, 0, 501)
	devices := make([]*entity.UserDevice, 0, 501)
	recipientIDs := make([]string, 0, 501)
	tokens := make([]string, 0, 501)
	for i := 0; i < 501; i++ {
		userID := uuid.New()
		token := "token-" + strconv.Itoa(i)
		userIDs = append(userIDs, userID)
		devices = append(devices, testDevice(userID, token))
		recipientIDs = append(recipientIDs, userID.String())
		tokens = append(tokens, token)
	}
	event := testBroadcastEvent(recipientIDs...)
	data := map[string]string{
		"message_id":    event.MessageID,
		"restaurant_id": event.RestaurantID,
	}

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, userIDs).
		Return(devices, nil)
	fx.pushSender.EXPECT().
		SendBatch(ctx, tokens[:500], event.Title, event.Body, data).
		Return(0, 0, nil, errors.New("fcm unavailable"))
	fx.pushSender.EXPECT().
		SendBatch(ctx, tokens[500:], event.Title, event.Body, data).
		Return(1, 0, nil, nil)

	result, err := fx.service.DeliverBroadcast(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 501, result.RecipientCount)
	assert.Equal(t, 501, result.DeviceCount)
	assert.Equal(t, 1, result.SentCount)
	assert.Equal(t, 500, result.FailedCount)
}

func TestPushService_DeliverBroadcast_DeviceLookupError(t *testing.T) {
	fx := newPushServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	event := testBroadcastEvent(userID.String())

	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUsers(ctx, []uuid.UUID{userID}).
		Return(nil, errors.New("db error"))

	result, err := fx.service.DeliverBroadcast(ctx, event)
	assert.Error(t, err)
	assert.Nil(t, result)
}
