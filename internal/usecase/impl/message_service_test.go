package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"nearbite/config"
	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"
	mockSvc "nearbite/internal/mocks/service"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixture struct {
	restaurantRepo *mockRepo.MockRestaurantRepository
	favoriteRepo   *mockRepo.MockFavoriteRepository
	userRepo       *mockRepo.MockUserRepository
	messageRepo    *mockRepo.MockMessageRepository
	txManager      *mockRepo.MockTransactionManager
	eventPublisher *mockSvc.MockEventPublisher
	service        usecase.MessageUsecase
}

func newMessageServiceFixture(t *testing.T) *messageServiceFixture {
	return newMessageServiceFixtureWithConfig(t, newTestConfig())
}

func newMessageServiceFixtureWithConfig(t *testing.T, cfg *config.Config) *messageServiceFixture {
	fx := &messageServiceFixture{
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		favoriteRepo:   mockRepo.NewMockFavoriteRepository(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		messageRepo:    mockRepo.NewMockMessageRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		eventPublisher: mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewMessageService(
		fx.restaurantRepo,
		fx.favoriteRepo,
		fx.userRepo,
		fx.messageRepo,
		fx.txManager,
		fx.eventPublisher,
		cfg,
		newDiscardLogger(),
	)

	return fx
}

// expectTransaction wires the transaction manager to run the broadcast body
// against transaction-scoped repository mocks, assigning the given message id
// the way the database would.
func (fx *messageServiceFixture) expectTransaction(t *testing.T, ctx context.Context, messageID uuid.UUID) *mockRepo.MockRecipientRepository {
	txMessageRepo := mockRepo.NewMockMessageRepository(t)
	txRecipientRepo := mockRepo.NewMockRecipientRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	factory.EXPECT().NewMessageRepository().Return(txMessageRepo)
	factory.EXPECT().NewRecipientRepository().Return(txRecipientRepo)

	txMessageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.RestaurantMessage")).
		Run(func(_ context.Context, message *entity.RestaurantMessage) {
			message.ID = messageID
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return txRecipientRepo
}

func validBroadcastInput() *usecase.BroadcastInput {
	return &usecase.BroadcastInput{
		Title:          "Weekend Special",
		Message:        "Half-price ramen this Saturday only.",
		MessageType:    entity.MessageTypeAnnouncement,
		TargetRadiusKm: 5,
	}
}

func TestMessageService_BroadcastMessage_Success(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	messageID := uuid.New()

	restaurant := &entity.Restaurant{
		ID:        restaurantID,
		OwnerID:   ownerID,
		Name:      "Noodle House",
		Latitude:  ptrFloat(25.0330),
		Longitude: ptrFloat(121.5654),
	}
	favoriterID := uuid.New()
	nearbyUser := testUserAt(25.0331, 121.5655)

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return([]uuid.UUID{favoriterID}, nil)
	fx.userRepo.EXPECT().
		FindUsersWithOrigin(ctx).
		Return([]*entity.User{nearbyUser}, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, messageID)

	var snapshot []*entity.MessageRecipient
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Run(func(_ context.Context, recipients []*entity.MessageRecipient) {
			snapshot = recipients
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(nil)

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, validBroadcastInput())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, messageID, result.Message.ID)
	assert.Equal(t, 2, result.RecipientCount)
	assert.Equal(t, 1, result.FavoriteCount)
	assert.Equal(t, 1, result.NearbyCount)
	assert.True(t, result.Message.IsActive)

	require.Len(t, snapshot, 2)
	for _, recipient := range snapshot {
		assert.Equal(t, messageID, recipient.MessageID)
	}
}

// Three candidates around a Bangalore restaurant, radius 5 km: 2.0 km and
// 5.0 km make the snapshot, 7.3 km does not, and the excluded user's later
// view attempt changes nothing.
func TestMessageService_BroadcastMessage_RadiusFiveKmScenario(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	messageID := uuid.New()

	restaurant := &entity.Restaurant{
		ID:        restaurantID,
		OwnerID:   ownerID,
		Name:      "MG Road Dosa Corner",
		Latitude:  ptrFloat(12.9716),
		Longitude: ptrFloat(77.5946),
	}

	// Pure-latitude offsets from the restaurant: 0.01799 deg is 2.0 km,
	// 0.04497 deg is 5.0 km, 0.06565 deg is 7.3 km.
	nearUser := testUserAt(12.9716+0.01799, 77.5946)
	boundaryUser := testUserAt(12.9716+0.04497, 77.5946)
	farUser := testUserAt(12.9716+0.06565, 77.5946)

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return(nil, nil)
	fx.userRepo.EXPECT().
		FindUsersWithOrigin(ctx).
		Return([]*entity.User{nearUser, boundaryUser, farUser}, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, messageID)

	var snapshot []*entity.MessageRecipient
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Run(func(_ context.Context, recipients []*entity.MessageRecipient) {
			snapshot = recipients
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(nil)

	input := validBroadcastInput()
	input.TargetRadiusKm = 5

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
	require.NoError(t, err)
	assert.Equal(t, 2, result.RecipientCount)
	assert.Equal(t, 0, result.FavoriteCount)
	assert.Equal(t, 2, result.NearbyCount)

	require.Len(t, snapshot, 2)
	distanceByUser := make(map[uuid.UUID]float64, len(snapshot))
	for _, recipient := range snapshot {
		assert.Equal(t, entity.RecipientTypeNearby, recipient.RecipientType)
		require.NotNil(t, recipient.DistanceKm)
		distanceByUser[recipient.UserID] = *recipient.DistanceKm
	}
	assert.Equal(t, 2.0, distanceByUser[nearUser.ID])
	assert.Equal(t, 5.0, distanceByUser[boundaryUser.ID])
	assert.NotContains(t, distanceByUser, farUser.ID)

	// The 7.3 km user never received the message, so a view from them is a
	// no-op and the stats stay untouched.
	engagement := newEngagementServiceFixture(t)
	engagement.recipientRepo.EXPECT().
		MarkRead(ctx, messageID, farUser.ID, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	updated, err := engagement.service.MarkMessageViewed(ctx, messageID, farUser.ID)
	require.NoError(t, err)
	assert.False(t, updated)

	engagement.messageRepo.EXPECT().
		FindMessageByID(ctx, messageID).
		Return(&entity.RestaurantMessage{ID: messageID, RestaurantID: restaurantID}, nil)
	engagement.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	engagement.recipientRepo.EXPECT().
		StatsByMessage(ctx, messageID).
		Return(&entity.RecipientStats{RecipientCount: 2, ViewCount: 0, ClickCount: 0}, nil)

	stats, err := engagement.service.GetMessageStats(ctx, ownerID, messageID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.RecipientCount)
	assert.Equal(t, int64(0), stats.ViewCount)
}

func TestMessageService_BroadcastMessage_NoCoordinatesSkipsCandidateQuery(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	messageID := uuid.New()

	restaurant := &entity.Restaurant{
		ID:      restaurantID,
		OwnerID: ownerID,
		Name:    "No Address Yet",
	}
	favoriterID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return([]uuid.UUID{favoriterID}, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, messageID)
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(nil)

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, validBroadcastInput())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecipientCount)
	assert.Equal(t, 1, result.FavoriteCount)
	assert.Equal(t, 0, result.NearbyCount)
}

func TestMessageService_BroadcastMessage_TitleIsOptional(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return(nil, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, uuid.New())
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	input := validBroadcastInput()
	input.Title = ""

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
	require.NoError(t, err)
	assert.Empty(t, result.Message.Title)
}

func TestMessageService_BroadcastMessage_ExpiryComputedFromHours(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return(nil, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, uuid.New())
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	input := validBroadcastInput()
	input.ExpiresInHours = ptrInt(24)

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
	require.NoError(t, err)
	require.NotNil(t, result.Message.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), *result.Message.ExpiresAt, 5*time.Second)
}

func TestMessageService_BroadcastMessage_DefaultExpiryFromConfig(t *testing.T) {
	cfg := newTestConfig()
	cfg.Messaging.DefaultExpiryHours = 48
	fx := newMessageServiceFixtureWithConfig(t, cfg)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return(nil, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, uuid.New())
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, validBroadcastInput())
	require.NoError(t, err)
	require.NotNil(t, result.Message.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), *result.Message.ExpiresAt, 5*time.Second)
}

func TestMessageService_BroadcastMessage_NoExpiryWhenUnconfigured(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return(nil, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, uuid.New())
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, validBroadcastInput())
	require.NoError(t, err)
	assert.Nil(t, result.Message.ExpiresAt)
}

func TestMessageService_BroadcastMessage_NonPositiveExpiryRejected(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)

	input := validBroadcastInput()
	input.ExpiresInHours = ptrInt(0)

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestMessageService_BroadcastMessage_EmptySnapshotSkipsPublish(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	restaurant := &entity.Restaurant{
		ID:      restaurantID,
		OwnerID: ownerID,
		Name:    "Lonely Diner",
	}

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return(nil, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, uuid.New())
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	// No PublishBroadcastEvent expectation: publishing an empty broadcast
	// would fail the mock's expectations.
	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, validBroadcastInput())
	require.NoError(t, err)
	assert.Equal(t, 0, result.RecipientCount)
}

func TestMessageService_BroadcastMessage_PublishFailureDoesNotFailBroadcast(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	restaurant := &entity.Restaurant{
		ID:      restaurantID,
		OwnerID: ownerID,
		Name:    "Resilient Cafe",
	}
	favoriterID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return([]uuid.UUID{favoriterID}, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, uuid.New())
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishBroadcastEvent(ctx, mock.AnythingOfType("*service.BroadcastEvent")).
		Return(errors.New("broker unavailable"))

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, validBroadcastInput())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RecipientCount)
}

func TestMessageService_BroadcastMessage_TransactionFailure(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	restaurant := &entity.Restaurant{
		ID:      restaurantID,
		OwnerID: ownerID,
		Name:    "Flaky DB Grill",
	}

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return([]uuid.UUID{uuid.New()}, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, validBroadcastInput())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "broadcast transaction failed")
}

func TestMessageService_BroadcastMessage_OwnershipViolation(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	restaurant := &entity.Restaurant{
		ID:      restaurantID,
		OwnerID: uuid.New(),
		Name:    "Someone Else's Place",
	}

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)

	result, err := fx.service.BroadcastMessage(ctx, uuid.New(), restaurantID, validBroadcastInput())
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrRestaurantOwnershipViolation, err)
}

func TestMessageService_BroadcastMessage_RestaurantNotFound(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	result, err := fx.service.BroadcastMessage(ctx, uuid.New(), restaurantID, validBroadcastInput())
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound, err)
}

func TestMessageService_BroadcastMessage_ContentValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(input *usecase.BroadcastInput)
		wantErr error
	}{
		{
			name:    "empty body",
			mutate:  func(input *usecase.BroadcastInput) { input.Message = "   " },
			wantErr: domainerrors.ErrMessageBodyInvalid,
		},
		{
			name:    "body over 500 characters",
			mutate:  func(input *usecase.BroadcastInput) { input.Message = strings.Repeat("字", 501) },
			wantErr: domainerrors.ErrMessageBodyInvalid,
		},
		{
			name:    "title over 100 characters",
			mutate:  func(input *usecase.BroadcastInput) { input.Title = strings.Repeat("長", 101) },
			wantErr: domainerrors.ErrMessageTitleTooLong,
		},
		{
			name:    "unknown message type",
			mutate:  func(input *usecase.BroadcastInput) { input.MessageType = "spam" },
			wantErr: domainerrors.ErrInvalidMessageType,
		},
		{
			name: "offer without details",
			mutate: func(input *usecase.BroadcastInput) {
				input.MessageType = entity.MessageTypeOffer
				input.OfferDetails = nil
			},
			wantErr: domainerrors.ErrInvalidOfferDetails,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newMessageServiceFixture(t)

			ctx := context.Background()
			ownerID := uuid.New()
			restaurantID := uuid.New()

			fx.restaurantRepo.EXPECT().
				FindRestaurantByID(ctx, restaurantID).
				Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)

			input := validBroadcastInput()
			tt.mutate(input)

			result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestMessageService_BroadcastMessage_BodyAt500CharactersAccepted(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	restaurant := &entity.Restaurant{ID: restaurantID, OwnerID: ownerID}

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(restaurant, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriterIDsByRestaurant(ctx, restaurantID).
		Return(nil, nil)

	txRecipientRepo := fx.expectTransaction(t, ctx, uuid.New())
	txRecipientRepo.EXPECT().
		CreateRecipients(ctx, mock.AnythingOfType("[]*entity.MessageRecipient")).
		Return(nil)

	input := validBroadcastInput()
	input.Message = strings.Repeat("字", 500)

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestMessageService_BroadcastMessage_RadiusOutOfRange(t *testing.T) {
	for _, radius := range []int{0, -3, 26, 100} {
		fx := newMessageServiceFixture(t)

		ctx := context.Background()
		ownerID := uuid.New()
		restaurantID := uuid.New()

		fx.restaurantRepo.EXPECT().
			FindRestaurantByID(ctx, restaurantID).
			Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)

		input := validBroadcastInput()
		input.TargetRadiusKm = radius

		result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
		assert.Nil(t, result)
		assert.Equal(t, domainerrors.ErrRadiusOutOfRange, err)
	}
}

func TestMessageService_BroadcastMessage_OfferDiscountOutOfRange(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)

	input := validBroadcastInput()
	input.MessageType = entity.MessageTypeOffer
	input.OfferDetails = &entity.OfferDetails{DiscountPct: 150}

	result, err := fx.service.BroadcastMessage(ctx, ownerID, restaurantID, input)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOfferDetails.ErrorCode(), appErr.ErrorCode())
}

func TestMessageService_GetMessage_NotFound(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, messageID).
		Return(nil, repository.ErrMessageNotFound)

	message, err := fx.service.GetMessage(ctx, messageID)
	assert.Nil(t, message)
	assert.Equal(t, domainerrors.ErrMessageNotFound, err)
}

func TestMessageService_UpdateMessage_Success(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	messageID := uuid.New()

	message := &entity.RestaurantMessage{
		ID:           messageID,
		RestaurantID: restaurantID,
		Title:        "Old Title",
		Message:      "Old body",
		MessageType:  entity.MessageTypeAnnouncement,
		IsActive:     true,
	}

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, messageID).
		Return(message, nil)
	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.messageRepo.EXPECT().
		UpdateMessage(ctx, mock.AnythingOfType("*entity.RestaurantMessage")).
		Return(nil)

	updated, err := fx.service.UpdateMessage(ctx, ownerID, messageID, &usecase.MessageUpdateInput{
		Title:       "  New Title  ",
		Message:     "New body",
		MessageType: entity.MessageTypePromotion,
		IsActive:    false,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "New body", updated.Message)
	assert.Equal(t, entity.MessageTypePromotion, updated.MessageType)
	assert.False(t, updated.IsActive)
}

func TestMessageService_SetMessageActive_OwnershipViolation(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, messageID).
		Return(&entity.RestaurantMessage{ID: messageID, RestaurantID: restaurantID}, nil)
	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New()}, nil)

	err := fx.service.SetMessageActive(ctx, uuid.New(), messageID, false)
	assert.Equal(t, domainerrors.ErrRestaurantOwnershipViolation, err)
}

func TestMessageService_DeleteMessage_Success(t *testing.T) {
	fx := newMessageServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, messageID).
		Return(&entity.RestaurantMessage{ID: messageID, RestaurantID: restaurantID}, nil)
	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.messageRepo.EXPECT().
		DeleteMessage(ctx, messageID).
		Return(nil)

	err := fx.service.DeleteMessage(ctx, ownerID, messageID)
	assert.NoError(t, err)
}
