package impl

import (
	"context"
	"testing"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type engagementServiceFixture struct {
	recipientRepo  *mockRepo.MockRecipientRepository
	messageRepo    *mockRepo.MockMessageRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	service        usecase.EngagementUsecase
}

func newEngagementServiceFixture(t *testing.T) *engagementServiceFixture {
	fx := &engagementServiceFixture{
		recipientRepo:  mockRepo.NewMockRecipientRepository(t),
		messageRepo:    mockRepo.NewMockMessageRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
	}
	fx.service = NewEngagementService(fx.recipientRepo, fx.messageRepo, fx.restaurantRepo)

	return fx
}

func TestEngagementService_MarkMessageViewed_FirstView(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	messageID := uuid.New()
	userID := uuid.New()

	fx.recipientRepo.EXPECT().
		MarkRead(ctx, messageID, userID, mock.AnythingOfType("time.Time")).
		Return(true, nil)

	updated, err := fx.service.MarkMessageViewed(ctx, messageID, userID)
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestEngagementService_MarkMessageViewed_RepeatViewIsNoOp(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	messageID := uuid.New()
	userID := uuid.New()

	// An already-read row and an unknown (message, user) pair both report
	// false without an error.
	fx.recipientRepo.EXPECT().
		MarkRead(ctx, messageID, userID, mock.AnythingOfType("time.Time")).
		Return(false, nil)

	updated, err := fx.service.MarkMessageViewed(ctx, messageID, userID)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestEngagementService_MarkMessageClicked_FirstClick(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	messageID := uuid.New()
	userID := uuid.New()

	fx.recipientRepo.EXPECT().
		MarkClicked(ctx, messageID, userID, mock.AnythingOfType("time.Time")).
		Return(true, nil)

	updated, err := fx.service.MarkMessageClicked(ctx, messageID, userID)
	require.NoError(t, err)
	assert.True(t, updated)
}

func TestEngagementService_MarkMessageClicked_RepoError(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	messageID := uuid.New()
	userID := uuid.New()

	fx.recipientRepo.EXPECT().
		MarkClicked(ctx, messageID, userID, mock.AnythingOfType("time.Time")).
		Return(false, errors.New("db error"))

	updated, err := fx.service.MarkMessageClicked(ctx, messageID, userID)
	assert.Error(t, err)
	assert.False(t, updated)
}

func TestEngagementService_GetMessageStats_Success(t *testing.T) {
	fx := newEngagementServiceFixture(t)

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
	fx.recipientRepo.EXPECT().
		StatsByMessage(ctx, messageID).
		Return(&entity.RecipientStats{RecipientCount: 40, ViewCount: 30, ClickCount: 10}, nil)

	stats, err := fx.service.GetMessageStats(ctx, ownerID, messageID)
	require.NoError(t, err)
	assert.Equal(t, messageID, stats.MessageID)
	assert.Equal(t, int64(40), stats.RecipientCount)
	assert.Equal(t, int64(30), stats.ViewCount)
	assert.Equal(t, int64(10), stats.ClickCount)
	assert.Equal(t, 33, stats.EngagementRatePct)
}

func TestEngagementService_GetMessageStats_OwnershipViolation(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	restaurantID := uuid.New()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, messageID).
		Return(&entity.RestaurantMessage{ID: messageID, RestaurantID: restaurantID}, nil)
	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New()}, nil)

	stats, err := fx.service.GetMessageStats(ctx, uuid.New(), messageID)
	assert.Nil(t, stats)
	assert.Equal(t, domainerrors.ErrRestaurantOwnershipViolation, err)
}

func TestEngagementService_GetMessageStats_MessageNotFound(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().
		FindMessageByID(ctx, messageID).
		Return(nil, repository.ErrMessageNotFound)

	stats, err := fx.service.GetMessageStats(ctx, uuid.New(), messageID)
	assert.Nil(t, stats)
	assert.Equal(t, domainerrors.ErrMessageNotFound, err)
}

func TestEngagementService_GetRestaurantStats_FillsZeroForUnreceivedMessages(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	receivedID := uuid.New()
	unreceivedID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.messageRepo.EXPECT().
		FindMessagesByRestaurant(ctx, restaurantID).
		Return([]*entity.RestaurantMessage{
			{ID: receivedID, RestaurantID: restaurantID},
			{ID: unreceivedID, RestaurantID: restaurantID},
		}, nil)
	fx.recipientRepo.EXPECT().
		StatsByMessages(ctx, []uuid.UUID{receivedID, unreceivedID}).
		Return(map[uuid.UUID]*entity.RecipientStats{
			receivedID: {RecipientCount: 12, ViewCount: 8, ClickCount: 4},
		}, nil)

	stats, err := fx.service.GetRestaurantStats(ctx, ownerID, restaurantID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, receivedID, stats[0].MessageID)
	assert.Equal(t, int64(12), stats[0].RecipientCount)
	assert.Equal(t, 50, stats[0].EngagementRatePct)

	assert.Equal(t, unreceivedID, stats[1].MessageID)
	assert.Equal(t, int64(0), stats[1].RecipientCount)
	assert.Equal(t, 0, stats[1].EngagementRatePct)
}

func TestEngagementService_GetUserFeed_Success(t *testing.T) {
	fx := newEngagementServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	items := []*entity.FeedItem{
		{
			Message:   &entity.RestaurantMessage{ID: uuid.New(), IsActive: true},
			Recipient: &entity.MessageRecipient{UserID: userID},
		},
	}

	fx.recipientRepo.EXPECT().
		FindFeedForUser(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(items, nil)

	feed, err := fx.service.GetUserFeed(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, items, feed)
}

func TestEngagementRatePct(t *testing.T) {
	tests := []struct {
		name   string
		views  int64
		clicks int64
		want   int
	}{
		{name: "no views", views: 0, clicks: 0, want: 0},
		{name: "clicks without views", views: 0, clicks: 5, want: 0},
		{name: "half clicked", views: 10, clicks: 5, want: 50},
		{name: "rounds up", views: 3, clicks: 2, want: 67},
		{name: "rounds down", views: 3, clicks: 1, want: 33},
		{name: "all clicked", views: 7, clicks: 7, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engagementRatePct(tt.views, tt.clicks))
		})
	}
}
