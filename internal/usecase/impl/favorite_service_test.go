package impl

import (
	"context"
	"testing"

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

type favoriteServiceFixture struct {
	favoriteRepo   *mockRepo.MockFavoriteRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	qrService      *mockSvc.MockQRCodeService
	service        usecase.FavoriteUsecase
}

func newFavoriteServiceFixture(t *testing.T) *favoriteServiceFixture {
	fx := &favoriteServiceFixture{
		favoriteRepo:   mockRepo.NewMockFavoriteRepository(t),
		restaurantRepo: mockRepo.NewMockRestaurantRepository(t),
		qrService:      mockSvc.NewMockQRCodeService(t),
	}
	fx.service = NewFavoriteService(fx.favoriteRepo, fx.restaurantRepo, fx.qrService)

	return fx
}

func TestFavoriteService_FavoriteRestaurant_NewFavorite(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID).
		Return(nil, repository.ErrFavoriteNotFound)
	fx.favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.RestaurantFavorite")).
		Return(nil)

	favorite, err := fx.service.FavoriteRestaurant(ctx, userID, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, restaurantID, favorite.RestaurantID)
	assert.True(t, favorite.IsActive)
}

func TestFavoriteService_FavoriteRestaurant_ReactivatesInactive(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	favoriteID := uuid.New()

	existing := &entity.RestaurantFavorite{
		ID:           favoriteID,
		UserID:       userID,
		RestaurantID: restaurantID,
		IsActive:     false,
	}

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID).
		Return(existing, nil)
	fx.favoriteRepo.EXPECT().
		UpdateFavoriteActive(ctx, favoriteID, true).
		Return(nil)

	favorite, err := fx.service.FavoriteRestaurant(ctx, userID, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, favoriteID, favorite.ID)
	assert.True(t, favorite.IsActive)
}

func TestFavoriteService_FavoriteRestaurant_AlreadyActiveIsIdempotent(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	existing := &entity.RestaurantFavorite{
		ID:           uuid.New(),
		UserID:       userID,
		RestaurantID: restaurantID,
		IsActive:     true,
	}

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID).
		Return(existing, nil)

	// No create or update expectation: the active row is returned as-is.
	favorite, err := fx.service.FavoriteRestaurant(ctx, userID, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, existing, favorite)
}

func TestFavoriteService_FavoriteRestaurant_RestaurantNotFound(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(nil, repository.ErrRestaurantNotFound)

	favorite, err := fx.service.FavoriteRestaurant(ctx, uuid.New(), restaurantID)
	assert.Nil(t, favorite)
	assert.Equal(t, domainerrors.ErrRestaurantNotFound, err)
}

func TestFavoriteService_UnfavoriteRestaurant_Success(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	favoriteID := uuid.New()

	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID).
		Return(&entity.RestaurantFavorite{ID: favoriteID, IsActive: true}, nil)
	fx.favoriteRepo.EXPECT().
		UpdateFavoriteActive(ctx, favoriteID, false).
		Return(nil)

	err := fx.service.UnfavoriteRestaurant(ctx, userID, restaurantID)
	assert.NoError(t, err)
}

func TestFavoriteService_UnfavoriteRestaurant_AlreadyInactiveIsNoOp(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID).
		Return(&entity.RestaurantFavorite{ID: uuid.New(), IsActive: false}, nil)

	err := fx.service.UnfavoriteRestaurant(ctx, userID, restaurantID)
	assert.NoError(t, err)
}

func TestFavoriteService_UnfavoriteRestaurant_NotFound(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID).
		Return(nil, repository.ErrFavoriteNotFound)

	err := fx.service.UnfavoriteRestaurant(ctx, userID, restaurantID)
	assert.Equal(t, domainerrors.ErrFavoriteNotFound, err)
}

func TestFavoriteService_GenerateFavoriteQR_OwnerScoped(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	restaurantID := uuid.New()
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: ownerID}, nil)
	fx.qrService.EXPECT().
		GenerateFavoriteQR(restaurantID).
		Return(png, nil)

	qrCode, err := fx.service.GenerateFavoriteQR(ctx, ownerID, restaurantID)
	require.NoError(t, err)
	assert.Equal(t, png, qrCode)
}

func TestFavoriteService_GenerateFavoriteQR_OwnershipViolation(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	restaurantID := uuid.New()

	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID, OwnerID: uuid.New()}, nil)

	qrCode, err := fx.service.GenerateFavoriteQR(ctx, uuid.New(), restaurantID)
	assert.Nil(t, qrCode)
	assert.Equal(t, domainerrors.ErrRestaurantOwnershipViolation, err)
}

func TestFavoriteService_ProcessQRFavorite_Success(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()
	qrData := `{"restaurant_id":"` + restaurantID.String() + `","type":"favorite"}`

	fx.qrService.EXPECT().
		ParseFavoriteQR(qrData).
		Return(restaurantID, nil)
	fx.restaurantRepo.EXPECT().
		FindRestaurantByID(ctx, restaurantID).
		Return(&entity.Restaurant{ID: restaurantID}, nil)
	fx.favoriteRepo.EXPECT().
		FindFavoriteByUserAndRestaurant(ctx, userID, restaurantID).
		Return(nil, repository.ErrFavoriteNotFound)
	fx.favoriteRepo.EXPECT().
		CreateFavorite(ctx, mock.AnythingOfType("*entity.RestaurantFavorite")).
		Return(nil)

	favorite, err := fx.service.ProcessQRFavorite(ctx, userID, qrData)
	require.NoError(t, err)
	assert.Equal(t, restaurantID, favorite.RestaurantID)
}

func TestFavoriteService_ProcessQRFavorite_InvalidQR(t *testing.T) {
	fx := newFavoriteServiceFixture(t)

	ctx := context.Background()
	qrData := "not-a-qr-payload"

	fx.qrService.EXPECT().
		ParseFavoriteQR(qrData).
		Return(uuid.Nil, errors.New("parse error"))

	favorite, err := fx.service.ProcessQRFavorite(ctx, uuid.New(), qrData)
	assert.Nil(t, favorite)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidQRCode.ErrorCode(), appErr.ErrorCode())
}
