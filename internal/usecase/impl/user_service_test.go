package impl

import (
	"context"
	"testing"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	mockRepo "nearbite/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUser_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{ID: userID, DisplayName: "Amy"}, nil)

	user, err := service.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := service.GetUser(ctx, userID)
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}

func TestUserService_UpdateUserOrigin_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		UpdateUserOrigin(ctx, userID, 25.0330, 121.5654).
		Return(nil)
	userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(&entity.User{
			ID:              userID,
			OriginLatitude:  ptrFloat(25.0330),
			OriginLongitude: ptrFloat(121.5654),
		}, nil)

	user, err := service.UpdateUserOrigin(ctx, userID, 25.0330, 121.5654)
	require.NoError(t, err)
	assert.True(t, user.HasOrigin())
	assert.Equal(t, 25.0330, *user.OriginLatitude)
}

func TestUserService_UpdateUserOrigin_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{name: "latitude above range", lat: 90.0001, lng: 0},
		{name: "latitude below range", lat: -91, lng: 0},
		{name: "longitude above range", lat: 0, lng: 180.5},
		{name: "longitude below range", lat: 0, lng: -181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			service := NewUserService(userRepo)

			user, err := service.UpdateUserOrigin(context.Background(), uuid.New(), tt.lat, tt.lng)
			assert.Nil(t, user)
			assert.Equal(t, domainerrors.ErrInvalidCoordinate, err)
		})
	}
}

func TestUserService_UpdateUserOrigin_UserNotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().
		UpdateUserOrigin(ctx, userID, 25.0, 121.5).
		Return(repository.ErrUserNotFound)

	user, err := service.UpdateUserOrigin(ctx, userID, 25.0, 121.5)
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrNotFound, err)
}
