package postgres

import (
	"context"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// CreateMessage persists a new restaurant message.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.RestaurantMessage) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRestaurantNotFound.WrapMessage("invalid restaurant reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindMessageByID retrieves a message by its unique ID.
func (repo *messageRepository) FindMessageByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantMessage, error) {
	var messageM model.RestaurantMessageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by ID")
	}

	return toMessageDomain(&messageM), nil
}

// FindMessagesByRestaurant retrieves all messages of a restaurant, newest first.
func (repo *messageRepository) FindMessagesByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantMessage, error) {
	var messageModels []*model.RestaurantMessageModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by restaurant")
	}

	messages := make([]*entity.RestaurantMessage, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// UpdateMessage persists edits to the message content and flags. The recipient
// snapshot is never touched here.
func (repo *messageRepository) UpdateMessage(ctx context.Context, message *entity.RestaurantMessage) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantMessageModel{}).
		Where("id = ?", message.ID).
		Select("title", "message", "message_type", "offer_details",
			"target_radius_km", "is_active", "expires_at").
		Updates(fromMessageDomain(message))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// UpdateMessageActive flips the hard is_active toggle without touching expires_at.
func (repo *messageRepository) UpdateMessageActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantMessageModel{}).
		Where("id = ?", id).
		Update("is_active", isActive)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update message status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// DeleteMessage removes a message; recipient rows go with it via the
// database's cascade rule.
func (repo *messageRepository) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RestaurantMessageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM RestaurantMessageModel to a domain RestaurantMessage entity.
func toMessageDomain(data *model.RestaurantMessageModel) *entity.RestaurantMessage {
	if data == nil {
		return nil
	}

	return &entity.RestaurantMessage{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		SenderID:       data.SenderID,
		Title:          data.Title,
		Message:        data.Message,
		MessageType:    data.MessageType,
		OfferDetails:   data.OfferDetails,
		TargetRadiusKm: data.TargetRadiusKm,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		ExpiresAt:      data.ExpiresAt,
	}
}

// fromMessageDomain converts a domain RestaurantMessage entity to a GORM RestaurantMessageModel.
func fromMessageDomain(data *entity.RestaurantMessage) *model.RestaurantMessageModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantMessageModel{
		ID:             data.ID,
		RestaurantID:   data.RestaurantID,
		SenderID:       data.SenderID,
		Title:          data.Title,
		Message:        data.Message,
		MessageType:    data.MessageType,
		OfferDetails:   data.OfferDetails,
		TargetRadiusKm: data.TargetRadiusKm,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		ExpiresAt:      data.ExpiresAt,
	}
}
