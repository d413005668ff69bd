package postgres

import (
	"context"
	"time"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// recipientRepository implements the repository.RecipientRepository interface.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// CreateRecipients persists the full recipient snapshot of a message in a batch.
// Called only inside the broadcast transaction so a message is never visible
// with a partial snapshot.
func (repo *recipientRepository) CreateRecipients(ctx context.Context, recipients []*entity.MessageRecipient) error {
	if len(recipients) == 0 {
		return nil
	}

	recipientModels := make([]*model.MessageRecipientModel, 0, len(recipients))
	for _, recipient := range recipients {
		recipientModels = append(recipientModels, fromRecipientDomain(recipient))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(recipientModels, 500).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("duplicate recipient in snapshot")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipient snapshot")
	}

	// Update the entities with generated values
	for i, recipientM := range recipientModels {
		recipients[i].ID = recipientM.ID
		recipients[i].CreatedAt = recipientM.CreatedAt
	}

	return nil
}

// FindRecipientsByMessage retrieves a message's snapshot ordered by user id.
func (repo *recipientRepository) FindRecipientsByMessage(ctx context.Context, messageID uuid.UUID) ([]*entity.MessageRecipient, error) {
	var recipientModels []*model.MessageRecipientModel

	if err := repo.db.WithContext(ctx).
		Where("message_id = ?", messageID).
		Order("user_id ASC").
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipients by message")
	}

	recipients := make([]*entity.MessageRecipient, 0, len(recipientModels))
	for _, recipientM := range recipientModels {
		recipients = append(recipients, toRecipientDomain(recipientM))
	}

	return recipients, nil
}

// MarkRead sets the read flag on the (message, user) row if not yet set.
// The WHERE clause makes the write idempotent: a second view matches zero rows
// and the original read_at survives. An unknown pair also matches zero rows,
// so both cases report false without error.
func (repo *recipientRepository) MarkRead(ctx context.Context, messageID, userID uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageRecipientModel{}).
		Where("message_id = ? AND user_id = ? AND is_read = ?", messageID, userID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": at,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark recipient read")
	}

	return result.RowsAffected > 0, nil
}

// MarkClicked is the click counterpart of MarkRead.
func (repo *recipientRepository) MarkClicked(ctx context.Context, messageID, userID uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageRecipientModel{}).
		Where("message_id = ? AND user_id = ? AND is_clicked = ?", messageID, userID, false).
		Updates(map[string]any{
			"is_clicked": true,
			"clicked_at": at,
		})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark recipient clicked")
	}

	return result.RowsAffected > 0, nil
}

// recipientStatsRow is the scan target for the stats aggregate queries.
type recipientStatsRow struct {
	MessageID      uuid.UUID
	RecipientCount int64
	ViewCount      int64
	ClickCount     int64
}

// StatsByMessage aggregates recipient, view and click counts for one message.
// A message with no recipients yields all-zero stats, not an error.
func (repo *recipientRepository) StatsByMessage(ctx context.Context, messageID uuid.UUID) (*entity.RecipientStats, error) {
	var row recipientStatsRow

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageRecipientModel{}).
		Select("COUNT(*) AS recipient_count",
			"COUNT(*) FILTER (WHERE is_read) AS view_count",
			"COUNT(*) FILTER (WHERE is_clicked) AS click_count").
		Where("message_id = ?", messageID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate recipient stats")
	}

	return &entity.RecipientStats{
		RecipientCount: row.RecipientCount,
		ViewCount:      row.ViewCount,
		ClickCount:     row.ClickCount,
	}, nil
}

// StatsByMessages aggregates counts for many messages in one query.
// Messages without recipients are absent from the result map.
func (repo *recipientRepository) StatsByMessages(ctx context.Context, messageIDs []uuid.UUID) (map[uuid.UUID]*entity.RecipientStats, error) {
	stats := make(map[uuid.UUID]*entity.RecipientStats, len(messageIDs))
	if len(messageIDs) == 0 {
		return stats, nil
	}

	var rows []recipientStatsRow

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageRecipientModel{}).
		Select("message_id",
			"COUNT(*) AS recipient_count",
			"COUNT(*) FILTER (WHERE is_read) AS view_count",
			"COUNT(*) FILTER (WHERE is_clicked) AS click_count").
		Where("message_id IN ?", messageIDs).
		Group("message_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate recipient stats by messages")
	}

	for _, row := range rows {
		stats[row.MessageID] = &entity.RecipientStats{
			RecipientCount: row.RecipientCount,
			ViewCount:      row.ViewCount,
			ClickCount:     row.ClickCount,
		}
	}

	return stats, nil
}

// feedRow joins a snapshot row with its message for the customer feed scan.
type feedRow struct {
	model.MessageRecipientModel
	MsgID           uuid.UUID
	RestaurantID    uuid.UUID
	SenderID        uuid.UUID
	Title           string
	Message         string
	MessageType     string
	OfferDetails    *entity.OfferDetails `gorm:"serializer:json"`
	TargetRadiusKm  int
	MsgIsActive     bool
	MsgCreatedAt    time.Time
	MsgUpdatedAt    time.Time
	ExpiresAt       *time.Time
}

// FindFeedForUser retrieves the user's snapshot rows joined with their
// currently-active, unexpired messages, newest first. Expiry is evaluated
// lazily against the supplied time, and the read routes to a replica.
func (repo *recipientRepository) FindFeedForUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*entity.FeedItem, error) {
	var rows []feedRow

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("message_recipients AS r").
		Select("r.*",
			"m.id AS msg_id", "m.restaurant_id", "m.sender_id",
			"m.title", "m.message", "m.message_type", "m.offer_details",
			"m.target_radius_km", "m.is_active AS msg_is_active",
			"m.created_at AS msg_created_at", "m.updated_at AS msg_updated_at",
			"m.expires_at").
		Joins("JOIN restaurant_messages m ON m.id = r.message_id").
		Where("r.user_id = ?", userID).
		Where("m.is_active = ?", true).
		Where("m.expires_at IS NULL OR m.expires_at > ?", now).
		Order("m.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feed for user")
	}

	items := make([]*entity.FeedItem, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		items = append(items, &entity.FeedItem{
			Message: &entity.RestaurantMessage{
				ID:             row.MsgID,
				RestaurantID:   row.RestaurantID,
				SenderID:       row.SenderID,
				Title:          row.Title,
				Message:        row.Message,
				MessageType:    row.MessageType,
				OfferDetails:   row.OfferDetails,
				TargetRadiusKm: row.TargetRadiusKm,
				IsActive:       row.MsgIsActive,
				CreatedAt:      row.MsgCreatedAt,
				UpdatedAt:      row.MsgUpdatedAt,
				ExpiresAt:      row.ExpiresAt,
			},
			Recipient: toRecipientDomain(&row.MessageRecipientModel),
		})
	}

	return items, nil
}

// --- Mapper Functions ---

// toRecipientDomain converts a GORM MessageRecipientModel to a domain MessageRecipient entity.
func toRecipientDomain(data *model.MessageRecipientModel) *entity.MessageRecipient {
	if data == nil {
		return nil
	}

	return &entity.MessageRecipient{
		ID:            data.ID,
		MessageID:     data.MessageID,
		UserID:        data.UserID,
		RecipientType: data.RecipientType,
		DistanceKm:    data.DistanceKm,
		IsRead:        data.IsRead,
		ReadAt:        data.ReadAt,
		IsClicked:     data.IsClicked,
		ClickedAt:     data.ClickedAt,
		CreatedAt:     data.CreatedAt,
	}
}

// fromRecipientDomain converts a domain MessageRecipient entity to a GORM MessageRecipientModel.
func fromRecipientDomain(data *entity.MessageRecipient) *model.MessageRecipientModel {
	if data == nil {
		return nil
	}

	return &model.MessageRecipientModel{
		ID:            data.ID,
		MessageID:     data.MessageID,
		UserID:        data.UserID,
		RecipientType: data.RecipientType,
		DistanceKm:    data.DistanceKm,
		IsRead:        data.IsRead,
		ReadAt:        data.ReadAt,
		IsClicked:     data.IsClicked,
		ClickedAt:     data.ClickedAt,
		CreatedAt:     data.CreatedAt,
	}
}
