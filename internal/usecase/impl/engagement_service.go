package impl

import (
	"context"
	"math"
	"time"

	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type engagementService struct {
	recipientRepo  repository.RecipientRepository
	messageRepo    repository.MessageRepository
	restaurantRepo repository.RestaurantRepository
}

// NewEngagementService creates a new engagement service instance
func NewEngagementService(
	recipientRepo repository.RecipientRepository,
	messageRepo repository.MessageRepository,
	restaurantRepo repository.RestaurantRepository,
) usecase.EngagementUsecase {
	return &engagementService{
		recipientRepo:  recipientRepo,
		messageRepo:    messageRepo,
		restaurantRepo: restaurantRepo,
	}
}

// MarkMessageViewed records the first view of a message by a recipient.
// The recipient set is closed at broadcast time, so an unknown (message, user)
// pair is a silent no-op rather than an error, and repeat views keep the
// original timestamp.
func (s *engagementService) MarkMessageViewed(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	updated, err := s.recipientRepo.MarkRead(ctx, messageID, userID, time.Now())
	if err != nil {
		return false, errors.Wrap(err, "failed to mark message viewed")
	}

	return updated, nil
}

// MarkMessageClicked records the first click, with the same no-op semantics
// as MarkMessageViewed.
func (s *engagementService) MarkMessageClicked(ctx context.Context, messageID, userID uuid.UUID) (bool, error) {
	updated, err := s.recipientRepo.MarkClicked(ctx, messageID, userID, time.Now())
	if err != nil {
		return false, errors.Wrap(err, "failed to mark message clicked")
	}

	return updated, nil
}

// GetMessageStats aggregates the engagement summary for one message,
// owner-scoped.
func (s *engagementService) GetMessageStats(ctx context.Context, ownerID, messageID uuid.UUID) (*usecase.MessageStats, error) {
	if err := s.verifyMessageOwner(ctx, ownerID, messageID); err != nil {
		return nil, err
	}

	stats, err := s.recipientRepo.StatsByMessage(ctx, messageID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load message stats")
	}

	return &usecase.MessageStats{
		MessageID:         messageID,
		RecipientCount:    stats.RecipientCount,
		ViewCount:         stats.ViewCount,
		ClickCount:        stats.ClickCount,
		EngagementRatePct: engagementRatePct(stats.ViewCount, stats.ClickCount),
	}, nil
}

// GetRestaurantStats aggregates stats for every message of a restaurant.
// Messages nobody received report zero counts.
func (s *engagementService) GetRestaurantStats(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]*usecase.MessageStats, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, err
	}
	if restaurant.OwnerID != ownerID {
		return nil, domainerrors.ErrRestaurantOwnershipViolation
	}

	messages, err := s.messageRepo.FindMessagesByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant messages")
	}

	messageIDs := make([]uuid.UUID, 0, len(messages))
	for _, message := range messages {
		messageIDs = append(messageIDs, message.ID)
	}

	statsByID, err := s.recipientRepo.StatsByMessages(ctx, messageIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load restaurant stats")
	}

	result := make([]*usecase.MessageStats, 0, len(messages))
	for _, message := range messages {
		stats := statsByID[message.ID]
		if stats == nil {
			stats = &entity.RecipientStats{}
		}

		result = append(result, &usecase.MessageStats{
			MessageID:         message.ID,
			RecipientCount:    stats.RecipientCount,
			ViewCount:         stats.ViewCount,
			ClickCount:        stats.ClickCount,
			EngagementRatePct: engagementRatePct(stats.ViewCount, stats.ClickCount),
		})
	}

	return result, nil
}

// GetUserFeed retrieves the customer's delivered messages, newest first.
func (s *engagementService) GetUserFeed(ctx context.Context, userID uuid.UUID) ([]*entity.FeedItem, error) {
	items, err := s.recipientRepo.FindFeedForUser(ctx, userID, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user feed")
	}

	return items, nil
}

// verifyMessageOwner checks that the message's restaurant belongs to the caller.
func (s *engagementService) verifyMessageOwner(ctx context.Context, ownerID, messageID uuid.UUID) error {
	message, err := s.messageRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return err
	}

	restaurant, err := s.restaurantRepo.FindRestaurantByID(ctx, message.RestaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return domainerrors.ErrRestaurantNotFound
		}

		return err
	}

	if restaurant.OwnerID != ownerID {
		return domainerrors.ErrRestaurantOwnershipViolation
	}

	return nil
}

// engagementRatePct computes round(100 * clicks / views), 0 when nobody viewed.
func engagementRatePct(views, clicks int64) int {
	if views == 0 {
		return 0
	}

	return int(math.Round(100 * float64(clicks) / float64(views)))
}
