package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"nearbite/config"
	deliverycontext "nearbite/internal/delivery/context"
	"nearbite/internal/domain/entity"
	domainerrors "nearbite/internal/domain/errors"
	"nearbite/internal/domain/repository"
	"nearbite/internal/domain/service"
	"nearbite/internal/geo"
	"nearbite/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Default broadcast limits, used when the messaging section is absent from config.
const (
	defaultMinRadiusKm  = 1
	defaultMaxRadiusKm  = 25
	defaultMaxBodyLen   = 500
	defaultMaxTitleLen  = 100
	maxOfferDiscountPct = 100
)

type messageService struct {
	restaurantRepo repository.RestaurantRepository
	favoriteRepo   repository.FavoriteRepository
	userRepo       repository.UserRepository
	messageRepo    repository.MessageRepository
	txManager      repository.TransactionManager
	eventPublisher service.EventPublisher
	resolver       *recipientResolver
	logger         *slog.Logger

	minRadiusKm        int
	maxRadiusKm        int
	maxBodyLen         int
	maxTitleLen        int
	defaultExpiryHours int
}

// NewMessageService creates a new message service instance
func NewMessageService(
	restaurantRepo repository.RestaurantRepository,
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	messageRepo repository.MessageRepository,
	txManager repository.TransactionManager,
	eventPublisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MessageUsecase {
	svc := &messageService{
		restaurantRepo: restaurantRepo,
		favoriteRepo:   favoriteRepo,
		userRepo:       userRepo,
		messageRepo:    messageRepo,
		txManager:      txManager,
		eventPublisher: eventPublisher,
		resolver:       newRecipientResolver(),
		logger:         logger,
		minRadiusKm:    defaultMinRadiusKm,
		maxRadiusKm:    defaultMaxRadiusKm,
		maxBodyLen:     defaultMaxBodyLen,
		maxTitleLen:    defaultMaxTitleLen,
	}

	if cfg.Messaging != nil {
		if cfg.Messaging.MinRadiusKm > 0 {
			svc.minRadiusKm = cfg.Messaging.MinRadiusKm
		}
		if cfg.Messaging.MaxRadiusKm > 0 {
			svc.maxRadiusKm = cfg.Messaging.MaxRadiusKm
		}
		if cfg.Messaging.MaxBodyLength > 0 {
			svc.maxBodyLen = cfg.Messaging.MaxBodyLength
		}
		if cfg.Messaging.MaxTitleLength > 0 {
			svc.maxTitleLen = cfg.Messaging.MaxTitleLength
		}
		if cfg.Messaging.DefaultExpiryHours > 0 {
			svc.defaultExpiryHours = cfg.Messaging.DefaultExpiryHours
		}
	}

	return svc
}

// BroadcastMessage validates the input, resolves the recipient snapshot, and
// persists message and snapshot in one transaction. Push delivery is handed
// off after commit and never fails the broadcast.
func (s *messageService) BroadcastMessage(
	ctx context.Context,
	ownerID, restaurantID uuid.UUID,
	input *usecase.BroadcastInput,
) (*usecase.BroadcastResult, error) {
	restaurant, err := s.ownedRestaurant(ctx, ownerID, restaurantID)
	if err != nil {
		return nil, err
	}

	if err := s.validateContent(input.Title, input.Message, input.MessageType, input.OfferDetails); err != nil {
		return nil, err
	}
	if input.TargetRadiusKm < s.minRadiusKm || input.TargetRadiusKm > s.maxRadiusKm {
		return nil, domainerrors.ErrRadiusOutOfRange
	}

	// Expiry is always computed server-side from a relative duration; callers
	// never supply an absolute timestamp.
	expiryHours := s.defaultExpiryHours
	if input.ExpiresInHours != nil {
		if *input.ExpiresInHours <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("expires_in_hours must be positive")
		}
		expiryHours = *input.ExpiresInHours
	}
	var expiresAt *time.Time
	if expiryHours > 0 {
		t := time.Now().Add(time.Duration(expiryHours) * time.Hour)
		expiresAt = &t
	}

	favoriterIDs, err := s.favoriteRepo.FindFavoriterIDsByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favoriter pool")
	}

	// The candidate pool is only needed when the restaurant can be a center
	// point; without a valid coordinate the broadcast targets favoriters only.
	var candidates []*entity.User
	if geo.ValidPoint(restaurant.Latitude, restaurant.Longitude) {
		candidates, err = s.userRepo.FindUsersWithOrigin(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load nearby candidates")
		}
	}

	message := &entity.RestaurantMessage{
		RestaurantID:   restaurantID,
		SenderID:       ownerID,
		Title:          strings.TrimSpace(input.Title),
		Message:        strings.TrimSpace(input.Message),
		MessageType:    input.MessageType,
		OfferDetails:   input.OfferDetails,
		TargetRadiusKm: input.TargetRadiusKm,
		IsActive:       true,
		ExpiresAt:      expiresAt,
	}

	var recipients []*entity.MessageRecipient

	// Message and snapshot commit together: readers never observe a message
	// with a partial snapshot.
	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewMessageRepository().CreateMessage(ctx, message); err != nil {
			return err
		}

		recipients = s.resolver.Resolve(message.ID, restaurant, favoriterIDs, candidates, message.TargetRadiusKm)

		return factory.NewRecipientRepository().CreateRecipients(ctx, recipients)
	})
	if err != nil {
		return nil, errors.Wrap(err, "broadcast transaction failed")
	}

	result := &usecase.BroadcastResult{
		Message:        message,
		RecipientCount: len(recipients),
	}
	for _, recipient := range recipients {
		if recipient.RecipientType == entity.RecipientTypeFavorite {
			result.FavoriteCount++
		} else {
			result.NearbyCount++
		}
	}

	s.publishBroadcast(ctx, message, recipients)

	return result, nil
}

// publishBroadcast hands the committed broadcast to the push pipeline.
// Publish failure is logged and swallowed; the snapshot is already durable.
func (s *messageService) publishBroadcast(ctx context.Context, message *entity.RestaurantMessage, recipients []*entity.MessageRecipient) {
	if len(recipients) == 0 {
		return
	}

	recipientIDs := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		recipientIDs = append(recipientIDs, recipient.UserID.String())
	}

	event := &service.BroadcastEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		MessageID:    message.ID.String(),
		RestaurantID: message.RestaurantID.String(),
		Title:        message.Title,
		Body:         message.Message,
		RecipientIDs: recipientIDs,
	}

	if err := s.eventPublisher.PublishBroadcastEvent(ctx, event); err != nil {
		s.logger.Error("Failed to publish broadcast event",
			slog.String("message_id", message.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// GetMessage retrieves a single message by ID.
func (s *messageService) GetMessage(ctx context.Context, id uuid.UUID) (*entity.RestaurantMessage, error) {
	message, err := s.messageRepo.FindMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, err
	}

	return message, nil
}

// GetRestaurantMessages retrieves all messages of a restaurant, newest first.
func (s *messageService) GetRestaurantMessages(ctx context.Context, ownerID, restaurantID uuid.UUID) ([]*entity.RestaurantMessage, error) {
	if _, err := s.ownedRestaurant(ctx, ownerID, restaurantID); err != nil {
		return nil, err
	}

	return s.messageRepo.FindMessagesByRestaurant(ctx, restaurantID)
}

// UpdateMessage edits message content. The recipient snapshot never changes.
func (s *messageService) UpdateMessage(ctx context.Context, ownerID, messageID uuid.UUID, input *usecase.MessageUpdateInput) (*entity.RestaurantMessage, error) {
	message, err := s.ownedMessage(ctx, ownerID, messageID)
	if err != nil {
		return nil, err
	}

	if err := s.validateContent(input.Title, input.Message, input.MessageType, input.OfferDetails); err != nil {
		return nil, err
	}

	message.Title = strings.TrimSpace(input.Title)
	message.Message = strings.TrimSpace(input.Message)
	message.MessageType = input.MessageType
	message.OfferDetails = input.OfferDetails
	message.IsActive = input.IsActive
	message.ExpiresAt = input.ExpiresAt

	if err := s.messageRepo.UpdateMessage(ctx, message); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, err
	}

	return message, nil
}

// SetMessageActive flips the hard active toggle.
func (s *messageService) SetMessageActive(ctx context.Context, ownerID, messageID uuid.UUID, isActive bool) error {
	if _, err := s.ownedMessage(ctx, ownerID, messageID); err != nil {
		return err
	}

	if err := s.messageRepo.UpdateMessageActive(ctx, messageID, isActive); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return err
	}

	return nil
}

// DeleteMessage removes a message and, via cascade, its snapshot.
func (s *messageService) DeleteMessage(ctx context.Context, ownerID, messageID uuid.UUID) error {
	if _, err := s.ownedMessage(ctx, ownerID, messageID); err != nil {
		return err
	}

	if err := s.messageRepo.DeleteMessage(ctx, messageID); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return domainerrors.ErrMessageNotFound
		}

		return err
	}

	return nil
}

// ownedRestaurant loads a restaurant and verifies the caller manages it.
func (s *messageService) ownedRestaurant(ctx context.Context, ownerID, restaurantID uuid.UUID) (*entity.Restaurant, error) {
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

	return restaurant, nil
}

// ownedMessage loads a message and verifies the caller owns its restaurant.
func (s *messageService) ownedMessage(ctx context.Context, ownerID, messageID uuid.UUID) (*entity.RestaurantMessage, error) {
	message, err := s.messageRepo.FindMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, domainerrors.ErrMessageNotFound
		}

		return nil, err
	}

	if _, err := s.ownedRestaurant(ctx, ownerID, message.RestaurantID); err != nil {
		return nil, err
	}

	return message, nil
}

// validateContent enforces the broadcast content rules. Limits count
// characters, not bytes.
func (s *messageService) validateContent(title, body, messageType string, offer *entity.OfferDetails) error {
	body = strings.TrimSpace(body)
	if body == "" || utf8.RuneCountInString(body) > s.maxBodyLen {
		return domainerrors.ErrMessageBodyInvalid
	}

	if utf8.RuneCountInString(strings.TrimSpace(title)) > s.maxTitleLen {
		return domainerrors.ErrMessageTitleTooLong
	}

	if !entity.ValidMessageType(messageType) {
		return domainerrors.ErrInvalidMessageType
	}

	if messageType == entity.MessageTypeOffer {
		if offer == nil {
			return domainerrors.ErrInvalidOfferDetails
		}
		if offer.DiscountPct < 0 || offer.DiscountPct > maxOfferDiscountPct {
			return domainerrors.ErrInvalidOfferDetails.WithDetails(
				"discount_pct out of range: " + strconv.Itoa(offer.DiscountPct))
		}
		if offer.MinimumOrder < 0 {
			return domainerrors.ErrInvalidOfferDetails.WithDetails("minimum_order must not be negative")
		}
	}

	return nil
}
