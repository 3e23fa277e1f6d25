package services

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"localink_backend/internal/models"
	"localink_backend/internal/repositories"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"
)

type NotificationService interface {
	ListForRecipient(recipientID string, recipientType models.RecipientType) ([]dto.NotificationResponse, error)
	MarkAsRead(notificationID string) error
	UnreadCount(recipientID string, recipientType models.RecipientType) (int64, error)

	// Factory methods used by the other domain services.
	NotifyFavorite(post *models.Post, explorer *models.Explorer) error
	NotifyRating(post *models.Post, explorer *models.Explorer, rating int) error
	NotifyEventJoin(event *models.Event, explorer *models.Explorer) error
	NotifyPayment(businessID string, amount float64, subMonths int) error
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListForRecipient(recipientID string, recipientType models.RecipientType) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindForRecipient(recipientID, recipientType)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, buildNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

func (s *notificationService) MarkAsRead(notificationID string) error {
	if err := s.notificationRepo.MarkAsRead(notificationID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *notificationService) UnreadCount(recipientID string, recipientType models.RecipientType) (int64, error) {
	return s.notificationRepo.UnreadCount(recipientID, recipientType)
}

// --- factory methods ---

// postOwner resolves the recipient of a post-related notification. Posts can
// be owned by either account kind.
func postOwner(post *models.Post) (string, models.RecipientType, bool) {
	if post.BusinessID != nil {
		return *post.BusinessID, models.RecipientBusiness, true
	}
	if post.ExplorerID != nil {
		return *post.ExplorerID, models.RecipientExplorer, true
	}
	return "", "", false
}

func (s *notificationService) NotifyFavorite(post *models.Post, explorer *models.Explorer) error {
	ownerID, ownerType, ok := postOwner(post)
	if !ok || ownerID == explorer.ID {
		return nil
	}

	senderID := explorer.ID
	notification := &models.Notification{
		RecipientID:   ownerID,
		RecipientType: ownerType,
		Type:          models.NotificationTypeFavorite,
		Message:       fmt.Sprintf("%s %s added %s to favorites", explorer.Firstname, explorer.Lastname, post.Title),
		SenderID:      &senderID,
		SenderType:    string(models.RecipientExplorer),
		SenderImage:   explorer.Image,
	}
	return s.notificationRepo.Create(notification)
}

func (s *notificationService) NotifyRating(post *models.Post, explorer *models.Explorer, rating int) error {
	ownerID, ownerType, ok := postOwner(post)
	if !ok || ownerID == explorer.ID {
		return nil
	}

	senderID := explorer.ID
	notification := &models.Notification{
		RecipientID:   ownerID,
		RecipientType: ownerType,
		Type:          models.NotificationTypeRating,
		Message:       fmt.Sprintf("%s %s rated %s %d stars", explorer.Firstname, explorer.Lastname, post.Title, rating),
		SenderID:      &senderID,
		SenderType:    string(models.RecipientExplorer),
		SenderImage:   explorer.Image,
	}
	return s.notificationRepo.Create(notification)
}

func (s *notificationService) NotifyEventJoin(event *models.Event, explorer *models.Explorer) error {
	var recipientID string
	var recipientType models.RecipientType
	switch {
	case event.BusinessID != nil:
		recipientID, recipientType = *event.BusinessID, models.RecipientBusiness
	case event.ExplorerID != nil:
		recipientID, recipientType = *event.ExplorerID, models.RecipientExplorer
	default:
		return nil
	}

	data, err := json.Marshal(map[string]string{"event_id": event.ID})
	if err != nil {
		return err
	}

	senderID := explorer.ID
	notification := &models.Notification{
		RecipientID:   recipientID,
		RecipientType: recipientType,
		Type:          models.NotificationTypeEventJoin,
		Message:       fmt.Sprintf("%s %s wants to join %s", explorer.Firstname, explorer.Lastname, event.Name),
		Data:          datatypes.JSON(data),
		SenderID:      &senderID,
		SenderType:    string(models.RecipientExplorer),
		SenderImage:   explorer.Image,
	}
	return s.notificationRepo.Create(notification)
}

func (s *notificationService) NotifyPayment(businessID string, amount float64, subMonths int) error {
	notification := &models.Notification{
		RecipientID:   businessID,
		RecipientType: models.RecipientBusiness,
		Type:          models.NotificationTypePayment,
		Message:       fmt.Sprintf("Your %d-month subscription is active ($%.2f)", subMonths, amount),
	}
	return s.notificationRepo.Create(notification)
}

func buildNotificationResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientType: string(n.RecipientType),
		Type:          n.Type,
		Message:       n.Message,
		IsRead:        n.IsRead,
		SenderID:      n.SenderID,
		SenderType:    n.SenderType,
		SenderImage:   n.SenderImage,
		CreatedAt:     n.CreatedAt.Format(time.RFC3339),
	}
}
