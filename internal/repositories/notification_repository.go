package repositories

import (
	"errors"

	"gorm.io/gorm"

	"localink_backend/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)

	// FindForRecipient returns the recipient's notifications newest-first.
	// The ordering is part of the API contract, not a client assumption.
	FindForRecipient(recipientID string, recipientType models.RecipientType) ([]models.Notification, error)

	// MarkAsRead is idempotent: marking an already-read notification
	// succeeds. Only a missing id is an error.
	MarkAsRead(id string) error

	UnreadCount(recipientID string, recipientType models.RecipientType) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) FindForRecipient(recipientID string, recipientType models.RecipientType) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Where("recipient_id = ? AND recipient_type = ?", recipientID, recipientType).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) MarkAsRead(id string) error {
	notification, err := r.FindByID(id)
	if err != nil {
		return err
	}

	if notification.IsRead {
		return nil
	}

	return r.db.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *NotificationRepositoryImpl) UnreadCount(recipientID string, recipientType models.RecipientType) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND recipient_type = ? AND is_read = ?", recipientID, recipientType, false).
		Count(&count).Error
	return count, err
}
