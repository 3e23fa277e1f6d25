package repositories

import (
	"time"

	"gorm.io/gorm"

	"localink_backend/internal/models"
)

type ChatRepository interface {
	CreateMessage(message *models.ChatMessage) error
	FindConversation(explorerID, businessID string) ([]models.ChatMessage, error)
	MarkSeen(explorerID, businessID string, reader models.RecipientType) error
}

type ChatRepositoryImpl struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &ChatRepositoryImpl{db: db}
}

func (r *ChatRepositoryImpl) CreateMessage(message *models.ChatMessage) error {
	return r.db.Create(message).Error
}

func (r *ChatRepositoryImpl) FindConversation(explorerID, businessID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := r.db.
		Where("explorer_id = ? AND business_id = ?", explorerID, businessID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

// MarkSeen stamps every unseen message sent by the other side.
func (r *ChatRepositoryImpl) MarkSeen(explorerID, businessID string, reader models.RecipientType) error {
	sender := models.RecipientExplorer
	if reader == models.RecipientExplorer {
		sender = models.RecipientBusiness
	}

	now := time.Now()
	return r.db.Model(&models.ChatMessage{}).
		Where("explorer_id = ? AND business_id = ? AND sender = ? AND seen_at IS NULL",
			explorerID, businessID, sender).
		Update("seen_at", now).Error
}
