package models

import "time"

// ChatMessage is one message in an explorer<->business conversation. The
// conversation is identified by the (ExplorerID, BusinessID) pair; there is
// no separate dialog entity.
type ChatMessage struct {
	BaseModel
	ExplorerID string        `gorm:"not null;index:idx_conversation"`
	BusinessID string        `gorm:"not null;index:idx_conversation"`
	Sender     RecipientType `gorm:"type:varchar(20);not null"`
	Content    string        `gorm:"not null"`
	SeenAt     *time.Time
}
