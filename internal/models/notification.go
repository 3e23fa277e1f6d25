package models

import "gorm.io/datatypes"

// RecipientType discriminates who a notification is addressed to. An explicit
// column, not inferred from which foreign key happens to be set.
type RecipientType string

const (
	RecipientExplorer RecipientType = "explorer"
	RecipientBusiness RecipientType = "business"
)

const (
	NotificationTypeFavorite  = "favorite"
	NotificationTypeEventJoin = "event_join"
	NotificationTypeRating    = "rating"
	NotificationTypePayment   = "payment"
)

// Notification is a recipient-addressed record of a domain event. IsRead only
// ever transitions false -> true.
type Notification struct {
	BaseModel
	RecipientID   string         `gorm:"not null;index:idx_recipient"`
	RecipientType RecipientType  `gorm:"type:varchar(20);not null;index:idx_recipient"`
	Type          string         `gorm:"not null"`
	Message       string
	Data          datatypes.JSON
	IsRead        bool    `gorm:"default:false"`
	SenderID      *string `gorm:"index"`
	SenderType    string
	SenderImage   string
}
