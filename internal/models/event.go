package models

import "time"

// Event is a scheduled gathering. The organizer is either an explorer or a
// business; exactly one of the two FKs is set.
type Event struct {
	BaseModel
	ExplorerID  *string `gorm:"index"`
	BusinessID  *string `gorm:"index"`
	Name        string  `gorm:"not null"`
	Description string
	Location    string
	StartDate   time.Time
	Image       string

	// Relations
	JoinRequests []EventJoinRequest `gorm:"foreignKey:EventID"`
}

type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestAccepted JoinRequestStatus = "accepted"
	JoinRequestDeclined JoinRequestStatus = "declined"
)

// EventJoinRequest records an explorer asking to join an event. The status
// here is the authoritative outcome; the notification sent to the organizer
// only tracks read/unread.
type EventJoinRequest struct {
	BaseModel
	EventID    string            `gorm:"not null;index;uniqueIndex:idx_event_explorer"`
	ExplorerID string            `gorm:"not null;index;uniqueIndex:idx_event_explorer"`
	Status     JoinRequestStatus `gorm:"type:varchar(20);default:'pending'"`
}
