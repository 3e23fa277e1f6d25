package models

import "time"

// Business is a venue-owner account. A freshly signed-up business is pending:
// Approved is false and the row shows up in the pending query. Approval flips
// the flag; decline deletes the row outright, so the pending set is always
// the exact complement of approved accounts.
type Business struct {
	BaseModel
	Username       string `gorm:"uniqueIndex;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	BusinessName   string
	BOID           string `gorm:"column:boid"`
	Category       string
	CredentialImg  string
	Description    string
	Image          string
	MobileNum      string
	Longitude      float64
	Latitude       float64
	Approved       bool `gorm:"default:false;index"`
	Subscribed     bool `gorm:"default:false"`
	SubscribedTill *time.Time

	// Relations
	Posts    []Post    `gorm:"foreignKey:BusinessID"`
	Payments []Payment `gorm:"foreignKey:BusinessID"`
}

// BusinessCategories are the venue categories the clients filter by.
var BusinessCategories = []string{
	"Restaurant",
	"Coffee Shop",
	"Nature",
	"Art",
	"Camping",
	"Workout",
	"Cycling",
}

func IsValidBusinessCategory(category string) bool {
	for _, c := range BusinessCategories {
		if c == category {
			return true
		}
	}
	return false
}
