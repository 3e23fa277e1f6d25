package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// BeforeCreate fills the ID so the same models work on databases without a
// uuid default (the test suite runs on SQLite).
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// UserRole is the role embedded in JWT claims.
type UserRole string

const (
	UserRoleExplorer UserRole = "explorer"
	UserRoleBusiness UserRole = "business"
	UserRoleAdmin    UserRole = "admin"
)
