package database

import (
	"localink_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs the schema migration for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Explorer{},
		&models.Admin{},
		&models.Business{},
		&models.Post{},
		&models.Rating{},
		&models.Favorite{},
		&models.Event{},
		&models.EventJoinRequest{},
		&models.Notification{},
		&models.Payment{},
		&models.ChatMessage{},
	)
}
