package repositories

import (
	"errors"

	"gorm.io/gorm"

	"localink_backend/internal/models"
)

var ErrAdminNotFound = errors.New("admin not found")

type AdminRepository interface {
	Create(admin *models.Admin) error
	FindByEmail(email string) (*models.Admin, error)
}

type AdminRepositoryImpl struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &AdminRepositoryImpl{db: db}
}

func (r *AdminRepositoryImpl) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

func (r *AdminRepositoryImpl) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}
