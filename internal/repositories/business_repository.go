package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"localink_backend/internal/models"
)

var ErrBusinessNotFound = errors.New("business not found")

type BusinessRepository interface {
	Create(business *models.Business) error
	FindByID(id string) (*models.Business, error)
	FindByEmail(email string) (*models.Business, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
	FindPending() ([]models.Business, error)

	// Approve flips the pending flag. Declined rows are removed, not flagged,
	// so the pending set stays the exact complement of approved accounts.
	// Both return ErrBusinessNotFound when the row is absent or already
	// resolved, which is what makes a second approve/decline fail.
	Approve(id string) error
	DeletePending(id string) error

	MarkSubscribed(id string, until time.Time) error

	WithTx(tx *gorm.DB) BusinessRepository
}

type BusinessRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) BusinessRepository {
	return &BusinessRepositoryImpl{db: db}
}

func (r *BusinessRepositoryImpl) WithTx(tx *gorm.DB) BusinessRepository {
	return &BusinessRepositoryImpl{db: tx}
}

func (r *BusinessRepositoryImpl) Create(business *models.Business) error {
	return r.db.Create(business).Error
}

func (r *BusinessRepositoryImpl) FindByID(id string) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) FindByEmail(email string) (*models.Business, error) {
	var business models.Business
	err := r.db.First(&business, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) ExistsByEmailOrUsername(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Business{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func (r *BusinessRepositoryImpl) FindPending() ([]models.Business, error) {
	var businesses []models.Business
	err := r.db.Where("approved = ?", false).
		Order("created_at ASC").
		Find(&businesses).Error
	return businesses, err
}

func (r *BusinessRepositoryImpl) Approve(id string) error {
	result := r.db.Model(&models.Business{}).
		Where("id = ? AND approved = ?", id, false).
		Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepositoryImpl) DeletePending(id string) error {
	result := r.db.Where("id = ? AND approved = ?", id, false).
		Delete(&models.Business{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepositoryImpl) MarkSubscribed(id string, until time.Time) error {
	result := r.db.Model(&models.Business{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"subscribed":      true,
			"subscribed_till": until,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
