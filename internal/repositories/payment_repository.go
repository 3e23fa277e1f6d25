package repositories

import (
	"gorm.io/gorm"

	"localink_backend/internal/models"
)

type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByBusiness(businessID string) ([]models.Payment, error)

	WithTx(tx *gorm.DB) PaymentRepository
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) WithTx(tx *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: tx}
}

func (r *PaymentRepositoryImpl) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByBusiness(businessID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
