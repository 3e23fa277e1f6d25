package services

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"localink_backend/internal/logger"
	"localink_backend/internal/models"
	"localink_backend/internal/payments"
	"localink_backend/internal/repositories"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"
)

type PaymentService interface {
	CreatePayment(req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error)
	ListForBusiness(businessID string) ([]dto.PaymentResponse, error)
}

// paymentService runs the whole purchase as one database transaction: payment
// row, gateway intent, subscription flip. A gateway failure rolls everything
// back, so there is never a Payment row without an intent or a subscribed
// business without a Payment row.
type paymentService struct {
	db                  *gorm.DB
	paymentRepo         repositories.PaymentRepository
	businessRepo        repositories.BusinessRepository
	gateway             payments.Gateway
	notificationService NotificationService
}

func NewPaymentService(
	db *gorm.DB,
	paymentRepo repositories.PaymentRepository,
	businessRepo repositories.BusinessRepository,
	gateway payments.Gateway,
	notificationService NotificationService,
) PaymentService {
	return &paymentService{
		db:                  db,
		paymentRepo:         paymentRepo,
		businessRepo:        businessRepo,
		gateway:             gateway,
		notificationService: notificationService,
	}
}

func (s *paymentService) CreatePayment(req *dto.CreatePaymentRequest) (*dto.CreatePaymentResponse, error) {
	business, err := s.businessRepo.FindByID(req.BusinessID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	var clientSecret string

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		payment := &models.Payment{
			CardholderName: req.CardholderName,
			Amount:         req.Amount,
			SubMonths:      req.SubMonths,
			BusinessID:     business.ID,
			Status:         models.PaymentStatusCreated,
		}
		if err := s.paymentRepo.WithTx(tx).Create(payment); err != nil {
			return err
		}

		intent, err := s.gateway.CreateIntent(payments.IntentRequest{
			Amount:      int64(math.Round(req.Amount * 100)),
			Currency:    "usd",
			Description: fmt.Sprintf("Payment for %s", business.BusinessName),
			BusinessID:  business.ID,
		})
		if err != nil {
			logger.WithError(err).Error("payment gateway rejected intent", "business_id", business.ID)
			return apperrors.ErrGatewayFailure
		}

		until := time.Now().AddDate(0, req.SubMonths, 0)
		if err := s.businessRepo.WithTx(tx).MarkSubscribed(business.ID, until); err != nil {
			return err
		}

		if err := tx.Model(&models.Payment{}).
			Where("id = ?", payment.ID).
			Update("intent_id", intent.ID).Error; err != nil {
			return err
		}

		clientSecret = intent.ClientSecret
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Best effort; the subscription is already committed.
	if err := s.notificationService.NotifyPayment(business.ID, req.Amount, req.SubMonths); err != nil {
		logger.WithError(err).Warn("failed to create payment notification", "business_id", business.ID)
	}

	return &dto.CreatePaymentResponse{ClientSecret: clientSecret}, nil
}

func (s *paymentService) ListForBusiness(businessID string) ([]dto.PaymentResponse, error) {
	if _, err := s.businessRepo.FindByID(businessID); err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	rows, err := s.paymentRepo.FindByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PaymentResponse, 0, len(rows))
	for i := range rows {
		p := &rows[i]
		responses = append(responses, dto.PaymentResponse{
			ID:             p.ID,
			CardholderName: p.CardholderName,
			Amount:         p.Amount,
			SubMonths:      p.SubMonths,
			BusinessID:     p.BusinessID,
			Status:         p.Status,
			CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}
