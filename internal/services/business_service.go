package services

import (
	"localink_backend/internal/repositories"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"
)

// BusinessService owns the admin approval workflow. Transitions are one-shot:
// pending -> approved, or pending -> gone. A second approve or decline against
// a resolved id comes back NotFound instead of silently succeeding.
type BusinessService interface {
	ListPending() ([]dto.BusinessResponse, error)
	Approve(businessID string) error
	Decline(businessID string) error
	GetBusiness(businessID string) (*dto.BusinessResponse, error)
}

type businessService struct {
	businessRepo repositories.BusinessRepository
}

func NewBusinessService(businessRepo repositories.BusinessRepository) BusinessService {
	return &businessService{businessRepo: businessRepo}
}

func (s *businessService) ListPending() ([]dto.BusinessResponse, error) {
	businesses, err := s.businessRepo.FindPending()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BusinessResponse, 0, len(businesses))
	for i := range businesses {
		responses = append(responses, *BuildBusinessResponse(&businesses[i]))
	}
	return responses, nil
}

func (s *businessService) Approve(businessID string) error {
	if err := s.businessRepo.Approve(businessID); err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *businessService) Decline(businessID string) error {
	if err := s.businessRepo.DeletePending(businessID); err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *businessService) GetBusiness(businessID string) (*dto.BusinessResponse, error) {
	business, err := s.businessRepo.FindByID(businessID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrBusinessNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return BuildBusinessResponse(business), nil
}
