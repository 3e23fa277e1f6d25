package services

import (
	"errors"

	"localink_backend/internal/auth"
	"localink_backend/internal/models"
	"localink_backend/internal/repositories"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"
)

type AuthService interface {
	Signup(req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	UpdateExplorer(explorerID string, req *dto.UpdateExplorerRequest) (*dto.ExplorerResponse, error)
}

type authService struct {
	explorerRepo repositories.ExplorerRepository
	businessRepo repositories.BusinessRepository
	adminRepo    repositories.AdminRepository
}

func NewAuthService(
	explorerRepo repositories.ExplorerRepository,
	businessRepo repositories.BusinessRepository,
	adminRepo repositories.AdminRepository,
) AuthService {
	return &authService{
		explorerRepo: explorerRepo,
		businessRepo: businessRepo,
		adminRepo:    adminRepo,
	}
}

func (s *authService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	switch req.Role {
	case dto.SignupRoleExplorer:
		return s.signupExplorer(req, hash)
	case dto.SignupRoleBusiness:
		return s.signupBusiness(req, hash)
	default:
		return nil, apperrors.NewBadRequestError("Unknown role: " + req.Role)
	}
}

func (s *authService) signupExplorer(req *dto.SignupRequest, hash string) (*dto.AuthResponse, error) {
	exists, err := s.explorerRepo.ExistsByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyExists(errors.New("explorer email or username taken"))
	}

	explorer := &models.Explorer{
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.explorerRepo.Create(explorer); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(explorer.ID, string(models.UserRoleExplorer))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		Role:        string(models.UserRoleExplorer),
		User:        BuildExplorerResponse(explorer),
	}, nil
}

func (s *authService) signupBusiness(req *dto.SignupRequest, hash string) (*dto.AuthResponse, error) {
	if req.Category != "" && !models.IsValidBusinessCategory(req.Category) {
		return nil, apperrors.NewBadRequestError("Unknown business category: " + req.Category)
	}

	exists, err := s.businessRepo.ExistsByEmailOrUsername(req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyExists(errors.New("business email or username taken"))
	}

	business := &models.Business{
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hash,
		BusinessName:  req.BusinessName,
		BOID:          req.BOID,
		Category:      req.Category,
		CredentialImg: req.CredentialImg,
	}
	if err := s.businessRepo.Create(business); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(business.ID, string(models.UserRoleBusiness))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		Role:        string(models.UserRoleBusiness),
		User:        BuildBusinessResponse(business),
	}, nil
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	switch req.Role {
	case dto.SignupRoleExplorer:
		explorer, err := s.explorerRepo.FindByEmail(req.Email)
		if err != nil || !auth.CheckPasswordHash(req.Password, explorer.PasswordHash) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.buildAuthResponse(explorer.ID, models.UserRoleExplorer, BuildExplorerResponse(explorer))

	case dto.SignupRoleBusiness:
		business, err := s.businessRepo.FindByEmail(req.Email)
		if err != nil || !auth.CheckPasswordHash(req.Password, business.PasswordHash) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.buildAuthResponse(business.ID, models.UserRoleBusiness, BuildBusinessResponse(business))

	case string(models.UserRoleAdmin):
		admin, err := s.adminRepo.FindByEmail(req.Email)
		if err != nil || !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return s.buildAuthResponse(admin.ID, models.UserRoleAdmin, nil)

	default:
		return nil, apperrors.NewBadRequestError("Unknown role: " + req.Role)
	}
}

func (s *authService) UpdateExplorer(explorerID string, req *dto.UpdateExplorerRequest) (*dto.ExplorerResponse, error) {
	explorer, err := s.explorerRepo.FindByID(explorerID)
	if err != nil {
		if errors.Is(err, repositories.ErrExplorerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if req.Firstname != nil {
		explorer.Firstname = *req.Firstname
	}
	if req.Lastname != nil {
		explorer.Lastname = *req.Lastname
	}
	if req.Description != nil {
		explorer.Description = *req.Description
	}
	if req.Image != nil {
		explorer.Image = *req.Image
	}
	if req.MobileNum != nil {
		explorer.MobileNum = *req.MobileNum
	}
	if req.Longitude != nil {
		explorer.Longitude = *req.Longitude
	}
	if req.Latitude != nil {
		explorer.Latitude = *req.Latitude
	}

	if err := s.explorerRepo.Update(explorer); err != nil {
		return nil, err
	}
	return BuildExplorerResponse(explorer), nil
}

func (s *authService) buildAuthResponse(userID string, role models.UserRole, user interface{}) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(userID, string(role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		AccessToken: token,
		Role:        string(role),
		User:        user,
	}, nil
}

func BuildExplorerResponse(e *models.Explorer) *dto.ExplorerResponse {
	return &dto.ExplorerResponse{
		ID:           e.ID,
		Firstname:    e.Firstname,
		Lastname:     e.Lastname,
		Username:     e.Username,
		Email:        e.Email,
		Description:  e.Description,
		Image:        e.Image,
		Badge:        e.Badge,
		NumOfPosts:   e.NumOfPosts,
		NumOfVisits:  e.NumOfVisits,
		NumOfReviews: e.NumOfReviews,
		Coins:        e.Coins,
		MobileNum:    e.MobileNum,
		Longitude:    e.Longitude,
		Latitude:     e.Latitude,
	}
}

func BuildBusinessResponse(b *models.Business) *dto.BusinessResponse {
	return &dto.BusinessResponse{
		ID:            b.ID,
		Username:      b.Username,
		Email:         b.Email,
		BusinessName:  b.BusinessName,
		BOID:          b.BOID,
		Category:      b.Category,
		CredentialImg: b.CredentialImg,
		Description:   b.Description,
		Image:         b.Image,
		MobileNum:     b.MobileNum,
		Longitude:     b.Longitude,
		Latitude:      b.Latitude,
		Approved:      b.Approved,
		Subscribed:    b.Subscribed,
	}
}
