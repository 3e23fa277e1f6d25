package services

import (
	"errors"
	"time"

	"localink_backend/internal/models"
	"localink_backend/internal/repositories"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"
)

type PostService interface {
	CreatePost(ownerID string, ownerRole models.UserRole, req *dto.CreatePostRequest) (*dto.PostResponse, error)
	GetPost(postID string) (*dto.PostResponse, error)
	ListAll() ([]dto.PostResponse, error)
	ListByOwner(ownerID string) ([]dto.PostResponse, error)

	// Rate records or replaces the explorer's rating and returns the new
	// mean over all ratings for the post.
	Rate(req *dto.RateRequest) (*dto.RateResponse, error)

	AddFavorite(explorerID, postID string) error
	RemoveFavorite(explorerID, postID string) error
	ListFavorites(explorerID string) ([]dto.PostResponse, error)
}

type postService struct {
	postRepo            repositories.PostRepository
	explorerRepo        repositories.ExplorerRepository
	businessRepo        repositories.BusinessRepository
	notificationService NotificationService
}

func NewPostService(
	postRepo repositories.PostRepository,
	explorerRepo repositories.ExplorerRepository,
	businessRepo repositories.BusinessRepository,
	notificationService NotificationService,
) PostService {
	return &postService{
		postRepo:            postRepo,
		explorerRepo:        explorerRepo,
		businessRepo:        businessRepo,
		notificationService: notificationService,
	}
}

func (s *postService) CreatePost(ownerID string, ownerRole models.UserRole, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	post := &models.Post{
		Title:       req.Title,
		Category:    req.Category,
		Location:    req.Location,
		Image1:      req.Image1,
		Image2:      req.Image2,
		Image3:      req.Image3,
		Image4:      req.Image4,
		Description: req.Description,
	}

	switch ownerRole {
	case models.UserRoleBusiness:
		if _, err := s.businessRepo.FindByID(ownerID); err != nil {
			return nil, apperrors.ErrNotFound(err)
		}
		post.BusinessID = &ownerID
	case models.UserRoleExplorer:
		if _, err := s.explorerRepo.FindByID(ownerID); err != nil {
			return nil, apperrors.ErrNotFound(err)
		}
		post.ExplorerID = &ownerID
	default:
		return nil, apperrors.ErrInvalidOperation("post", "Only explorers and businesses can create posts")
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	if post.ExplorerID != nil {
		// Counter drift here is tolerable; the post itself is committed.
		_ = s.explorerRepo.IncrementPostCount(ownerID)
	}

	return buildPostResponse(post), nil
}

func (s *postService) GetPost(postID string) (*dto.PostResponse, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return buildPostResponse(post), nil
}

func (s *postService) ListAll() ([]dto.PostResponse, error) {
	posts, err := s.postRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *buildPostResponse(&posts[i]))
	}
	return responses, nil
}

func (s *postService) ListByOwner(ownerID string) ([]dto.PostResponse, error) {
	posts, err := s.postRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *buildPostResponse(&posts[i]))
	}
	return responses, nil
}

func (s *postService) Rate(req *dto.RateRequest) (*dto.RateResponse, error) {
	post, err := s.postRepo.FindByID(req.PostID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	explorer, err := s.explorerRepo.FindByID(req.ExplorerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExplorerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if post.ExplorerID != nil && *post.ExplorerID == explorer.ID {
		return nil, apperrors.ErrInvalidOperation("rating", "Cannot rate your own post")
	}

	rating := &models.Rating{
		PostID:     post.ID,
		ExplorerID: explorer.ID,
		Value:      req.Rating,
	}
	if err := s.postRepo.UpsertRating(rating); err != nil {
		return nil, err
	}

	avg, err := s.postRepo.RecalculateAverage(post.ID)
	if err != nil {
		return nil, err
	}

	if err := s.notificationService.NotifyRating(post, explorer, req.Rating); err != nil {
		return nil, err
	}

	return &dto.RateResponse{AverageRating: avg}, nil
}

func (s *postService) AddFavorite(explorerID, postID string) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPostNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	explorer, err := s.explorerRepo.FindByID(explorerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExplorerNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	already, err := s.postRepo.IsFavorite(explorerID, postID)
	if err != nil {
		return err
	}
	if already {
		return apperrors.ErrAlreadyExists(errors.New("post already favorited"))
	}

	favorite := &models.Favorite{ExplorerID: explorerID, PostID: postID}
	if err := s.postRepo.AddFavorite(favorite); err != nil {
		return err
	}

	return s.notificationService.NotifyFavorite(post, explorer)
}

func (s *postService) RemoveFavorite(explorerID, postID string) error {
	if err := s.postRepo.RemoveFavorite(explorerID, postID); err != nil {
		if apperrors.Is(err, repositories.ErrFavoriteNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *postService) ListFavorites(explorerID string) ([]dto.PostResponse, error) {
	if _, err := s.explorerRepo.FindByID(explorerID); err != nil {
		if apperrors.Is(err, repositories.ErrExplorerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	posts, err := s.postRepo.FindFavoritePosts(explorerID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, *buildPostResponse(&posts[i]))
	}
	return responses, nil
}

func buildPostResponse(p *models.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:            p.ID,
		BusinessID:    p.BusinessID,
		ExplorerID:    p.ExplorerID,
		Title:         p.Title,
		Category:      p.Category,
		Location:      p.Location,
		Image1:        p.Image1,
		Image2:        p.Image2,
		Image3:        p.Image3,
		Image4:        p.Image4,
		Description:   p.Description,
		AverageRating: p.AverageRating,
		RatingCount:   p.RatingCount,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
