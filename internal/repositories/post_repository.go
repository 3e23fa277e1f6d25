package repositories

import (
	"errors"

	"gorm.io/gorm"

	"localink_backend/internal/models"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id string) (*models.Post, error)
	FindAll() ([]models.Post, error)
	FindByOwner(ownerID string) ([]models.Post, error)

	// Ratings. UpsertRating creates or updates the explorer's rating for a
	// post, then RecalculateAverage recomputes the stored mean from the
	// rating rows inside the same transaction.
	UpsertRating(rating *models.Rating) error
	RecalculateAverage(postID string) (float64, error)

	// Favorites
	AddFavorite(favorite *models.Favorite) error
	RemoveFavorite(explorerID, postID string) error
	FindFavoritePosts(explorerID string) ([]models.Post, error)
	IsFavorite(explorerID, postID string) (bool, error)
}

type PostRepositoryImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepositoryImpl) FindByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *PostRepositoryImpl) FindAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) FindByOwner(ownerID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Where("business_id = ? OR explorer_id = ?", ownerID, ownerID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) UpsertRating(rating *models.Rating) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Rating
		err := tx.Where("post_id = ? AND explorer_id = ?", rating.PostID, rating.ExplorerID).
			First(&existing).Error

		if err == nil {
			existing.Value = rating.Value
			*rating = existing
			return tx.Model(&models.Rating{}).
				Where("id = ?", existing.ID).
				Update("value", existing.Value).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(rating).Error
	})
}

func (r *PostRepositoryImpl) RecalculateAverage(postID string) (float64, error) {
	var avg float64
	var count int64

	if err := r.db.Model(&models.Rating{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	if count > 0 {
		if err := r.db.Model(&models.Rating{}).
			Where("post_id = ?", postID).
			Select("AVG(value)").
			Scan(&avg).Error; err != nil {
			return 0, err
		}
	}

	result := r.db.Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			"average_rating": avg,
			"rating_count":   count,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrPostNotFound
	}

	return avg, nil
}

func (r *PostRepositoryImpl) AddFavorite(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

func (r *PostRepositoryImpl) RemoveFavorite(explorerID, postID string) error {
	result := r.db.Where("explorer_id = ? AND post_id = ?", explorerID, postID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (r *PostRepositoryImpl) FindFavoritePosts(explorerID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.
		Joins("JOIN favorites ON favorites.post_id = posts.id").
		Where("favorites.explorer_id = ?", explorerID).
		Order("favorites.created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepositoryImpl) IsFavorite(explorerID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("explorer_id = ? AND post_id = ?", explorerID, postID).
		Count(&count).Error
	return count > 0, err
}
