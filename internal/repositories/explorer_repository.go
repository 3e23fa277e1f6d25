package repositories

import (
	"errors"

	"gorm.io/gorm"

	"localink_backend/internal/models"
)

var ErrExplorerNotFound = errors.New("explorer not found")

type ExplorerRepository interface {
	Create(explorer *models.Explorer) error
	FindByID(id string) (*models.Explorer, error)
	FindByEmail(email string) (*models.Explorer, error)
	ExistsByEmailOrUsername(email, username string) (bool, error)
	Update(explorer *models.Explorer) error
	IncrementPostCount(id string) error
}

type ExplorerRepositoryImpl struct {
	db *gorm.DB
}

func NewExplorerRepository(db *gorm.DB) ExplorerRepository {
	return &ExplorerRepositoryImpl{db: db}
}

func (r *ExplorerRepositoryImpl) Create(explorer *models.Explorer) error {
	return r.db.Create(explorer).Error
}

func (r *ExplorerRepositoryImpl) FindByID(id string) (*models.Explorer, error) {
	var explorer models.Explorer
	err := r.db.First(&explorer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExplorerNotFound
		}
		return nil, err
	}
	return &explorer, nil
}

func (r *ExplorerRepositoryImpl) FindByEmail(email string) (*models.Explorer, error) {
	var explorer models.Explorer
	err := r.db.First(&explorer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExplorerNotFound
		}
		return nil, err
	}
	return &explorer, nil
}

func (r *ExplorerRepositoryImpl) ExistsByEmailOrUsername(email, username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Explorer{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

func (r *ExplorerRepositoryImpl) Update(explorer *models.Explorer) error {
	return r.db.Save(explorer).Error
}

func (r *ExplorerRepositoryImpl) IncrementPostCount(id string) error {
	result := r.db.Model(&models.Explorer{}).Where("id = ?", id).
		UpdateColumn("num_of_posts", gorm.Expr("num_of_posts + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExplorerNotFound
	}
	return nil
}
