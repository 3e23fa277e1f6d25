package repositories

import (
	"errors"

	"gorm.io/gorm"

	"localink_backend/internal/models"
)

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrAlreadyJoined   = errors.New("join request already exists")
	ErrJoinReqNotFound = errors.New("join request not found")
)

type EventRepository interface {
	Create(event *models.Event) error
	FindByID(id string) (*models.Event, error)
	FindAll() ([]models.Event, error)
	FindByOrganizer(userID string) ([]models.Event, error)
	Update(event *models.Event) error
	Delete(id string) error

	CreateJoinRequest(req *models.EventJoinRequest) error
	HasJoinRequest(eventID, explorerID string) (bool, error)
	UpdateJoinRequestStatus(eventID, explorerID string, status models.JoinRequestStatus) error
	FindJoinRequests(eventID string) ([]models.EventJoinRequest, error)
}

type EventRepositoryImpl struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &EventRepositoryImpl{db: db}
}

func (r *EventRepositoryImpl) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

func (r *EventRepositoryImpl) FindByID(id string) (*models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindAll() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Order("start_date ASC").Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) FindByOrganizer(userID string) ([]models.Event, error) {
	var events []models.Event
	err := r.db.Where("explorer_id = ? OR business_id = ?", userID, userID).
		Order("start_date ASC").
		Find(&events).Error
	return events, err
}

func (r *EventRepositoryImpl) Update(event *models.Event) error {
	result := r.db.Model(&models.Event{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"name":        event.Name,
			"description": event.Description,
			"location":    event.Location,
			"start_date":  event.StartDate,
			"image":       event.Image,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).
			Delete(&models.EventJoinRequest{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Event{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
}

func (r *EventRepositoryImpl) CreateJoinRequest(req *models.EventJoinRequest) error {
	exists, err := r.HasJoinRequest(req.EventID, req.ExplorerID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyJoined
	}
	return r.db.Create(req).Error
}

func (r *EventRepositoryImpl) HasJoinRequest(eventID, explorerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.EventJoinRequest{}).
		Where("event_id = ? AND explorer_id = ?", eventID, explorerID).
		Count(&count).Error
	return count > 0, err
}

func (r *EventRepositoryImpl) UpdateJoinRequestStatus(eventID, explorerID string, status models.JoinRequestStatus) error {
	result := r.db.Model(&models.EventJoinRequest{}).
		Where("event_id = ? AND explorer_id = ?", eventID, explorerID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJoinReqNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) FindJoinRequests(eventID string) ([]models.EventJoinRequest, error) {
	var requests []models.EventJoinRequest
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
