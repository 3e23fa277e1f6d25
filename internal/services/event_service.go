package services

import (
	"time"

	"localink_backend/internal/models"
	"localink_backend/internal/repositories"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"
)

type EventService interface {
	CreateEvent(organizerID string, organizerRole models.UserRole, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetAllEvents() ([]dto.EventResponse, error)
	GetUserEvents(userID string) ([]dto.EventResponse, error)
	UpdateEvent(eventID, callerID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEvent(eventID, callerID string) error

	// Join records the explorer's request and notifies the organizer. A
	// duplicate join is a conflict, not a silent no-op.
	Join(req *dto.JoinEventRequest) error

	// RespondToJoin lets the organizer accept or decline a pending request.
	RespondToJoin(eventID, callerID string, req *dto.RespondJoinRequest) error
}

type eventService struct {
	eventRepo           repositories.EventRepository
	explorerRepo        repositories.ExplorerRepository
	notificationService NotificationService
}

func NewEventService(
	eventRepo repositories.EventRepository,
	explorerRepo repositories.ExplorerRepository,
	notificationService NotificationService,
) EventService {
	return &eventService{
		eventRepo:           eventRepo,
		explorerRepo:        explorerRepo,
		notificationService: notificationService,
	}
}

func (s *eventService) CreateEvent(organizerID string, organizerRole models.UserRole, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &models.Event{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartDate:   req.StartDate,
		Image:       req.Image,
	}

	switch organizerRole {
	case models.UserRoleExplorer:
		event.ExplorerID = &organizerID
	case models.UserRoleBusiness:
		event.BusinessID = &organizerID
	default:
		return nil, apperrors.ErrInvalidOperation("event", "Only explorers and businesses can create events")
	}

	if err := s.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return buildEventResponse(event, 0), nil
}

func (s *eventService) GetAllEvents() ([]dto.EventResponse, error) {
	events, err := s.eventRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return s.buildList(events)
}

func (s *eventService) GetUserEvents(userID string) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.FindByOrganizer(userID)
	if err != nil {
		return nil, err
	}
	return s.buildList(events)
}

func (s *eventService) buildList(events []models.Event) ([]dto.EventResponse, error) {
	responses := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		requests, err := s.eventRepo.FindJoinRequests(events[i].ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *buildEventResponse(&events[i], len(requests)))
	}
	return responses, nil
}

func (s *eventService) UpdateEvent(eventID, callerID string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if !isOrganizer(event, callerID) {
		return nil, apperrors.NewForbiddenError("Only the organizer can edit this event")
	}

	event.Name = req.Name
	event.Description = req.Description
	event.Location = req.Location
	event.StartDate = req.StartDate
	event.Image = req.Image

	if err := s.eventRepo.Update(event); err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	requests, err := s.eventRepo.FindJoinRequests(event.ID)
	if err != nil {
		return nil, err
	}
	return buildEventResponse(event, len(requests)), nil
}

func (s *eventService) DeleteEvent(eventID, callerID string) error {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	if !isOrganizer(event, callerID) {
		return apperrors.NewForbiddenError("Only the organizer can delete this event")
	}

	if err := s.eventRepo.Delete(eventID); err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *eventService) Join(req *dto.JoinEventRequest) error {
	event, err := s.eventRepo.FindByID(req.EventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	explorer, err := s.explorerRepo.FindByID(req.ExplorerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrExplorerNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	if isOrganizer(event, explorer.ID) {
		return apperrors.ErrInvalidOperation("event", "Cannot join your own event")
	}

	joinReq := &models.EventJoinRequest{
		EventID:    event.ID,
		ExplorerID: explorer.ID,
		Status:     models.JoinRequestPending,
	}
	if err := s.eventRepo.CreateJoinRequest(joinReq); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyJoined) {
			return apperrors.ErrConflict(err, "event", "Join request already sent")
		}
		return err
	}

	return s.notificationService.NotifyEventJoin(event, explorer)
}

func (s *eventService) RespondToJoin(eventID, callerID string, req *dto.RespondJoinRequest) error {
	event, err := s.eventRepo.FindByID(eventID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEventNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	if !isOrganizer(event, callerID) {
		return apperrors.NewForbiddenError("Only the organizer can respond to join requests")
	}

	has, err := s.eventRepo.HasJoinRequest(eventID, req.ExplorerID)
	if err != nil {
		return err
	}
	if !has {
		return apperrors.ErrNotFound(repositories.ErrJoinReqNotFound)
	}

	status := models.JoinRequestAccepted
	if req.Status == string(models.JoinRequestDeclined) {
		status = models.JoinRequestDeclined
	}
	return s.eventRepo.UpdateJoinRequestStatus(eventID, req.ExplorerID, status)
}

func isOrganizer(event *models.Event, userID string) bool {
	if event.ExplorerID != nil && *event.ExplorerID == userID {
		return true
	}
	if event.BusinessID != nil && *event.BusinessID == userID {
		return true
	}
	return false
}

func buildEventResponse(e *models.Event, joinCount int) *dto.EventResponse {
	return &dto.EventResponse{
		ID:          e.ID,
		ExplorerID:  e.ExplorerID,
		BusinessID:  e.BusinessID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		StartDate:   e.StartDate.Format(time.RFC3339),
		Image:       e.Image,
		JoinCount:   joinCount,
	}
}
