package dto

import "time"

type CreateEventRequest struct {
	Name        string    `json:"eventName" validate:"required,min=1,max=120"`
	Description string    `json:"description"`
	Location    string    `json:"eventLocation" validate:"required"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	Image       string    `json:"image"`
}

type UpdateEventRequest struct {
	Name        string    `json:"eventName" validate:"required,min=1,max=120"`
	Description string    `json:"description"`
	Location    string    `json:"eventLocation" validate:"required"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	Image       string    `json:"image"`
}

type JoinEventRequest struct {
	EventID    string `json:"idevents" validate:"required"`
	ExplorerID string `json:"explorer_idexplorer" validate:"required"`
}

// RespondJoinRequest is the organizer's verdict on a pending join request.
type RespondJoinRequest struct {
	ExplorerID string `json:"explorer_idexplorer" validate:"required"`
	Status     string `json:"status" validate:"required,oneof=accepted declined"`
}

type EventResponse struct {
	ID          string  `json:"idevents"`
	ExplorerID  *string `json:"explorer_idexplorer,omitempty"`
	BusinessID  *string `json:"business_idbusiness,omitempty"`
	Name        string  `json:"eventName"`
	Description string  `json:"description"`
	Location    string  `json:"eventLocation"`
	StartDate   string  `json:"startDate"`
	Image       string  `json:"image"`
	JoinCount   int     `json:"joinCount"`
}
