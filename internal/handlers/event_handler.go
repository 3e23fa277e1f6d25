package handlers

import (
	"net/http"

	"localink_backend/internal/middleware"
	"localink_backend/internal/services"
	"localink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

func (h *EventHandler) RegisterRoutes(rg *gin.RouterGroup) {
	events := rg.Group("/events")
	{
		events.GET("/getAll", h.GetAll)
		events.GET("/user/:userId", h.GetUserEvents)
		events.POST("/join", h.Join)
		events.POST("/create", middleware.AuthMiddleware(), h.Create)
		events.PUT("/:idevents/edit", middleware.AuthMiddleware(), h.Update)
		events.PUT("/:idevents/respond", middleware.AuthMiddleware(), h.RespondToJoin)
		events.DELETE("/:idevents/del", middleware.AuthMiddleware(), h.Delete)
	}
}

func (h *EventHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.CreateEvent(userID, middleware.GetUserRole(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *EventHandler) GetAll(c *gin.Context) {
	events, err := h.eventService.GetAllEvents()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetUserEvents(c *gin.Context) {
	events, err := h.eventService.GetUserEvents(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	event, err := h.eventService.UpdateEvent(c.Param("idevents"), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(c.Param("idevents"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

func (h *EventHandler) RespondToJoin(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RespondJoinRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.eventService.RespondToJoin(c.Param("idevents"), userID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Join request " + req.Status})
}

func (h *EventHandler) Join(c *gin.Context) {
	var req dto.JoinEventRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.eventService.Join(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Join request sent"})
}
