package handlers

import (
	"net/http"

	"localink_backend/internal/models"
	"localink_backend/internal/services"
	"localink_backend/internal/services/dto"
	"localink_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("/user/:userId", h.ListForUser)
		notifications.GET("/user/:userId/unread-count", h.UnreadCount)
		notifications.PUT("/:id/read", h.MarkAsRead)
	}
}

// recipientTypeFromQuery maps the userType query param onto a recipient type.
func recipientTypeFromQuery(c *gin.Context) (models.RecipientType, bool) {
	switch c.Query("userType") {
	case string(models.RecipientExplorer):
		return models.RecipientExplorer, true
	case string(models.RecipientBusiness):
		return models.RecipientBusiness, true
	default:
		apperrors.HandleError(c, apperrors.NewBadRequestError("userType must be explorer or business"))
		return "", false
	}
}

func (h *NotificationHandler) ListForUser(c *gin.Context) {
	recipientType, ok := recipientTypeFromQuery(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListForRecipient(c.Param("userId"), recipientType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	recipientType, ok := recipientTypeFromQuery(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(c.Param("userId"), recipientType)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{UnreadCount: count})
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if err := h.notificationService.MarkAsRead(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}
