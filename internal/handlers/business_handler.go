package handlers

import (
	"net/http"

	"localink_backend/internal/middleware"
	"localink_backend/internal/models"
	"localink_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// BusinessHandler serves the approval workflow. Listing pending businesses is
// public (the dashboard sends no token); approve and decline are admin-only.
type BusinessHandler struct {
	*BaseHandler
	businessService services.BusinessService
}

func NewBusinessHandler(base *BaseHandler, businessService services.BusinessService) *BusinessHandler {
	return &BusinessHandler{
		BaseHandler:     base,
		businessService: businessService,
	}
}

func (h *BusinessHandler) RegisterRoutes(rg *gin.RouterGroup) {
	business := rg.Group("/business")
	{
		business.GET("/pending", h.ListPending)
		business.GET("/:idbusiness", h.GetBusiness)
	}

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.PUT("/approve/:idbusiness", h.Approve)
		admin.DELETE("/decline/:idbusiness", h.Decline)
	}
}

func (h *BusinessHandler) ListPending(c *gin.Context) {
	pending, err := h.businessService.ListPending()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pending)
}

func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	business, err := h.businessService.GetBusiness(c.Param("idbusiness"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, business)
}

func (h *BusinessHandler) Approve(c *gin.Context) {
	if err := h.businessService.Approve(c.Param("idbusiness")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business approved"})
}

func (h *BusinessHandler) Decline(c *gin.Context) {
	if err := h.businessService.Decline(c.Param("idbusiness")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Business declined"})
}
