package handlers

import (
	"net/http"

	"localink_backend/internal/services"
	"localink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payment", h.CreatePayment)
	rg.GET("/payment/business/:businessId", h.ListForBusiness)
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.paymentService.CreatePayment(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) ListForBusiness(c *gin.Context) {
	payments, err := h.paymentService.ListForBusiness(c.Param("businessId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}
