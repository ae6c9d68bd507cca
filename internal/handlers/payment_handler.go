package handlers

import (
	"net/http"

	"internhub_backend/internal/dto"
	"internhub_backend/internal/middleware"
	"internhub_backend/internal/services"

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

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public - каталог тарифов
	r.GET("/plans", h.GetPlans)

	// Protected - жизненный цикл платежа
	payments := r.Group("/payments")
	payments.Use(middleware.AuthMiddleware())
	{
		payments.POST("/purchase", h.PurchasePlan)
		payments.POST("/verify", h.VerifyPayment)
		payments.GET("/current-plan", h.GetCurrentPlan)
		payments.GET("/history", h.GetPaymentHistory)
	}
}

// PurchasePlan - POST /payments/purchase
// Создает ордер у провайдера; леджер аккаунта не трогается.
func (h *PaymentHandler) PurchasePlan(c *gin.Context) {
	internID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.PurchasePlanRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.paymentService.PurchasePlan(c.Request.Context(), internID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyPayment - POST /payments/verify
// Принимает подписанное подтверждение платежа и применяет покупку.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	internID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.paymentService.VerifyPayment(c.Request.Context(), internID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCurrentPlan - GET /payments/current-plan
func (h *PaymentHandler) GetCurrentPlan(c *gin.Context) {
	internID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.GetCurrentPlan(c.Request.Context(), internID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPaymentHistory - GET /payments/history
func (h *PaymentHandler) GetPaymentHistory(c *gin.Context) {
	internID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.GetPaymentHistory(c.Request.Context(), internID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPlans - GET /plans
func (h *PaymentHandler) GetPlans(c *gin.Context) {
	plans, err := h.paymentService.GetPlans(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"plans":   plans,
	})
}
