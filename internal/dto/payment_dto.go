package dto

import (
	"time"

	"internhub_backend/internal/models"
)

// PurchasePlanRequest - тело POST /payments/purchase.
// Все поля обязательны; сумма и кредиты сверяются с каталогом планов.
type PurchasePlanRequest struct {
	PlanID       string  `json:"planId" binding:"required"`
	PlanCategory string  `json:"planCategory" binding:"required" validate:"oneof=SILVER GOLD PLATINUM"`
	Amount       float64 `json:"amount" binding:"required" validate:"gt=0"`
	Credits      int     `json:"credits" binding:"required" validate:"gt=0"`
}

type PurchasePlanResponse struct {
	Success  bool   `json:"success"`
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // в пайсах
	Currency string `json:"currency"`
	Key      string `json:"key"` // публичный ключ провайдера для чекаута
}

// VerifyPaymentRequest - тело POST /payments/verify.
// Параметры плана сюда сознательно не входят: они восстанавливаются
// из серверного PaymentOrder по orderId. Лишние поля тела игнорируются.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type VerifyPaymentResponse struct {
	Success      bool                `json:"success"`
	Message      string              `json:"message,omitempty"`
	JobCredits   int                 `json:"jobCredits"`
	PlanCategory models.PlanCategory `json:"planCategory"`
}

type CurrentPlanResponse struct {
	Success      bool                `json:"success"`
	PlanCategory models.PlanCategory `json:"planCategory"`
	JobCredits   int                 `json:"jobCredits"`
}

type PaymentRecordResponse struct {
	Amount        float64              `json:"amount"`
	Currency      string               `json:"currency"`
	PaymentID     string               `json:"paymentId"`
	Status        models.PaymentStatus `json:"status"`
	PlanPurchased models.PlanCategory  `json:"planPurchased"`
	Date          time.Time            `json:"date"`
}

type PaymentHistoryResponse struct {
	Success        bool                    `json:"success"`
	PaymentHistory []PaymentRecordResponse `json:"paymentHistory"`
}

type PlanResponse struct {
	PlanID   string              `json:"planId"`
	Name     string              `json:"name"`
	Category models.PlanCategory `json:"category"`
	Price    float64             `json:"price"`
	Currency string              `json:"currency"`
	Credits  int                 `json:"credits"`
}
