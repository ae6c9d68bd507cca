package services

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"internhub_backend/internal/dto"
	"internhub_backend/internal/lock"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/payment"
	"internhub_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type PaymentService interface {
	// PurchasePlan создает ордер у провайдера и сохраняет его серверную
	// копию с параметрами покупки. Леджер не мутируется.
	PurchasePlan(ctx context.Context, internID string, req *dto.PurchasePlanRequest) (*dto.PurchasePlanResponse, error)

	// VerifyPayment аутентифицирует подтверждение платежа по HMAC-подписи
	// и ровно один раз применяет покупку к леджеру аккаунта.
	VerifyPayment(ctx context.Context, internID string, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)

	GetCurrentPlan(ctx context.Context, internID string) (*dto.CurrentPlanResponse, error)
	GetPaymentHistory(ctx context.Context, internID string) (*dto.PaymentHistoryResponse, error)
	GetPlans(ctx context.Context) ([]dto.PlanResponse, error)
}

type paymentService struct {
	internRepo  repositories.InternRepository
	paymentRepo repositories.PaymentRepository
	planRepo    repositories.PlanRepository
	gateway     payment.Gateway
	locker      lock.Locker
}

func NewPaymentService(
	internRepo repositories.InternRepository,
	paymentRepo repositories.PaymentRepository,
	planRepo repositories.PlanRepository,
	gateway payment.Gateway,
	locker lock.Locker,
) PaymentService {
	return &paymentService{
		internRepo:  internRepo,
		paymentRepo: paymentRepo,
		planRepo:    planRepo,
		gateway:     gateway,
		locker:      locker,
	}
}

func (s *paymentService) PurchasePlan(ctx context.Context, internID string, req *dto.PurchasePlanRequest) (*dto.PurchasePlanResponse, error) {
	plan, err := s.planRepo.FindByPlanID(req.PlanID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPlanNotFound) {
			return nil, apperrors.ErrPlanMismatch
		}
		return nil, apperrors.InternalError(err)
	}

	// Клиентские параметры сверяются с каталогом: расхождение в категории,
	// цене или кредитах - ошибка валидации, а не повод поверить клиенту.
	if models.PlanCategory(req.PlanCategory) != plan.Category ||
		req.Amount != plan.Price ||
		req.Credits != plan.Credits {
		return nil, apperrors.ErrPlanMismatch
	}

	intern, err := s.internRepo.FindByID(internID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternNotFound) {
			return nil, apperrors.ErrAccountNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	amountPaise := int64(math.Round(plan.Price * 100))
	receipt := payment.ReceiptID(intern.ID, time.Now())

	notes := map[string]string{
		"internId":     intern.ID,
		"planId":       plan.PlanID,
		"planCategory": string(plan.Category),
		"credits":      strconv.Itoa(plan.Credits),
	}

	providerOrder, err := s.gateway.CreateOrder(ctx, &payment.OrderRequest{
		AmountPaise: amountPaise,
		Currency:    plan.Currency,
		Receipt:     receipt,
		Notes:       notes,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Provider order creation failed", err, "plan_id", plan.PlanID)
		return nil, apperrors.ErrOrderCreationFailed(err)
	}

	notesJSON, err := json.Marshal(notes)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	order := &models.PaymentOrder{
		OrderID:      providerOrder.ID,
		InternID:     intern.ID,
		PlanID:       plan.PlanID,
		PlanCategory: plan.Category,
		Credits:      plan.Credits,
		AmountPaise:  amountPaise,
		Currency:     plan.Currency,
		Receipt:      receipt,
		Status:       models.OrderStatusCreated,
		Notes:        datatypes.JSON(notesJSON),
	}
	if err := s.paymentRepo.CreateOrder(order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "Payment order created",
		"order_id", providerOrder.ID,
		"plan_id", plan.PlanID,
		"amount_paise", amountPaise,
	)

	return &dto.PurchasePlanResponse{
		Success:  true,
		OrderID:  providerOrder.ID,
		Amount:   amountPaise,
		Currency: plan.Currency,
		Key:      s.gateway.Key(),
	}, nil
}

func (s *paymentService) VerifyPayment(ctx context.Context, internID string, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	// Проверка подписи - до любых обращений к леджеру.
	// Несовпадение - жёсткий отказ и сигнал о возможной подделке.
	if !s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		logger.CtxWarn(ctx, "Payment signature mismatch, possible tampering",
			"order_id", req.OrderID,
			"payment_id", req.PaymentID,
		)
		return nil, apperrors.ErrInvalidSignature
	}

	// Параметры покупки восстанавливаются из серверного ордера,
	// клиентские значения плана/суммы не участвуют в коммите.
	order, err := s.paymentRepo.FindOrderByOrderID(req.OrderID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentOrderNotFound) {
			return nil, apperrors.ErrPaymentOrderNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if order.InternID != internID {
		logger.CtxWarn(ctx, "Payment order ownership mismatch",
			"order_id", req.OrderID,
			"order_intern_id", order.InternID,
		)
		return nil, apperrors.ErrOrderOwnershipMismatch
	}

	// Коммиты одного аккаунта сериализуются пер-аккаунтной блокировкой;
	// повторная отправка того же платежа дополнительно гасится уникальным
	// индексом по handle внутри ApplyPurchase.
	release, err := s.locker.Acquire(ctx, lock.VerifyKey(internID))
	if err != nil {
		if apperrors.Is(err, lock.ErrLockFailed) {
			return nil, apperrors.ErrPaymentBusy
		}
		return nil, apperrors.InternalError(err)
	}
	defer release()

	intern, alreadyProcessed, err := s.paymentRepo.ApplyPurchase(order, req.PaymentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternNotFound) {
			return nil, apperrors.ErrAccountNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	message := "Payment verified and plan activated"
	if alreadyProcessed {
		message = "Payment already processed"
	} else {
		logger.CtxInfo(ctx, "Payment verified, ledger updated",
			"order_id", order.OrderID,
			"payment_id", req.PaymentID,
			"plan_category", order.PlanCategory,
			"credits_added", order.Credits,
		)
	}

	return &dto.VerifyPaymentResponse{
		Success:      true,
		Message:      message,
		JobCredits:   intern.JobCredits,
		PlanCategory: intern.PlanCategory,
	}, nil
}

func (s *paymentService) GetCurrentPlan(ctx context.Context, internID string) (*dto.CurrentPlanResponse, error) {
	intern, err := s.internRepo.FindByID(internID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternNotFound) {
			return nil, apperrors.ErrAccountNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CurrentPlanResponse{
		Success:      true,
		PlanCategory: intern.PlanCategory,
		JobCredits:   intern.JobCredits,
	}, nil
}

func (s *paymentService) GetPaymentHistory(ctx context.Context, internID string) (*dto.PaymentHistoryResponse, error) {
	if _, err := s.internRepo.FindByID(internID); err != nil {
		if apperrors.Is(err, repositories.ErrInternNotFound) {
			return nil, apperrors.ErrAccountNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	records, err := s.paymentRepo.FindRecordsByIntern(internID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	history := make([]dto.PaymentRecordResponse, 0, len(records))
	for _, rec := range records {
		history = append(history, dto.PaymentRecordResponse{
			Amount:        rec.Amount,
			Currency:      rec.Currency,
			PaymentID:     rec.PaymentID,
			Status:        rec.Status,
			PlanPurchased: rec.PlanPurchased,
			Date:          rec.CreatedAt,
		})
	}

	return &dto.PaymentHistoryResponse{
		Success:        true,
		PaymentHistory: history,
	}, nil
}

func (s *paymentService) GetPlans(ctx context.Context) ([]dto.PlanResponse, error) {
	plans, err := s.planRepo.FindActivePlans()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, dto.PlanResponse{
			PlanID:   p.PlanID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Currency: p.Currency,
			Credits:  p.Credits,
		})
	}

	return result, nil
}
