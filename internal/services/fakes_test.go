package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"internhub_backend/internal/lock"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/payment"

	"gorm.io/datatypes"
)

// In-memory фейки репозиториев и инфраструктуры. Повторяют контрактное
// поведение реализаций на Postgres/Redis (идемпотентность, атомарную
// квоту), чтобы сервисный слой тестировался без внешних зависимостей.

type fakeInternRepo struct {
	interns map[string]*models.Intern
}

func newFakeInternRepo(interns ...*models.Intern) *fakeInternRepo {
	repo := &fakeInternRepo{interns: make(map[string]*models.Intern)}
	for _, i := range interns {
		repo.interns[i.ID] = i
	}
	return repo
}

func (f *fakeInternRepo) Create(intern *models.Intern) error {
	f.interns[intern.ID] = intern
	return nil
}

func (f *fakeInternRepo) FindByID(id string) (*models.Intern, error) {
	intern, ok := f.interns[id]
	if !ok {
		return nil, repositories.ErrInternNotFound
	}
	cp := *intern
	return &cp, nil
}

func (f *fakeInternRepo) FindByEmail(email string) (*models.Intern, error) {
	for _, intern := range f.interns {
		if intern.Email == email {
			cp := *intern
			return &cp, nil
		}
	}
	return nil, repositories.ErrInternNotFound
}

func (f *fakeInternRepo) RegisterJobApplication(internID, jobID string) (*models.Intern, error) {
	intern, ok := f.interns[internID]
	if !ok {
		return nil, repositories.ErrInternNotFound
	}
	if intern.PlanCategory == models.PlanCategoryNone && intern.JobsAppliedCount >= intern.FreeJobLimit {
		return nil, repositories.ErrQuotaExceeded
	}
	intern.JobsAppliedCount++

	var applied []string
	if len(intern.AppliedFor) > 0 {
		if err := json.Unmarshal(intern.AppliedFor, &applied); err != nil {
			return nil, err
		}
	}
	applied = append(applied, jobID)
	appliedJSON, err := json.Marshal(applied)
	if err != nil {
		return nil, err
	}
	intern.AppliedFor = datatypes.JSON(appliedJSON)

	cp := *intern
	return &cp, nil
}

type fakePaymentRepo struct {
	interns *fakeInternRepo
	orders  map[string]*models.PaymentOrder
	records map[string]models.PaymentRecord // ключ internID|paymentID
}

func newFakePaymentRepo(interns *fakeInternRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		interns: interns,
		orders:  make(map[string]*models.PaymentOrder),
		records: make(map[string]models.PaymentRecord),
	}
}

func (f *fakePaymentRepo) CreateOrder(order *models.PaymentOrder) error {
	f.orders[order.OrderID] = order
	return nil
}

func (f *fakePaymentRepo) FindOrderByOrderID(orderID string) (*models.PaymentOrder, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, repositories.ErrPaymentOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (f *fakePaymentRepo) ApplyPurchase(order *models.PaymentOrder, paymentID string) (*models.Intern, bool, error) {
	intern, ok := f.interns.interns[order.InternID]
	if !ok {
		return nil, false, repositories.ErrInternNotFound
	}

	key := order.InternID + "|" + paymentID
	if _, exists := f.records[key]; exists {
		cp := *intern
		return &cp, true, nil
	}

	f.records[key] = models.PaymentRecord{
		BaseModel:     models.BaseModel{ID: key, CreatedAt: time.Now()},
		InternID:      order.InternID,
		PaymentID:     paymentID,
		OrderID:       order.OrderID,
		Amount:        float64(order.AmountPaise) / 100,
		Currency:      order.Currency,
		Status:        models.PaymentStatusSuccess,
		PlanPurchased: order.PlanCategory,
	}
	intern.JobCredits += order.Credits
	intern.PlanCategory = order.PlanCategory
	if stored, ok := f.orders[order.OrderID]; ok {
		stored.Status = models.OrderStatusVerified
	}

	cp := *intern
	return &cp, false, nil
}

func (f *fakePaymentRepo) FindRecordsByIntern(internID string) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	for _, rec := range f.records {
		if rec.InternID == internID {
			records = append(records, rec)
		}
	}
	return records, nil
}

type fakePlanRepo struct {
	plans []models.CreditPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: []models.CreditPlan{
		{PlanID: "silver", Name: "Silver", Category: models.PlanCategorySilver, Price: 199, Currency: "INR", Credits: 10, IsActive: true},
		{PlanID: "gold", Name: "Gold", Category: models.PlanCategoryGold, Price: 299, Currency: "INR", Credits: 25, IsActive: true},
		{PlanID: "platinum", Name: "Platinum", Category: models.PlanCategoryPlatinum, Price: 399, Currency: "INR", Credits: 50, IsActive: true},
	}}
}

func (f *fakePlanRepo) FindActivePlans() ([]models.CreditPlan, error) {
	return f.plans, nil
}

func (f *fakePlanRepo) FindByPlanID(planID string) (*models.CreditPlan, error) {
	for _, plan := range f.plans {
		if plan.PlanID == planID && plan.IsActive {
			cp := plan
			return &cp, nil
		}
	}
	return nil, repositories.ErrPlanNotFound
}

func (f *fakePlanRepo) Create(plan *models.CreditPlan) error {
	f.plans = append(f.plans, *plan)
	return nil
}

type fakeContentRepo struct {
	classes []models.Class
	videos  []models.VideoLecture
	jobs    map[string]*models.Job
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{
		classes: []models.Class{{Title: "System Design 101"}},
		videos:  []models.VideoLecture{{Title: "Goroutines in depth"}},
		jobs: map[string]*models.Job{
			"job-1": {BaseModel: models.BaseModel{ID: "job-1"}, Title: "Backend Intern", IsActive: true},
		},
	}
}

func (f *fakeContentRepo) ListClasses() ([]models.Class, error) {
	return f.classes, nil
}

func (f *fakeContentRepo) ListVideoLectures() ([]models.VideoLecture, error) {
	return f.videos, nil
}

func (f *fakeContentRepo) FindJobByID(id string) (*models.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	return job, nil
}

// fakeGateway подписывает и проверяет тем же HMAC-алгоритмом, что и
// реальный провайдер, но ордера выдает из памяти.
type fakeGateway struct {
	secret      string
	failCreate  bool
	seq         int
	lastRequest *payment.OrderRequest
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{secret: "test_secret"}
}

func (g *fakeGateway) CreateOrder(ctx context.Context, req *payment.OrderRequest) (*payment.ProviderOrder, error) {
	if g.failCreate {
		return nil, errors.New("provider unavailable")
	}
	g.seq++
	g.lastRequest = req
	return &payment.ProviderOrder{
		ID:       fmt.Sprintf("order_FAKE%03d", g.seq),
		Amount:   req.AmountPaise,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}

func (g *fakeGateway) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(g.secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return hmac.Equal([]byte(g.Sign(orderID, paymentID)), []byte(signature))
}

func (g *fakeGateway) Key() string {
	return "rzp_test_fake"
}

// fakeLocker считает захваты; busy=true эмулирует конкурента,
// держащего блокировку дольше всех ретраев.
type fakeLocker struct {
	busy     bool
	acquired []string
	releases int
}

func (l *fakeLocker) Acquire(ctx context.Context, key string) (func(), error) {
	if l.busy {
		return nil, lock.ErrLockFailed
	}
	l.acquired = append(l.acquired, key)
	return func() { l.releases++ }, nil
}
