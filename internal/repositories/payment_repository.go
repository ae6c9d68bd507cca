package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrPaymentOrderNotFound = errors.New("payment order not found")
)

// duplicateHandleConflict делает повторную вставку записи с тем же
// (intern_id, payment_id) no-op вместо ошибки 23505: нарушение уникального
// индекса внутри транзакции перевело бы её в aborted-состояние, и все
// последующие чтения в том же коммите падали бы.
var duplicateHandleConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "intern_id"}, {Name: "payment_id"}},
	DoNothing: true,
}

type PaymentRepository interface {
	CreateOrder(order *models.PaymentOrder) error
	FindOrderByOrderID(orderID string) (*models.PaymentOrder, error)

	// ApplyPurchase выполняет коммит верифицированного платежа одной
	// транзакцией: запись истории, инкремент кредитов, перезапись категории
	// плана, перевод ордера в verified. Либо всё, либо ничего.
	//
	// Возвращает alreadyProcessed=true, если запись с таким paymentId уже
	// существует у аккаунта: повторная верификация не меняет леджер и
	// отдает текущее состояние (идемпотентность по handle провайдера).
	ApplyPurchase(order *models.PaymentOrder, paymentID string) (intern *models.Intern, alreadyProcessed bool, err error)

	FindRecordsByIntern(internID string) ([]models.PaymentRecord, error)
}

type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) CreateOrder(order *models.PaymentOrder) error {
	return r.db.Create(order).Error
}

func (r *PaymentRepositoryImpl) FindOrderByOrderID(orderID string) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	err := r.db.First(&order, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *PaymentRepositoryImpl) ApplyPurchase(order *models.PaymentOrder, paymentID string) (*models.Intern, bool, error) {
	var intern models.Intern
	alreadyProcessed := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Точка идемпотентности - уникальный индекс (intern_id, payment_id).
		// Повторная доставка платежа - не ошибка, а запрос текущего
		// состояния, поэтому сначала обычное чтение.
		var existing models.PaymentRecord
		err := tx.First(&existing, "intern_id = ? AND payment_id = ?", order.InternID, paymentID).Error
		if err == nil {
			alreadyProcessed = true
			return tx.First(&intern, "id = ?", order.InternID).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		record := &models.PaymentRecord{
			InternID:      order.InternID,
			PaymentID:     paymentID,
			OrderID:       order.OrderID,
			Amount:        float64(order.AmountPaise) / 100,
			Currency:      order.Currency,
			Status:        models.PaymentStatusSuccess,
			PlanPurchased: order.PlanCategory,
		}

		// Страховка на случай конкурента, проскочившего мимо пер-аккаунтной
		// блокировки: ON CONFLICT DO NOTHING не абортит транзакцию, дубликат
		// виден по RowsAffected.
		result := tx.Clauses(duplicateHandleConflict).Create(record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			alreadyProcessed = true
			return tx.First(&intern, "id = ?", order.InternID).Error
		}

		// Инкремент кредитов - одним атомарным UPDATE, без read-modify-write.
		// Категория плана перезаписывается (last-write-wins), не max(tier).
		update := tx.Model(&models.Intern{}).
			Where("id = ?", order.InternID).
			Updates(map[string]interface{}{
				"job_credits":   gorm.Expr("job_credits + ?", order.Credits),
				"plan_category": order.PlanCategory,
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			return ErrInternNotFound
		}

		if err := tx.Model(&models.PaymentOrder{}).
			Where("order_id = ?", order.OrderID).
			Update("status", models.OrderStatusVerified).Error; err != nil {
			return err
		}

		return tx.First(&intern, "id = ?", order.InternID).Error
	})
	if err != nil {
		return nil, false, err
	}

	return &intern, alreadyProcessed, nil
}

func (r *PaymentRepositoryImpl) FindRecordsByIntern(internID string) ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	// Порядок вставки = хронологический порядок истории
	err := r.db.Where("intern_id = ?", internID).Order("created_at ASC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
