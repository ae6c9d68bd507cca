package models

import (
	"gorm.io/datatypes"
)

// PaymentOrder - серверная копия платёжного ордера провайдера.
// Создается при purchase и хранит параметры покупки, чтобы верификация
// восстанавливала план/кредиты/сумму по orderId, а не доверяла телу запроса.
type PaymentOrder struct {
	BaseModel
	OrderID      string       `gorm:"uniqueIndex;not null"` // id ордера у провайдера
	InternID     string       `gorm:"not null;index"`
	PlanID       string       `gorm:"not null"`
	PlanCategory PlanCategory `gorm:"type:varchar(20);not null"`
	Credits      int          `gorm:"not null"`
	AmountPaise  int64        `gorm:"not null"` // сумма в минорных единицах
	Currency     string       `gorm:"type:varchar(3);not null;default:'INR'"`
	Receipt      string       `gorm:"not null"`
	Status       OrderStatus  `gorm:"type:varchar(20);not null;default:'created'"`

	Notes datatypes.JSON `gorm:"type:jsonb"` // копия notes, переданных провайдеру
}

// PaymentRecord - запись истории платежей. Только добавление: записи никогда
// не изменяются и не удаляются. Уникальный индекс (intern_id, payment_id)
// обеспечивает ровно одну запись на один успешный платеж провайдера.
type PaymentRecord struct {
	BaseModel
	InternID      string        `gorm:"not null;index;uniqueIndex:idx_intern_payment"`
	PaymentID     string        `gorm:"not null;uniqueIndex:idx_intern_payment"` // id платежа у провайдера
	OrderID       string        `gorm:"not null"`
	Amount        float64       `gorm:"not null"`
	Currency      string        `gorm:"type:varchar(3);not null;default:'INR'"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null"`
	PlanPurchased PlanCategory  `gorm:"type:varchar(20);not null"`
}
