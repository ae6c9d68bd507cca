package models

// CreditPlan - позиция каталога тарифов. Каталог засеивается при миграции
// и служит источником правды для валидации параметров покупки.
type CreditPlan struct {
	BaseModel
	PlanID   string       `gorm:"uniqueIndex;not null"` // "silver", "gold", "platinum"
	Name     string       `gorm:"not null"`
	Category PlanCategory `gorm:"type:varchar(20);uniqueIndex;not null"`
	Price    float64      `gorm:"not null"` // цена в рупиях
	Currency string       `gorm:"type:varchar(3);not null;default:'INR'"`
	Credits  int          `gorm:"not null"`
	IsActive bool         `gorm:"default:true"`
}
