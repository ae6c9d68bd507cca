package models

import (
	"gorm.io/datatypes"
)

// Intern - аккаунт стажёра. Единственный источник правды для access gate:
// категория плана и баланс кредитов мутируются только верификатором платежей.
type Intern struct {
	BaseModel
	UniqueID     string `gorm:"not null"` // номер студенческого/зачётки
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Phone        string
	PasswordHash string `gorm:"not null"`

	College     string
	Course      string
	YearOfStudy int
	Domain      string
	Skills      datatypes.JSON `gorm:"type:jsonb"` // ["go", "sql", ...]

	// Бесплатная квота откликов - отдельный бюджет от jobCredits
	FreeJobLimit     int `gorm:"not null;default:2"`
	JobsAppliedCount int `gorm:"not null;default:0"`

	// Плановое/кредитное состояние (мутируется только коммитом верификатора)
	JobCredits   int            `gorm:"not null;default:0"`
	PlanCategory PlanCategory   `gorm:"type:varchar(20);not null;default:'NONE'"`
	AppliedFor   datatypes.JSON `gorm:"type:jsonb"` // id вакансий, на которые откликался

	// Relations
	PaymentHistory []PaymentRecord `gorm:"foreignKey:InternID"`
}
