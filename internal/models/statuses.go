package models

type UserRole string
type PlanCategory string
type PaymentStatus string
type OrderStatus string

const (
	UserRoleIntern UserRole = "intern"
	UserRoleMentor UserRole = "mentor"
	UserRoleAdmin  UserRole = "admin"

	// Категория плана аккаунта. Семантика - "текущий активный тариф",
	// покупка перезаписывает категорию (last-write-wins), не накапливает.
	PlanCategoryNone     PlanCategory = "NONE"
	PlanCategorySilver   PlanCategory = "SILVER"
	PlanCategoryGold     PlanCategory = "GOLD"
	PlanCategoryPlatinum PlanCategory = "PLATINUM"

	// Статусы платёжных записей. Верифицированный путь пишет только success;
	// pending/failed оставлены для совместимости хранения.
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusFailed  PaymentStatus = "failed"

	OrderStatusCreated  OrderStatus = "created"
	OrderStatusVerified OrderStatus = "verified"
)

// KnownPlanCategories - допустимые значения для валидации запросов
func KnownPlanCategories() []PlanCategory {
	return []PlanCategory{PlanCategorySilver, PlanCategoryGold, PlanCategoryPlatinum}
}
