package services

import (
	"internhub_backend/internal/models"
)

// Access gate: бинарная политика доступа к закрытым фичам.
// Любой ненулевой тариф открывает одинаковый набор фич - тарифы
// различаются только количеством кредитов, не составом каталога.

// HasPlanAccess - true для любого оплаченного тарифа
func HasPlanAccess(category models.PlanCategory) bool {
	return category != models.PlanCategoryNone && category != ""
}

// CanApply - отдельная, более узкая политика откликов на вакансии:
// платный аккаунт не ограничен, бесплатный - в пределах freeJobLimit.
// Баланс кредитов в решении не участвует.
func CanApply(intern *models.Intern) bool {
	if HasPlanAccess(intern.PlanCategory) {
		return true
	}
	return intern.JobsAppliedCount < intern.FreeJobLimit
}
