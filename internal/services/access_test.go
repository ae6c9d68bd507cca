package services

import (
	"testing"

	"internhub_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// TestHasPlanAccess - гейт открыт для любого оплаченного тарифа
func TestHasPlanAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category models.PlanCategory
		want     bool
	}{
		{"NONE закрыт", models.PlanCategoryNone, false},
		{"пустая категория закрыта", models.PlanCategory(""), false},
		{"SILVER открыт", models.PlanCategorySilver, true},
		{"GOLD открыт", models.PlanCategoryGold, true},
		{"PLATINUM открыт", models.PlanCategoryPlatinum, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, HasPlanAccess(tt.category))
		})
	}

	// Любой тариф из справочника открывает гейт
	for _, category := range models.KnownPlanCategories() {
		assert.True(t, HasPlanAccess(category), "category %s", category)
	}
}

// TestCanApply - бесплатная квота и платный доступ к откликам
func TestCanApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		intern models.Intern
		want   bool
	}{
		{
			name:   "бесплатный аккаунт в пределах квоты",
			intern: models.Intern{PlanCategory: models.PlanCategoryNone, JobsAppliedCount: 1, FreeJobLimit: 2},
			want:   true,
		},
		{
			name:   "бесплатный аккаунт исчерпал квоту",
			intern: models.Intern{PlanCategory: models.PlanCategoryNone, JobsAppliedCount: 2, FreeJobLimit: 2},
			want:   false,
		},
		{
			name:   "платный аккаунт не ограничен квотой",
			intern: models.Intern{PlanCategory: models.PlanCategoryGold, JobsAppliedCount: 100, FreeJobLimit: 2},
			want:   true,
		},
		{
			name: "нулевой баланс кредитов не закрывает отклики платному аккаунту",
			intern: models.Intern{
				PlanCategory:     models.PlanCategorySilver,
				JobCredits:       0,
				JobsAppliedCount: 50,
				FreeJobLimit:     2,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanApply(&tt.intern))
		})
	}
}
