package database

import (
	"errors"
	"fmt"

	"internhub_backend/internal/config"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate выполняет миграцию всех моделей
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Intern{},
		&models.CreditPlan{},
		&models.PaymentOrder{},
		&models.PaymentRecord{},
		&models.Class{},
		&models.VideoLecture{},
		&models.Job{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}

// SeedPlans создает каталог тарифов, если его еще нет.
// Цены в рупиях, кредиты начисляются при верификации платежа.
func SeedPlans(db *gorm.DB) error {
	cfg := config.GetConfig()

	plans := []models.CreditPlan{
		{PlanID: "silver", Name: "Silver", Category: models.PlanCategorySilver, Price: 199, Currency: cfg.Payments.Currency, Credits: 10, IsActive: true},
		{PlanID: "gold", Name: "Gold", Category: models.PlanCategoryGold, Price: 299, Currency: cfg.Payments.Currency, Credits: 25, IsActive: true},
		{PlanID: "platinum", Name: "Platinum", Category: models.PlanCategoryPlatinum, Price: 399, Currency: cfg.Payments.Currency, Credits: 50, IsActive: true},
	}

	for _, plan := range plans {
		var existing models.CreditPlan
		result := db.Where("plan_id = ?", plan.PlanID).First(&existing)
		if result.Error == nil {
			continue
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check plan %s: %w", plan.PlanID, result.Error)
		}
		if err := db.Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed plan %s: %w", plan.PlanID, err)
		}
		logger.Info("Seeded credit plan", "plan_id", plan.PlanID, "category", plan.Category)
	}

	return nil
}
