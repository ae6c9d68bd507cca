package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("credit plan not found")

type PlanRepository interface {
	FindActivePlans() ([]models.CreditPlan, error)
	FindByPlanID(planID string) (*models.CreditPlan, error)
	Create(plan *models.CreditPlan) error
}

type PlanRepositoryImpl struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &PlanRepositoryImpl{db: db}
}

func (r *PlanRepositoryImpl) FindActivePlans() ([]models.CreditPlan, error) {
	var plans []models.CreditPlan
	err := r.db.Where("is_active = ?", true).Order("price ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepositoryImpl) FindByPlanID(planID string) (*models.CreditPlan, error) {
	var plan models.CreditPlan
	err := r.db.First(&plan, "plan_id = ? AND is_active = ?", planID, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepositoryImpl) Create(plan *models.CreditPlan) error {
	return r.db.Create(plan).Error
}
