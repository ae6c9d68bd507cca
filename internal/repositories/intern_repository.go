package repositories

import (
	"encoding/json"
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInternNotFound = errors.New("intern not found")
	ErrQuotaExceeded  = errors.New("free job application quota exceeded")
)

type InternRepository interface {
	Create(intern *models.Intern) error
	FindByID(id string) (*models.Intern, error)
	FindByEmail(email string) (*models.Intern, error)

	// RegisterJobApplication атомарно инкрементирует счетчик откликов.
	// Условие квоты входит в сам UPDATE, чтобы параллельные отклики
	// не обошли бесплатный лимит через гонку read-modify-write.
	RegisterJobApplication(internID, jobID string) (*models.Intern, error)
}

type InternRepositoryImpl struct {
	db *gorm.DB
}

func NewInternRepository(db *gorm.DB) InternRepository {
	return &InternRepositoryImpl{db: db}
}

func (r *InternRepositoryImpl) Create(intern *models.Intern) error {
	return r.db.Create(intern).Error
}

func (r *InternRepositoryImpl) FindByID(id string) (*models.Intern, error) {
	var intern models.Intern
	err := r.db.First(&intern, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternNotFound
		}
		return nil, err
	}
	return &intern, nil
}

func (r *InternRepositoryImpl) FindByEmail(email string) (*models.Intern, error) {
	var intern models.Intern
	err := r.db.First(&intern, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternNotFound
		}
		return nil, err
	}
	return &intern, nil
}

// appliedForAppendExpr строит выражение добавления id вакансии в jsonb-массив
// applied_for одним UPDATE. NULL трактуется как пустой массив.
func appliedForAppendExpr(jobID string) clause.Expr {
	jobJSON, _ := json.Marshal([]string{jobID})
	return gorm.Expr("COALESCE(applied_for, '[]'::jsonb) || ?::jsonb", string(jobJSON))
}

func (r *InternRepositoryImpl) RegisterJobApplication(internID, jobID string) (*models.Intern, error) {
	var updated *models.Intern

	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Платный аккаунт не ограничен квотой; бесплатный - только пока
		// jobs_applied_count < free_job_limit. Оба случая в одном UPDATE.
		result := tx.Model(&models.Intern{}).
			Where("id = ? AND (plan_category <> ? OR jobs_applied_count < free_job_limit)",
				internID, models.PlanCategoryNone).
			Update("jobs_applied_count", gorm.Expr("jobs_applied_count + 1"))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// Либо аккаунта нет, либо квота исчерпана - различаем чтением
			var intern models.Intern
			if err := tx.First(&intern, "id = ?", internID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInternNotFound
				}
				return err
			}
			return ErrQuotaExceeded
		}

		// Дописываем id вакансии jsonb-конкатом на стороне базы:
		// без read-modify-write массива параллельный отклик не может
		// затереть чужую запись.
		if err := tx.Model(&models.Intern{}).
			Where("id = ?", internID).
			Update("applied_for", appliedForAppendExpr(jobID)).Error; err != nil {
			return err
		}

		var intern models.Intern
		if err := tx.First(&intern, "id = ?", internID).Error; err != nil {
			return err
		}
		updated = &intern
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
