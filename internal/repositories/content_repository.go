package repositories

import (
	"errors"

	"internhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type ContentRepository interface {
	ListClasses() ([]models.Class, error)
	ListVideoLectures() ([]models.VideoLecture, error)
	FindJobByID(id string) (*models.Job, error)
}

type ContentRepositoryImpl struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &ContentRepositoryImpl{db: db}
}

func (r *ContentRepositoryImpl) ListClasses() ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *ContentRepositoryImpl) ListVideoLectures() ([]models.VideoLecture, error) {
	var videos []models.VideoLecture
	if err := r.db.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *ContentRepositoryImpl) FindJobByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}
