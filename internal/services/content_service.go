package services

import (
	"context"

	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/pkg/apperrors"
)

// ContentService отдает закрытый контент (занятия, видеолекции).
// Каждый метод сначала спрашивает access gate по текущему плану аккаунта.
type ContentService interface {
	ListClasses(ctx context.Context, internID string) ([]models.Class, error)
	ListVideoLectures(ctx context.Context, internID string) ([]models.VideoLecture, error)
}

type contentService struct {
	internRepo  repositories.InternRepository
	contentRepo repositories.ContentRepository
}

func NewContentService(internRepo repositories.InternRepository, contentRepo repositories.ContentRepository) ContentService {
	return &contentService{
		internRepo:  internRepo,
		contentRepo: contentRepo,
	}
}

func (s *contentService) ListClasses(ctx context.Context, internID string) ([]models.Class, error) {
	if err := s.requireAccess(internID); err != nil {
		return nil, err
	}
	classes, err := s.contentRepo.ListClasses()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return classes, nil
}

func (s *contentService) ListVideoLectures(ctx context.Context, internID string) ([]models.VideoLecture, error) {
	if err := s.requireAccess(internID); err != nil {
		return nil, err
	}
	videos, err := s.contentRepo.ListVideoLectures()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return videos, nil
}

func (s *contentService) requireAccess(internID string) error {
	intern, err := s.internRepo.FindByID(internID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternNotFound) {
			return apperrors.ErrAccountNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !HasPlanAccess(intern.PlanCategory) {
		return apperrors.ErrPlanRequired
	}

	return nil
}
