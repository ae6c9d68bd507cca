package services

import (
	"context"

	"internhub_backend/internal/dto"
	"internhub_backend/internal/repositories"
	"internhub_backend/pkg/apperrors"
)

// JobService - отклики на вакансии с учётом бесплатной квоты.
// Кредиты плана при отклике не списываются: квота и кредиты -
// независимые бюджеты.
type JobService interface {
	Apply(ctx context.Context, internID string, req *dto.ApplyJobRequest) (*dto.ApplyJobResponse, error)
}

type jobService struct {
	internRepo  repositories.InternRepository
	contentRepo repositories.ContentRepository
}

func NewJobService(internRepo repositories.InternRepository, contentRepo repositories.ContentRepository) JobService {
	return &jobService{
		internRepo:  internRepo,
		contentRepo: contentRepo,
	}
}

func (s *jobService) Apply(ctx context.Context, internID string, req *dto.ApplyJobRequest) (*dto.ApplyJobResponse, error) {
	if _, err := s.contentRepo.FindJobByID(req.JobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Квота проверяется внутри атомарного UPDATE репозитория, так что
	// параллельные отклики не могут превысить бесплатный лимит.
	intern, err := s.internRepo.RegisterJobApplication(internID, req.JobID)
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrInternNotFound):
			return nil, apperrors.ErrAccountNotFound(err)
		case apperrors.Is(err, repositories.ErrQuotaExceeded):
			return nil, apperrors.ErrFreeQuotaExceeded
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	return &dto.ApplyJobResponse{
		Success:          true,
		Message:          "Application submitted",
		JobsAppliedCount: intern.JobsAppliedCount,
		FreeJobLimit:     intern.FreeJobLimit,
	}, nil
}
