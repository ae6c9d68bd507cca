package dto

// ApplyJobRequest - отклик на вакансию
type ApplyJobRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

type ApplyJobResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	JobsAppliedCount int    `json:"jobsAppliedCount"`
	FreeJobLimit     int    `json:"freeJobLimit"`
}
