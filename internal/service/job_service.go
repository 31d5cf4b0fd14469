package service

import (
	"job-board-backend/internal/models"
	"job-board-backend/internal/repository"
)

type JobService struct {
	jobs *repository.JobRepository
}

func NewJobService(jobs *repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// Create stores a new job posting
func (s *JobService) Create(title, description string) (*models.Job, error) {
	job := &models.Job{
		Title:       title,
		Description: description,
	}
	if err := s.jobs.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// List returns all job postings
func (s *JobService) List() ([]models.Job, error) {
	return s.jobs.List()
}
