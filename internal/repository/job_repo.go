package repository

import (
	"job-board-backend/internal/models"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job posting
func (r *JobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// List returns all job postings
func (r *JobRepository) List() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("id").Find(&jobs).Error
	return jobs, err
}
