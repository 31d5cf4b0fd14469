package models

import "time"

// Job represents the jobs table
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Job model
func (Job) TableName() string {
	return "jobs"
}
