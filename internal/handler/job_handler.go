package handler

import (
	"net/http"

	"job-board-backend/internal/models"
	"job-board-backend/internal/service"
	"job-board-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobService *service.JobService
}

func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
}

// JobResponse is the public view of a job posting
type JobResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func toJobResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
	}
}

// Create handles POST /jobs/
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.jobService.Create(req.Title, req.Description)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create job")
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// List handles GET /jobs/
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.List()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	responses := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, toJobResponse(&jobs[i]))
	}

	c.JSON(http.StatusOK, responses)
}
