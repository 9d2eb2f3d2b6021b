package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobcloud/backend/internal/models"
	"jobcloud/backend/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
	}
}

// HandleAddJob handles POST /add-job.
func (h *JobHandler) HandleAddJob(c *fiber.Ctx) error {
	var req models.PostJobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request payload")
	}

	if req.Title == "" || req.Company == "" || req.Description == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields!")
	}

	job := models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Salary:      req.Salary,
		Experience:  req.Experience,
		Skills:      req.Skills,
		CreatedAt:   time.Now(),
	}

	if err := h.jobRepo.Create(&job); err != nil {
		log.Printf("❌ Error adding job: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error while adding job")
	}

	return c.SendString("Job added successfully")
}

// HandleListJobs handles GET /jobs, newest first.
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		log.Printf("❌ Error fetching jobs: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Error while fetching jobs")
	}

	return c.JSON(jobs)
}
