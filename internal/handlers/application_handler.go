package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobcloud/backend/internal/middleware"
	"jobcloud/backend/internal/models"
	"jobcloud/backend/internal/repositories"
	"jobcloud/backend/internal/services"
)

type ApplicationHandler struct {
	applicationRepo repositories.ApplicationRepository
	storageService  services.StorageService
}

func NewApplicationHandler(
	applicationRepo repositories.ApplicationRepository,
	storageService services.StorageService,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationRepo: applicationRepo,
		storageService:  storageService,
	}
}

// HandleSubmit handles POST /submit-application. Every submission is inserted
// as-is: absent fields stay empty and nothing links the row to a job or user.
func (h *ApplicationHandler) HandleSubmit(c *fiber.Ctx) error {
	application := models.Application{
		ID:          uuid.New(),
		Fullname:    c.FormValue("fullname"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		CoverLetter: c.FormValue("cover_letter"),
		CreatedAt:   time.Now(),
	}

	// Applications reference the résumé by its relative path.
	if path, ok := middleware.ResumePath(c); ok {
		application.ResumePath = &path
	}

	if err := h.applicationRepo.Create(&application); err != nil {
		log.Printf("❌ Error submitting application: %v", err)
		// Cleanup uploaded file if database insert fails
		if filename, ok := middleware.ResumeFilename(c); ok {
			if err := h.storageService.DeleteFile(filename); err != nil {
				log.Printf("❌ Failed to remove orphaned resume %s: %v", filename, err)
			}
		}
		return c.Status(fiber.StatusInternalServerError).SendString("Error submitting application")
	}

	return c.SendString("Application submitted successfully")
}
