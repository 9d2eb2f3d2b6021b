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

type SignupHandler struct {
	userRepo        repositories.UserRepository
	storageService  services.StorageService
	passwordService services.PasswordService
}

func NewSignupHandler(
	userRepo repositories.UserRepository,
	storageService services.StorageService,
	passwordService services.PasswordService,
) *SignupHandler {
	return &SignupHandler{
		userRepo:        userRepo,
		storageService:  storageService,
		passwordService: passwordService,
	}
}

// HandleSignup handles POST /signup. The résumé, if one was attached, has
// already been persisted by the intake middleware.
func (h *SignupHandler) HandleSignup(c *fiber.Ctx) error {
	fullname := c.FormValue("fullname")
	email := c.FormValue("email")
	password := c.FormValue("password")

	if fullname == "" || email == "" || password == "" {
		h.discardResume(c)
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields!")
	}

	hash, err := h.passwordService.Hash(password)
	if err != nil {
		h.discardResume(c)
		return c.Status(fiber.StatusInternalServerError).SendString("Error while signing up!")
	}

	user := models.User{
		ID:         uuid.New(),
		Fullname:   fullname,
		Mobile:     c.FormValue("mobile"),
		DOB:        c.FormValue("dob"),
		Gender:     c.FormValue("gender"),
		Address:    c.FormValue("address"),
		City:       c.FormValue("city"),
		State:      c.FormValue("state"),
		Education:  c.FormValue("education"),
		Experience: c.FormValue("experience"),
		Skills:     c.FormValue("skills"),
		Email:      email,
		Password:   hash,
		CreatedAt:  time.Now(),
	}

	if filename, ok := middleware.ResumeFilename(c); ok {
		user.Resume = &filename
	}

	if err := h.userRepo.Create(&user); err != nil {
		log.Printf("❌ Failed to insert user: %v", err)
		// Cleanup uploaded file if database insert fails
		h.discardResume(c)
		return c.Status(fiber.StatusInternalServerError).SendString("Error while signing up!")
	}

	return c.SendString("User registered successfully!")
}

func (h *SignupHandler) discardResume(c *fiber.Ctx) {
	if filename, ok := middleware.ResumeFilename(c); ok {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Printf("❌ Failed to remove orphaned resume %s: %v", filename, err)
		}
	}
}
