package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobcloud/backend/internal/models"
	"jobcloud/backend/internal/repositories"
	"jobcloud/backend/internal/services"
)

type LoginHandler struct {
	userRepo        repositories.UserRepository
	passwordService services.PasswordService
}

func NewLoginHandler(
	userRepo repositories.UserRepository,
	passwordService services.PasswordService,
) *LoginHandler {
	return &LoginHandler{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// HandleLogin handles POST /login. No session or token is issued; the caller
// receives the user record and is trusted to remember it.
func (h *LoginHandler) HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.LoginResponse{
			Success: false,
			Message: "Invalid request payload",
		})
	}

	user, err := h.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.LoginResponse{
				Success: false,
				Message: "Invalid email or password",
			})
		}

		log.Printf("❌ Error during login: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.LoginResponse{
			Success: false,
			Message: "Error while logging in",
		})
	}

	if !h.passwordService.Verify(user.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.LoginResponse{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	return c.JSON(models.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
	})
}
