package handlers

import (
	"errors"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jobcloud/backend/internal/repositories"
)

type ProfileHandler struct {
	userRepo repositories.UserRepository
}

func NewProfileHandler(userRepo repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepo: userRepo,
	}
}

// HandleGetProfile handles GET /user/:email. The projection excludes the
// credential column; if duplicate emails exist the first row wins.
func (h *ProfileHandler) HandleGetProfile(c *fiber.Ctx) error {
	email := c.Params("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}

	user, err := h.userRepo.FindProfileByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("User not found")
		}

		log.Printf("❌ Error fetching user: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server error")
	}

	return c.JSON(user)
}
