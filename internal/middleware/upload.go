package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"jobcloud/backend/internal/services"
)

// Locals keys under which ResumeIntake exposes the stored document to the
// handler behind it.
const (
	ResumeFilenameKey = "resume_filename"
	ResumePathKey     = "resume_path"
)

// ResumeIntake accepts zero or one "resume" file field per request. A valid
// file is persisted before the handler runs and its generated name and
// relative path are placed in Locals; an invalid one aborts the request.
func ResumeIntake(storage services.StorageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("resume")
		if err != nil {
			// no file attached; handlers treat the résumé as optional
			return c.Next()
		}

		filename, filePath, err := storage.SaveResume(file)
		if err != nil {
			if errors.Is(err, services.ErrDisallowedType) || errors.Is(err, services.ErrFileTooLarge) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to store uploaded file",
			})
		}

		c.Locals(ResumeFilenameKey, filename)
		c.Locals(ResumePathKey, filePath)

		return c.Next()
	}
}

// ResumeFilename returns the stored résumé filename for the request, if any.
func ResumeFilename(c *fiber.Ctx) (string, bool) {
	filename, ok := c.Locals(ResumeFilenameKey).(string)
	return filename, ok && filename != ""
}

// ResumePath returns the stored résumé relative path for the request, if any.
func ResumePath(c *fiber.Ctx) (string, bool) {
	path, ok := c.Locals(ResumePathKey).(string)
	return path, ok && path != ""
}
