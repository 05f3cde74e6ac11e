package server

import (
	"errors"

	"github.com/tsainez/bobchat/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID parses a numeric route parameter. On failure it writes a 400 and
// returns ok=false; the handler should return nil immediately.
func parseID(c *fiber.Ctx, name string) (uint, bool, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false, models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+name))
	}
	return uint(id), true, nil
}

// respondError maps an application error to its HTTP status and writes the
// standard error body.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// respondRedirectError writes a NotFound error carrying a redirect hint so
// clients landing on a dead listing know where to go instead.
func respondRedirectError(c *fiber.Ctx, err error, redirect string) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return respondError(c, err)
	}

	response := models.ErrorResponse{
		Error:    appErr.Message,
		Code:     appErr.Code,
		Redirect: redirect,
	}
	return c.Status(models.StatusForError(err)).JSON(response)
}

// currentUserID returns the authenticated user id set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}
