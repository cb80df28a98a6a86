package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/contact"
	"portfolio/internal/service"
)

// ComposeContact validates the contact form and returns the mailto handoff.
//
// @Summary Compose contact handoff
// @Tags contact
// @Accept json
// @Produce json
// @Param body body contact.Form true "contact form"
// @Success 200 {object} service.Handoff
// @Failure 422 {object} errorPayload
// @Router /api/contact [post]
func ComposeContact(svc service.ContactService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form contact.Form
		if err := c.BodyParser(&form); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		h, err := svc.Compose(c.UserContext(), form)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(h)
	}
}
