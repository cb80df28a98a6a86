package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/service"
	"portfolio/internal/viewstate"
)

// CreateSession starts a view-state session in the initial state.
//
// @Summary Create session
// @Tags sessions
// @Produce json
// @Success 201 {object} service.SessionState
// @Failure 503 {object} errorPayload
// @Router /api/sessions [post]
func CreateSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Create(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(st)
	}
}

// GetSession returns the current view state.
//
// @Summary Get session state
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} service.SessionState
// @Failure 404 {object} errorPayload
// @Router /api/sessions/{id} [get]
func GetSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.State(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(st)
	}
}

// RenderSession returns the page view for the session's state.
//
// @Summary Render session view
// @Tags sessions
// @Produce json
// @Param id path string true "session id"
// @Success 200 {object} service.View
// @Failure 404 {object} errorPayload
// @Router /api/sessions/{id}/view [get]
func RenderSession(svc service.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.Render(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(v)
	}
}

// ApplyTransition decodes the request body as the arguments of op and runs
// it against the session. Any op field in the body is ignored.
//
// @Summary Apply a view-state transition
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "session id"
// @Param op path string true "navigate, select, clear, filter or search"
// @Param body body viewstate.Transition true "transition arguments"
// @Success 200 {object} service.SessionState
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/sessions/{id}/{op} [post]
func ApplyTransition(svc service.SessionService, op viewstate.Op) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var t viewstate.Transition
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&t); err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
			}
		}
		t.Op = op

		st, err := svc.Apply(c.UserContext(), c.Params("id"), t)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(st)
	}
}
