package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/model"
	"portfolio/internal/service"
)

// ListPages returns the navigation entries in display order.
//
// @Summary Navigation pages
// @Tags content
// @Produce json
// @Success 200 {array} model.NavLink
// @Router /api/pages [get]
func ListPages() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Pages())
	}
}

// GetProfile returns the hero, about and footer copy.
//
// @Summary Site profile
// @Tags content
// @Produce json
// @Success 200 {object} model.Profile
// @Router /api/profile [get]
func GetProfile(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Profile(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(p)
	}
}

// ListContent returns the visible items of a category.
//
// @Summary List visible items
// @Tags content
// @Produce json
// @Param category path string true "projects, animations, edits or blog"
// @Param mode query string false "featured (default) or recent"
// @Param search query string false "case-insensitive title substring"
// @Success 200 {object} service.ListResult
// @Failure 400 {object} errorPayload
// @Router /api/content/{category} [get]
func ListContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := model.ParseCategory(c.Params("category"))
		if err != nil {
			return serviceError(c, err)
		}
		mode, err := model.ParseFilterMode(c.Query("mode", string(model.FilterFeatured)))
		if err != nil {
			return serviceError(c, err)
		}

		res, err := svc.List(c.UserContext(), category, mode, c.Query("search"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetContent returns one item.
//
// @Summary Get item
// @Tags content
// @Produce json
// @Param category path string true "projects, animations, edits or blog"
// @Param id path string true "item id"
// @Success 200 {object} object
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/content/{category}/{id} [get]
func GetContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := model.ParseCategory(c.Params("category"))
		if err != nil {
			return serviceError(c, err)
		}
		item, err := svc.Get(c.UserContext(), category, c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(item)
	}
}
