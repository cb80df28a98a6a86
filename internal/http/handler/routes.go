package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/http/middleware"
	"portfolio/internal/service"
	"portfolio/internal/storage"
	"portfolio/internal/viewstate"
)

// Deps are the collaborators the routes are wired to. DB and Media may be nil.
type Deps struct {
	DB       Pinger
	Content  service.ContentService
	Sessions service.SessionService
	Contact  service.ContactService
	Media    storage.Storage
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/healthz", LivenessProbe())
	app.Get("/health", HealthCheck(d.DB))

	api := app.Group("/api")
	api.Get("/pages", ListPages())
	api.Get("/profile", GetProfile(d.Content))
	api.Get("/content/:category", ListContent(d.Content))
	api.Get("/content/:category/:id", GetContent(d.Content))

	sessions := api.Group("/sessions", middleware.NoStore())
	sessions.Post("/", CreateSession(d.Sessions))
	sessions.Get("/:id", GetSession(d.Sessions))
	sessions.Get("/:id/view", RenderSession(d.Sessions))
	for _, op := range []viewstate.Op{
		viewstate.OpNavigate,
		viewstate.OpSelectItem,
		viewstate.OpClearSelection,
		viewstate.OpSetFilter,
		viewstate.OpSetSearch,
	} {
		sessions.Post("/:id/"+string(op), ApplyTransition(d.Sessions, op))
	}

	api.Post("/contact", ComposeContact(d.Contact))

	if d.Media != nil {
		app.Get("/media/*", StreamMedia(d.Media))
	}
}
