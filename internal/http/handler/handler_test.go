package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"portfolio/internal/contact"
	"portfolio/internal/http/middleware"
	"portfolio/internal/model"
	"portfolio/internal/service"
	serviceMocks "portfolio/internal/service/mocks"
	"portfolio/internal/storage"
	storeMocks "portfolio/internal/storage/mocks"
	"portfolio/internal/viewstate"
)

func decodeError(t *testing.T, resp *http.Response) errorPayload {
	t.Helper()
	var body errorPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Error.Code)
	})

	t.Run("file source has no dependency", func(t *testing.T) {
		app := fiber.New()
		app.Get("/health", HealthCheck(nil))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListPages(t *testing.T) {
	app := fiber.New()
	app.Get("/api/pages", ListPages())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/pages", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var links []model.NavLink
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&links))
	require.Len(t, links, 7)
	assert.Equal(t, model.PageHome, links[0].Page)
	assert.Equal(t, "Contact Me", links[6].Label)
}

func TestListContent(t *testing.T) {
	mockSvc := new(serviceMocks.MockContentService)
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/api/content/:category", ListContent(mockSvc))

	t.Run("defaults to featured", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.CategoryProjects, model.FilterFeatured, "").
			Return(&service.ListResult{
				Category: model.CategoryProjects,
				Mode:     model.FilterFeatured,
				Items:    []model.Listable{model.Project{ID: "p1", Title: "Rover"}},
				Total:    1,
			}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/projects", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body struct {
			Data  []map[string]any `json:"data"`
			Total int              `json:"total"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 1, body.Total)
		assert.Equal(t, "p1", body.Data[0]["id"])
	})

	t.Run("mode and search", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.CategoryBlog, model.FilterRecent, "robot").
			Return(&service.ListResult{Category: model.CategoryBlog, Mode: model.FilterRecent, Items: []model.Listable{}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/blog?mode=recent&search=robot", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid category", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/music", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INVALID_CATEGORY", body.Error.Code)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("invalid mode", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/blog?mode=popular", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_MODE", decodeError(t, resp).Error.Code)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, model.CategoryEdits, model.FilterFeatured, "").
			Return(nil, errors.New("resolve media: boom")).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/edits", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "boom")
	})

	mockSvc.AssertExpectations(t)
}

func TestGetContent(t *testing.T) {
	mockSvc := new(serviceMocks.MockContentService)
	app := fiber.New()
	app.Get("/api/content/:category/:id", GetContent(mockSvc))

	t.Run("found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, model.CategoryAnimations, "a1").
			Return(model.Animation{Media: model.Media{ID: "a1", Title: "Intro", VideoURL: "https://v/a1.mp4"}}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/animations/a1", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "https://v/a1.mp4", body["videoUrl"])
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Get", mock.Anything, model.CategoryAnimations, "zz").
			Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/animations/zz", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})
}

func TestGetProfile(t *testing.T) {
	mockSvc := new(serviceMocks.MockContentService)
	mockSvc.On("Profile", mock.Anything).Return(&model.Profile{Name: "Hridik Sabharwal"}, nil)

	app := fiber.New()
	app.Get("/api/profile", GetProfile(mockSvc))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/profile", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body model.Profile
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Hridik Sabharwal", body.Name)
}

func TestSessionRoutes(t *testing.T) {
	mockSvc := new(serviceMocks.MockSessionService)
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, Deps{
		Content:  new(serviceMocks.MockContentService),
		Sessions: mockSvc,
		Contact:  new(serviceMocks.MockContactService),
	})

	state := viewstate.Initial()

	t.Run("create", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything).Return(&service.SessionState{ID: "s1", State: state}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/sessions", nil))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "no-store", resp.Header.Get(fiber.HeaderCacheControl))
		var body service.SessionState
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "s1", body.ID)
		assert.Equal(t, model.PageHome, body.State.Page)
	})

	t.Run("create at limit", func(t *testing.T) {
		mockSvc.On("Create", mock.Anything).Return(nil, service.ErrSessionLimit).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/api/sessions", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SESSION_LIMIT", decodeError(t, resp).Error.Code)
	})

	t.Run("get unknown", func(t *testing.T) {
		mockSvc.On("State", mock.Anything, "nope").Return(nil, service.ErrSessionNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/sessions/nope", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "SESSION_NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	t.Run("navigate", func(t *testing.T) {
		next := state.Clone()
		next.Page = model.PageBlog
		mockSvc.On("Apply", mock.Anything, "s1", viewstate.Transition{Op: viewstate.OpNavigate, Page: model.PageBlog}).
			Return(&service.SessionState{ID: "s1", State: next}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/sessions/s1/navigate", map[string]string{"page": "blog"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body service.SessionState
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, model.PageBlog, body.State.Page)
	})

	t.Run("op comes from the path", func(t *testing.T) {
		mockSvc.On("Apply", mock.Anything, "s1", viewstate.Transition{Op: viewstate.OpSelectItem, Category: model.CategoryBlog, ItemID: "b1"}).
			Return(&service.SessionState{ID: "s1", State: state}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/sessions/s1/select",
			map[string]string{"op": "navigate", "category": "blog", "id": "b1"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("clear without body fields", func(t *testing.T) {
		mockSvc.On("Apply", mock.Anything, "s1", viewstate.Transition{Op: viewstate.OpClearSelection, Category: model.CategoryEdits}).
			Return(&service.SessionState{ID: "s1", State: state}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/sessions/s1/clear", map[string]string{"category": "edits"}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("invalid page", func(t *testing.T) {
		mockSvc.On("Apply", mock.Anything, "s1", viewstate.Transition{Op: viewstate.OpNavigate, Page: "settings"}).
			Return(nil, model.ErrUnknownPage).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/sessions/s1/navigate", map[string]string{"page": "settings"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_PAGE", decodeError(t, resp).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/sessions/s1/search", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Error.Code)
	})

	t.Run("view", func(t *testing.T) {
		mockSvc.On("Render", mock.Anything, "s1").Return(&service.View{
			State:  state,
			Page:   model.PageBlog,
			Detail: model.BlogPost{ID: "b1", Title: "My Journey into Robotics"},
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/sessions/s1/view", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "blog", body["page"])
		assert.Equal(t, "b1", body["detail"].(map[string]any)["id"])
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Error.Code)
	})

	mockSvc.AssertExpectations(t)
}

func TestComposeContact(t *testing.T) {
	mockSvc := new(serviceMocks.MockContactService)
	app := fiber.New()
	app.Post("/api/contact", ComposeContact(mockSvc))

	form := contact.Form{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Compose", mock.Anything, form).
			Return(&service.Handoff{Address: "me@example.com", URI: "mailto:me@example.com?subject=Hi&body=x"}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/contact", form))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body service.Handoff
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.True(t, strings.HasPrefix(body.URI, "mailto:me@example.com?"))
	})

	t.Run("missing field", func(t *testing.T) {
		blank := form
		blank.Subject = ""
		mockSvc.On("Compose", mock.Anything, blank).
			Return(nil, errors.Join(contact.ErrMissingField, errors.New("subject"))).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/contact", blank))

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "MISSING_FIELD", decodeError(t, resp).Error.Code)
	})
}

func TestStreamMedia(t *testing.T) {
	store := new(storeMocks.MockStorage)
	app := fiber.New()
	app.Get("/media/*", StreamMedia(store))

	t.Run("streams object", func(t *testing.T) {
		store.On("Get", mock.Anything, "media/img/rover.png").Return(
			io.NopCloser(strings.NewReader("PNGDATA")),
			storage.ObjectInfo{Key: "media/img/rover.png", Size: 7, ContentType: "image/png", ETag: "abc"},
			nil,
		).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/img/rover.png", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
		assert.Equal(t, `"abc"`, resp.Header.Get("ETag"))
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "PNGDATA", string(b))
	})

	t.Run("missing object", func(t *testing.T) {
		store.On("Get", mock.Anything, "media/none.png").Return(nil, storage.ObjectInfo{}, storage.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/none.png", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("empty key", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/media/", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_KEY", decodeError(t, resp).Error.Code)
	})

	store.AssertExpectations(t)
}
