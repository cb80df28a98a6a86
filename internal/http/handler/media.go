package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolio/internal/storage"
)

// StreamMedia serves an object from the media bucket. The wildcard is the key
// below the media/ prefix.
//
// @Summary Stream media object
// @Tags media
// @Param key path string true "object key below media/"
// @Success 200 {file} binary
// @Failure 404 {object} errorPayload
// @Router /media/{key} [get]
func StreamMedia(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rel := strings.TrimPrefix(c.Params("*"), "/")
		if rel == "" || strings.Contains(rel, "..") {
			return writeError(c, fiber.StatusBadRequest, "INVALID_KEY", "invalid media key")
		}

		body, info, err := store.Get(c.UserContext(), storage.MediaPrefix+rel)
		if err != nil {
			return serviceError(c, err)
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		// fasthttp closes body once it has been written.
		return c.SendStream(body, int(info.Size))
	}
}
