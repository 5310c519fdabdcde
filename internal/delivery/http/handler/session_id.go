package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionHeader = "X-Session-Id"

// sessionID returns the caller's session ID, generating one when absent. The
// ID is echoed on the response so the client can carry it forward.
func sessionID(c *fiber.Ctx) string {
	id := c.Get(sessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(sessionHeader, id)
	return id
}
