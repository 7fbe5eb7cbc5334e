package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoIdentity = errors.New("missing user identity")

// currentUserID reads the user id set by the auth middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userId").(string)
	if raw == "" {
		return uuid.Nil, errNoIdentity
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errNoIdentity
	}
	return id, nil
}
