package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishimitra/api/database"
	"github.com/krishimitra/api/utils/response"
)

// UserHandler handles user lookup requests. Users are created through the
// phone verification flow; this handler only reads.
type UserHandler struct {
	store database.Storage
}

// NewUserHandler creates a new user handler
func NewUserHandler(store database.Storage) *UserHandler {
	return &UserHandler{store: store}
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.store.GetUser(c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch user")
	}
	if user == nil {
		return response.NotFound(c, "User not found")
	}
	return response.JSON(c, user)
}

// GetUserByPhone handles GET /api/users/phone/:phoneNumber
func (h *UserHandler) GetUserByPhone(c *fiber.Ctx) error {
	user, err := h.store.GetUserByPhone(c.Params("phoneNumber"))
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch user")
	}
	if user == nil {
		return response.NotFound(c, "User not found")
	}
	return response.JSON(c, user)
}
