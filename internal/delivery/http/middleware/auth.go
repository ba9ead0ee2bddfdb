package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/midway/midway-backend/internal/pkg/errors"
	"github.com/midway/midway-backend/internal/pkg/token"
	"github.com/midway/midway-backend/internal/pkg/utils"
)

// Locals key holding the authenticated user id.
const UserIDKey = "user_id"

// Auth - verifies the Bearer token and stores the user id in locals
func Auth(tokens *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthorized.WithMessage("No token provided"))
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		claims, err := tokens.Parse(tokenString)
		if err != nil {
			return utils.SendError(c, errors.ErrUnauthorized.WithMessage("Invalid token"))
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID extracts the authenticated user id stored by Auth.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, ok := c.Locals(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.ErrUnauthorized
	}
	return id, nil
}
