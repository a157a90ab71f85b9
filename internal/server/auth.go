package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/kelechimadu/invoice-tally/internal/auth"
	"github.com/kelechimadu/invoice-tally/internal/common"
)

// RequireAuth verifies the bearer token on every request and stashes the
// resolved user ID in both Fiber locals and the request context. Data access
// below this point is always scoped to that ID.
func RequireAuth(verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
		}

		id, err := verifier.Verify(c.UserContext(), token)
		if err != nil {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
		}

		c.Locals(UserIDLocalKey, id.UserID)
		c.SetUserContext(common.WithUserID(c.UserContext(), id.UserID))
		return c.Next()
	}
}

func userIDFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDLocalKey).(string); ok {
		return v
	}
	return ""
}
