package middleware

import (
	"context"
	"strings"

	"bloglist/internal/auth"
	"bloglist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns an empty string when the header is absent or malformed;
// the gate treats an empty token as unauthorized.
func BearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired enforces authentication for protected routes. The resolved
// user ID is stored in c.Locals("userID") and in the request context, so the
// context-aware logger tags every downstream record with it.
func AuthRequired(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := gate.ResolvePrincipal(BearerToken(c))
		if err != nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized, err)
		}

		c.Locals("userID", userID)
		ctx := context.WithValue(c.UserContext(), UserIDKey, userID)
		c.SetUserContext(ctx)
		return c.Next()
	}
}
