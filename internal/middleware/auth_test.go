package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T, gate *auth.Gate) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Get("/protected", AuthRequired(gate), func(c *fiber.Ctx) error {
		userID := c.Locals("userID").(uint)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func TestAuthRequired(t *testing.T) {
	gate := auth.NewGate("test-secret-key-for-unit-tests-only")
	app := newProtectedApp(t, gate)

	t.Run("valid token passes and sets userID", func(t *testing.T) {
		token, err := gate.IssueToken(7, "root")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("valid token enriches the request context", func(t *testing.T) {
		ctxApp := fiber.New()
		var fromCtx any
		ctxApp.Get("/protected", AuthRequired(gate), func(c *fiber.Ctx) error {
			fromCtx = c.UserContext().Value(UserIDKey)
			return c.SendStatus(fiber.StatusOK)
		})

		token, err := gate.IssueToken(7, "root")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := ctxApp.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, uint(7), fromCtx)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abcdef")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.NewGate("a-completely-different-secret-key")
		token, err := other.IssueToken(7, "root")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
