package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AdminJWT(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId": c.Locals("userId"),
			"token":  c.Locals("token"),
		})
	})
	return app
}

func TestAdminJWT(t *testing.T) {
	admin, err := GenerateJWT(testSecret, 5, "Lan", RoleAdmin, "lan@fomo.vn", time.Hour)
	require.NoError(t, err)
	learner, err := GenerateJWT(testSecret, 6, "Minh", "USER", "minh@fomo.vn", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT(testSecret, 5, "Lan", RoleAdmin, "lan@fomo.vn", -time.Hour)
	require.NoError(t, err)
	forged, err := GenerateJWT("other", 5, "Lan", RoleAdmin, "lan@fomo.vn", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"admin", "Bearer " + admin, fiber.StatusOK},
		{"missing header", "", fiber.StatusUnauthorized},
		{"no bearer prefix", admin, fiber.StatusUnauthorized},
		{"not admin", "Bearer " + learner, fiber.StatusForbidden},
		{"expired", "Bearer " + expired, fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + forged, fiber.StatusUnauthorized},
	}

	app := protectedApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
