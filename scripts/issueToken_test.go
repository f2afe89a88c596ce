package main

import (
	"fomo/config"
	"fomo/middleware"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenNeedsConfiguredSecret(t *testing.T) {
	for _, key := range []string{"", config.DefaultJWTKey} {
		_, err := issueToken(&config.Config{JWTKey: key}, 1, "Admin", middleware.RoleAdmin, "a@fomo.vn", time.Hour)
		assert.ErrorIs(t, err, errNoSecret, key)
	}
}

func TestIssuedTokenPassesAdminGate(t *testing.T) {
	cfg := &config.Config{JWTKey: "local-secret"}
	token, err := issueToken(cfg, 4, "Admin", middleware.RoleAdmin, "a@fomo.vn", time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", middleware.AdminJWT(cfg.JWTKey), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
