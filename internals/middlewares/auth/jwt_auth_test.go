package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul_backend/internals/constants"
)

// appWithRole mounts RequireRole behind a stub that plants the role local
// the way AuthJWT does after verifying a token.
func appWithRole(role string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals(LocRole, role)
		}
		return c.Next()
	})
	app.Get("/guarded", RequireRole(constants.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"matching role passes", constants.RoleAdmin, fiber.StatusOK},
		{"other role forbidden", constants.RoleStaff, fiber.StatusForbidden},
		{"missing role forbidden", "", fiber.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := appWithRole(tt.role)
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
