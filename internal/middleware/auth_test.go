package middleware //nolint:testpackage

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lk16/othello-puzzles/internal/config"
)

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.ServerConfig{
		BasicAuthUsername: "admin",
		BasicAuthPassword: "hunter2",
		Token:             "secret-token",
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("config", cfg)
		return c.Next()
	})
	app.Get("/protected", AuthOrToken(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	return app
}

func basicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func TestAuthOrToken(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{
			name:       "no credentials",
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "wrong token",
			headers:    map[string]string{"x-token": "not-the-token"},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "correct token",
			headers:    map[string]string{"x-token": "secret-token"},
			wantStatus: fiber.StatusOK,
		},
		{
			name:       "wrong basic auth password",
			headers:    map[string]string{"Authorization": basicAuthHeader("admin", "wrong")},
			wantStatus: fiber.StatusUnauthorized,
		},
		{
			name:       "correct basic auth",
			headers:    map[string]string{"Authorization": basicAuthHeader("admin", "hunter2")},
			wantStatus: fiber.StatusOK,
		},
	}

	app := newAuthTestApp(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/protected", nil)
			require.NoError(t, err)
			for key, value := range test.headers {
				req.Header.Set(key, value)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, test.wantStatus, resp.StatusCode)
		})
	}
}

func TestAuthOrTokenUnauthorizedTriggersLoginDialog(t *testing.T) {
	app := newAuthTestApp(t)

	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, `Basic realm="Restricted"`, resp.Header.Get("WWW-Authenticate"))
}
