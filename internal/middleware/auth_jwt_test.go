package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/whats-cookin/backend/services"
)

func testApp(t *testing.T) (*fiber.App, *services.AuthService) {
	t.Helper()
	auth := services.NewAuthService(nil, "test-secret", time.Hour, bcrypt.MinCost)

	app := fiber.New()
	app.Get("/protected", RequireToken(auth), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app, auth
}

func request(t *testing.T, app *fiber.App, authHeader string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRequireToken_MissingHeader(t *testing.T) {
	t.Parallel()
	app, _ := testApp(t)

	resp, _ := request(t, app, "")
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireToken_ValidToken(t *testing.T) {
	t.Parallel()
	app, auth := testApp(t)

	token, err := auth.GenerateToken("user-42")
	require.NoError(t, err)

	resp, body := request(t, app, "Bearer "+token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "user-42", body)
}

func TestRequireToken_BareTokenAccepted(t *testing.T) {
	t.Parallel()
	app, auth := testApp(t)

	token, err := auth.GenerateToken("user-42")
	require.NoError(t, err)

	resp, body := request(t, app, token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "user-42", body)
}

func TestRequireToken_InvalidToken(t *testing.T) {
	t.Parallel()
	app, _ := testApp(t)

	other := services.NewAuthService(nil, "other-secret", time.Hour, bcrypt.MinCost)
	foreign, err := other.GenerateToken("user-42")
	require.NoError(t, err)

	for _, header := range []string{"Bearer nonsense", foreign, "Bearer "} {
		resp, _ := request(t, app, header)
		require.Equal(t, fiber.StatusForbidden, resp.StatusCode, header)
	}
}
