package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpiface "github.com/tu-usuario/almacen-ledger/internal/interfaces/http"
	"github.com/tu-usuario/almacen-ledger/pkg/jwt"
)

const testSecret = "secreto-de-test"

// buildTestApp arma una app mínima: una ruta protegida por auth y otra que
// además exige rol admin.
func buildTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", httpiface.AuthMiddleware(testSecret))
	protected.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": httpiface.GetUserID(c),
			"name":    httpiface.GetUserName(c),
			"role":    httpiface.GetRole(c),
		})
	})
	protected.Get("/admin", httpiface.RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, "u1", "Ana", role, "test", 5)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/perfil", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp()
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/perfil", "Token abc").StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/perfil", "Bearer ").StatusCode)
}

func TestAuthMiddleware_TokenInvalido(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/perfil", "Bearer no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaDeOtroSecreto(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "u1", "Ana", "admin", "test", 5)
	require.NoError(t, err)
	resp := doRequest(t, buildTestApp(), "/perfil", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoPasa(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/perfil", "Bearer "+tokenForRole(t, "bodeguero"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/admin", "Bearer "+tokenForRole(t, "admin"))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_VendedorRechazado(t *testing.T) {
	resp := doRequest(t, buildTestApp(), "/admin", "Bearer "+tokenForRole(t, "vendedor"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
