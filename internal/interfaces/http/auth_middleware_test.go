package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aguatrack/aguatrack-api/internal/domain/entity"
	apphttp "github.com/aguatrack/aguatrack-api/internal/interfaces/http"
	pkgjwt "github.com/aguatrack/aguatrack-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret  = "test-secret-key-for-unit-tests"
	testUserID     = "00000000-0000-0000-0000-000000000001"
	testBusinessID = "00000000-0000-0000-0000-000000000002"
	testIssuer     = "aguatrack-test"
	testExpMin     = 60
)

// fakeUserStore doble del repositorio de usuarios para el middleware.
type fakeUserStore struct {
	users map[string]*entity.User
}

func (f *fakeUserStore) Create(*entity.User) error                    { return nil }
func (f *fakeUserStore) GetByEmail(string) (*entity.User, error)      { return nil, nil }
func (f *fakeUserStore) Update(*entity.User) error                    { return nil }
func (f *fakeUserStore) SetOTP(string, string, time.Time) error       { return nil }
func (f *fakeUserStore) ClearOTP(string, bool) error                  { return nil }
func (f *fakeUserStore) SetBusinessID(string, string) error           { return nil }
func (f *fakeUserStore) GetByID(id string) (*entity.User, error) {
	return f.users[id], nil
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar el usuario desde el store
//   - RequireBusiness para exigir onboarding completado
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(store *fakeUserStore) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireBusiness(),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":          true,
				"business_id": apphttp.GetBusinessID(c),
			})
		},
	)
	return app
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireBusiness
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: usuario con negocio asociado → pasa ambos middlewares (HTTP 200).
func TestAuthMiddleware_UsuarioConNegocioAccede(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{
		testUserID: {ID: testUserID, BusinessID: testBusinessID, Role: entity.RoleOwner},
	}}
	app := buildTestApp(store)

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testBusinessID, body["business_id"],
		"el business_id debe salir del store, no del token")
}

// Caso 2: usuario autenticado pero sin onboarding → 403 ONBOARDING_REQUIRED.
// No es un error de token: el frontend debe redirigir al alta del negocio.
func TestRequireBusiness_SinOnboardingRetorna403(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Role: entity.RoleOwner},
	}}
	app := buildTestApp(store)

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "ONBOARDING_REQUIRED",
		"la respuesta debe incluir el código ONBOARDING_REQUIRED")
}

// Caso 3: token válido pero el usuario ya no existe en DB → 401.
func TestAuthMiddleware_UsuarioBorradoRetorna401(t *testing.T) {
	app := buildTestApp(&fakeUserStore{users: map[string]*entity.User{}})

	resp := doRequest(t, app, tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: sin header Authorization → 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeaderRetorna401(t *testing.T) {
	app := buildTestApp(&fakeUserStore{})

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token inválido / malformado → 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app := buildTestApp(&fakeUserStore{})

	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: header con esquema distinto a Bearer → 401.
func TestAuthMiddleware_EsquemaIncorrectoRetorna401(t *testing.T) {
	app := buildTestApp(&fakeUserStore{})

	resp := doRequest(t, app, "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func buildRoleApp(store *fakeUserStore, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret, store),
		apphttp.RequireRole(allowed...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"role": apphttp.GetRole(c)})
		},
	)
	return app
}

func TestRequireRole_RolPermitidoAccede(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Role: entity.RoleAdmin},
	}}
	app := buildRoleApp(store, entity.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", tokenFor(t, testUserID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_RolDistintoRetorna403(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{
		testUserID: {ID: testUserID, Role: entity.RoleOwner},
	}}
	app := buildRoleApp(store, entity.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", tokenFor(t, testUserID))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestJWT_Parse_SecretoDistinto(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secreto", tok)
	assert.Error(t, err)
}

func TestJWT_Parse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, -5)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err)
}
