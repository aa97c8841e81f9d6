package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(secret), func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("user_id").(string))
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func TestValidTokenYieldsSubject(t *testing.T) {
	app := newTestApp(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	res := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestTokenWithUnmatchedAudienceStillAccepted(t *testing.T) {
	// Audience validation is deliberately disabled.
	app := newTestApp(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"aud": "some-other-service",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	res := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestMissingHeaderRejected(t *testing.T) {
	app := newTestApp(testSecret)

	res := doRequest(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestNonBearerSchemeRejected(t *testing.T) {
	app := newTestApp(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-123"})

	res := doRequest(t, app, "Basic "+token)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestWrongSecretRejected(t *testing.T) {
	app := newTestApp(testSecret)
	token := signToken(t, "another-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	res := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMissingSubjectRejected(t *testing.T) {
	app := newTestApp(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	res := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGarbageTokenRejected(t *testing.T) {
	app := newTestApp(testSecret)

	res := doRequest(t, app, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestMissingSecretIsServerError(t *testing.T) {
	app := newTestApp("")
	token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-123"})

	res := doRequest(t, app, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestTokenWithTrailingWhitespaceAccepted(t *testing.T) {
	app := newTestApp(testSecret)
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	res := doRequest(t, app, "Bearer "+token+"  ")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
