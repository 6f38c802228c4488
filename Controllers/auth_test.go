package Controllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"Garage/Models"
	"Garage/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptPasswordRoundtrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("hunter22")))
	assert.Error(t, bcrypt.CompareHashAndPassword(hash, []byte("hunter23")))
}

func TestValidateStructTranslatesMessages(t *testing.T) {
	fields := ValidateStruct(Models.LoginRequest{Email: "not-an-email"})
	require.NotNil(t, fields)
	assert.Contains(t, fields["Email"], "valid email")
	assert.Contains(t, fields["Password"], "required")

	assert.Nil(t, ValidateStruct(Models.LoginRequest{
		Email:    "customer@test.local",
		Password: "hunter22",
	}))
}

// signTestToken issues a cookie token the way Login does.
func signTestToken(t *testing.T, userID uint) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(userID)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.SecretKey())
	require.NoError(t, err)
	return token
}

func TestVerifyPermissionGating(t *testing.T) {
	db := setupTestDB(t)
	previous := Models.DB
	Models.DB = db
	t.Cleanup(func() { Models.DB = previous })

	worker := Models.User{
		Name:       "Gate Worker",
		Email:      "gate-worker@test.local",
		Password:   []byte("test-password-hash"),
		Permission: Models.PermissionWorker,
	}
	require.NoError(t, db.Create(&worker).Error)

	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app := fiber.New()
	app.Get("/worker-only", middleware.Verify(Models.PermissionWorker), ok)
	app.Get("/admin-only", middleware.Verify(Models.PermissionAdmin), ok)

	// No cookie at all.
	resp, err := app.Test(httptest.NewRequest("GET", "/worker-only", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Garbage token.
	req := httptest.NewRequest("GET", "/worker-only", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "not-a-token"})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Worker token passes a worker gate.
	token := signTestToken(t, worker.ID)
	req = httptest.NewRequest("GET", "/worker-only", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Same token is forbidden on an admin gate.
	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
