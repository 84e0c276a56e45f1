package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront-app/config"
	"storefront-app/internal/models"
	"storefront-app/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{}
	config.AppConfig.Server.JWTSecret = "test-secret"
	config.AppConfig.Server.JWTExpirationHours = 1

	r := gin.New()
	r.GET("/protected", RequireAuth(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet("userID"),
			"role":    c.MustGet("role"),
		})
	})
	return r
}

func request(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := testRouter(t)
	assert.Equal(t, http.StatusUnauthorized, request(r, "").Code)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	r := testRouter(t)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Basic abc123").Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := testRouter(t)
	assert.Equal(t, http.StatusUnauthorized, request(r, "Bearer not-a-token").Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	r := testRouter(t)
	token, err := utils.GenerateToken(42, models.RoleCustomer)
	require.NoError(t, err)

	w := request(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), models.RoleCustomer)
}

func TestRequireAuthRoleGate(t *testing.T) {
	r := testRouter(t, models.RoleAdmin)

	customerToken, err := utils.GenerateToken(42, models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, request(r, "Bearer "+customerToken).Code)

	adminToken, err := utils.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, request(r, "Bearer "+adminToken).Code)
}
