package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edustack/edustack-backend/internal/config"
	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(authService *service.AuthService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(authService), func(c *gin.Context) {
		claims := GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID})
	})
	return r
}

func testAuthService() *service.AuthService {
	return service.NewAuthService(&config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	})
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := newAuthRouter(testAuthService())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Not authorized to access this route")
}

func TestRequireAuthBearerHeader(t *testing.T) {
	svc := testAuthService()
	r := newAuthRouter(svc)

	token, err := svc.GenerateToken(&model.Student{ID: uuid.New(), Role: model.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthCookieFallback(t *testing.T) {
	svc := testAuthService()
	r := newAuthRouter(svc)

	token, err := svc.GenerateToken(&model.Student{ID: uuid.New(), Role: model.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthTamperedToken(t *testing.T) {
	svc := testAuthService()
	r := newAuthRouter(svc)

	token, err := svc.GenerateToken(&model.Student{ID: uuid.New(), Role: model.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
