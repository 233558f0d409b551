package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/internal/models"
	"github.com/TheHien04/Tra-Da-Mentor-Hub-sub001/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestTokenManager() *jwt.TokenManager {
	return jwt.NewTokenManager("test-access", "test-refresh", "test", 1, 24)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tm := newTestTokenManager()
	token, err := tm.IssueAccessToken("user-1", "a@example.com", "mentor")
	require.NoError(t, err)

	router := gin.New()
	router.Use(Authenticate(tm))
	router.GET("/test", func(c *gin.Context) {
		identity, err := GetIdentity(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, identity)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "mentor")
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	router := gin.New()
	router.Use(Authenticate(newTestTokenManager()))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	router := gin.New()
	router.Use(Authenticate(newTestTokenManager()))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"Bearer", "Basic abc", "Bearer "} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	expired := jwt.NewTokenManager("test-access", "test-refresh", "test", -1, -1)
	token, err := expired.IssueAccessToken("user-1", "a@example.com", "mentor")
	require.NoError(t, err)

	router := gin.New()
	router.Use(Authenticate(newTestTokenManager()))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	tm := newTestTokenManager()
	refresh, err := tm.IssueRefreshToken("user-1")
	require.NoError(t, err)

	router := gin.New()
	router.Use(Authenticate(tm))
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	tm := newTestTokenManager()

	router := gin.New()
	router.Use(Authenticate(tm))
	router.GET("/admin", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/staff", RequireRoles(models.RoleMentor, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name string
		role string
		path string
		want int
	}{
		{"admin on admin route", "admin", "/admin", http.StatusOK},
		{"mentor on admin route", "mentor", "/admin", http.StatusForbidden},
		{"mentor on staff route", "mentor", "/staff", http.StatusOK},
		{"mentee on staff route", "mentee", "/staff", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tm.IssueAccessToken("user-1", "a@example.com", tt.role)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireRoles_NoIdentity(t *testing.T) {
	// RequireRoles without Authenticate in front treats the request as
	// unauthenticated, not as forbidden
	router := gin.New()
	router.GET("/admin", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	tm := newTestTokenManager()

	router := gin.New()
	router.Use(OptionalAuth(tm))
	router.GET("/test", func(c *gin.Context) {
		if identity, err := GetIdentity(c); err == nil {
			c.JSON(http.StatusOK, gin.H{"userId": identity.UserID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": nil})
	})

	// Anonymous request passes through
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "null")

	// Invalid token is ignored, not rejected
	w = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Valid token attaches identity
	token, err := tm.IssueAccessToken("user-9", "b@example.com", "user")
	require.NoError(t, err)
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "user-9")
}
