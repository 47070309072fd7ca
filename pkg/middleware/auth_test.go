package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hacktheshell/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func echoCaller(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user_id": c.GetString(ContextUserID), "role": c.GetString(ContextRole)})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "creator")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", echoCaller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"user-123","role":"creator"}`, w.Body.String())
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", echoCaller)

	for _, header := range []string{"", "InvalidFormat token", "Bearer invalid-token", "Bearer"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-9", "user")

	router := setupTestRouter()
	router.Use(OptionalAuthMiddleware(jwtService))
	router.GET("/test", echoCaller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":"","role":""}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.JSONEq(t, `{"user_id":"user-9","role":"user"}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole(t *testing.T) {
	router := setupTestRouter()
	router.GET("/admin", func(c *gin.Context) {
		c.Set(ContextRole, c.Query("role"))
		c.Next()
	}, RequireRole("admin"), echoCaller)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/admin?role=admin", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin?role=creator", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

type stubChecker struct {
	enabled bool
	err     error
}

func (s stubChecker) IsMaintenanceMode(context.Context) (bool, error) {
	return s.enabled, s.err
}

func TestMaintenanceMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		checker stubChecker
		role    string
		path    string
		want    int
	}{
		{"disabled", stubChecker{}, "", "/api/posts", http.StatusOK},
		{"enabled blocks visitors", stubChecker{enabled: true}, "", "/api/posts", http.StatusServiceUnavailable},
		{"enabled lets admins through", stubChecker{enabled: true}, "admin", "/api/posts", http.StatusOK},
		{"enabled exempt path", stubChecker{enabled: true}, "", "/api/maintenance", http.StatusOK},
		{"enabled exempt subpath", stubChecker{enabled: true}, "", "/api/admin/config", http.StatusOK},
		{"enabled blocks lookalike of exempt path", stubChecker{enabled: true}, "", "/api/maintenance-notes", http.StatusServiceUnavailable},
		{"enabled blocks lookalike of exempt group", stubChecker{enabled: true}, "", "/api/administrators", http.StatusServiceUnavailable},
		{"enabled exempt auth", stubChecker{enabled: true}, "", "/api/auth/user", http.StatusOK},
		{"enabled blocks authors", stubChecker{enabled: true}, "", "/api/authors", http.StatusServiceUnavailable},
		{"lookup failure fails open", stubChecker{err: errors.New("db down")}, "", "/api/posts", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.Use(func(c *gin.Context) {
				c.Set(ContextRole, tt.role)
				c.Next()
			})
			router.Use(MaintenanceMiddleware(tt.checker, "admin", "/api/maintenance", "/api/admin", "/api/auth"))
			router.GET("/api/*path", echoCaller)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRateLimitMiddleware_NilClientDisables(t *testing.T) {
	router := setupTestRouter()
	router.Use(RateLimitMiddleware(nil, 1, 0))
	router.GET("/test", echoCaller)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
