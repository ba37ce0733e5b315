package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(testSecret)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := GetStaffID(c)
		c.JSON(http.StatusOK, gin.H{"staff_id": id})
	})
	r.GET("/protected", handlers...)
	return r
}

func call(r *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareHeaders(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantBody   string
	}{
		{"empty header", "", "Authorization header required"},
		{"invalid format", "Token abc", "Invalid authorization header format"},
		{"empty token", "Bearer ", "Token is empty"},
		{"malformed token", "Bearer abc.def", "Invalid or malformed token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(protectedRouter(), tt.authHeader)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token, err := GenerateAccessToken(9, "desk@futsal.local", RoleStaff, testSecret, time.Hour)
	require.NoError(t, err)

	w := call(protectedRouter(), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"staff_id":9}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	staff, err := GenerateAccessToken(1, "s@futsal.local", RoleStaff, testSecret, time.Hour)
	require.NoError(t, err)
	admin, err := GenerateAccessToken(2, "a@futsal.local", RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		roles  []string
		status int
	}{
		{"admin on admin route", admin, []string{RoleAdmin}, http.StatusOK},
		{"staff on admin route", staff, []string{RoleAdmin}, http.StatusForbidden},
		{"staff on shared route", staff, []string{RoleAdmin, RoleStaff}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(protectedRouter(tt.roles...), "Bearer "+tt.token)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		role   any
		status int
	}{
		{"no role set", nil, http.StatusUnauthorized},
		{"role of wrong type", 123, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.role != nil {
				c.Set(ctxRole, tt.role)
			}

			RequireRole(RoleAdmin)(c)

			assert.Equal(t, tt.status, w.Code)
			assert.True(t, c.IsAborted())
		})
	}
}
