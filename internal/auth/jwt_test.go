package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventia/ventia/internal/config"
)

func newManager(secret string) *Manager {
	return NewManager(config.JWTConfig{Algorithm: "HS256", Secret: secret})
}

func TestIssueAndVerify(t *testing.T) {
	m := newManager("test-secret")

	token, err := m.Issue(42, "luis@example.com", "admin")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.EmployeeID)
	assert.Equal(t, "luis@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "ventia", claims.Issuer)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := newManager("secret-a").Issue(1, "a@b.com", "employee")
	require.NoError(t, err)

	_, err = newManager("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := newManager("secret").Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func authRouter(m *Manager, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := append([]gin.HandlerFunc{RequireAuth(m)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		claims := ClaimsFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestRequireAuth(t *testing.T) {
	m := newManager("test-secret")
	r := authRouter(m)

	token, err := m.Issue(1, "luis@example.com", "employee")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid bearer", "Bearer " + token, http.StatusOK},
		{"case insensitive scheme", "bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"mangled token", "Bearer xx" + token, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	m := newManager("test-secret")
	r := authRouter(m, RequireAdmin())

	adminToken, err := m.Issue(1, "admin@example.com", "admin")
	require.NoError(t, err)
	staffToken, err := m.Issue(2, "staff@example.com", "employee")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+staffToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
