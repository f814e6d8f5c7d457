package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolio-api/internal/core/auth"
	"portfolio-api/internal/domain"
)

func newGuardedRouter(t *testing.T, j *auth.JWTer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/secret", RequireRole(zap.NewNop(), j, domain.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": c.GetString(CtxUsername), "role": c.GetString(CtxRole)})
	})
	return r
}

func testJWTer() *auth.JWTer {
	return &auth.JWTer{Secret: []byte("test-secret"), Issuer: "portfolio-api", TTL: time.Hour}
}

func get(r *gin.Engine, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGuard_MissingToken(t *testing.T) {
	r := newGuardedRouter(t, testJWTer())
	w := get(r, "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"Unauthorized"}`, w.Body.String())
}

func TestGuard_WrongScheme(t *testing.T) {
	r := newGuardedRouter(t, testJWTer())
	w := get(r, "Authorization", "Basic abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuard_InvalidToken(t *testing.T) {
	r := newGuardedRouter(t, testJWTer())
	w := get(r, "Authorization", "Bearer not.a.jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String())
}

func TestGuard_UserRoleForbidden(t *testing.T) {
	j := testJWTer()
	r := newGuardedRouter(t, j)
	tok, err := j.Issue("bob", domain.RoleUser)
	require.NoError(t, err)

	w := get(r, "Authorization", "Bearer "+tok)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuard_AdminAllowed(t *testing.T) {
	j := testJWTer()
	r := newGuardedRouter(t, j)
	tok, err := j.Issue("alice", domain.RoleAdmin)
	require.NoError(t, err)

	w := get(r, "Authorization", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"username":"alice","role":"admin"}`, w.Body.String())
}

func TestGuard_AuthTokenHeaderAccepted(t *testing.T) {
	j := testJWTer()
	r := newGuardedRouter(t, j)
	tok, err := j.Issue("alice", domain.RoleAdmin)
	require.NoError(t, err)

	w := get(r, "auth-token", "Bearer "+tok)
	require.Equal(t, http.StatusOK, w.Code)
}
