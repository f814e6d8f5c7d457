package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/core/auth"
	"portfolio-api/internal/domain"
)

// Context keys set by RequireRole for downstream handlers.
const (
	CtxUsername = "username"
	CtxRole     = "role"
)

// RequireRole gates a route behind a bearer token. The credential is read
// from the Authorization header or the legacy auth-token header (first value
// wins) and must carry the Bearer scheme either way.
func RequireRole(l *zap.Logger, j *auth.JWTer, required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c.Request.Header)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		claims, err := j.Parse(raw)
		if err != nil {
			l.Warn("token rejected", zap.Error(err), zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		if required != "" && claims.Role != required {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "You don't have permission to access"})
			return
		}
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, string(claims.Role))
		c.Next()
	}
}

func bearerToken(h http.Header) string {
	v := h.Get("Authorization")
	if v == "" {
		v = h.Get("auth-token")
	}
	if !strings.HasPrefix(v, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(v, "Bearer ")
}
