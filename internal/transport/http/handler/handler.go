package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/apperr"
)

// writeError translates the error taxonomy to a status and a {message} body.
// Anything unrecognized is logged and surfaced as a generic 500.
func writeError(c *gin.Context, l *zap.Logger, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		if ae.Err != nil {
			l.Warn("request failed", zap.String("path", c.FullPath()), zap.Error(ae.Err))
		}
		c.JSON(ae.Status(), gin.H{"message": ae.Error()})
		return
	}
	l.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(500, gin.H{"error": "Internal server error"})
}
