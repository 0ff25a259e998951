package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Ruchin-Audichya/Student-Copilot/internal/utils"
)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery(l *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, rec any) {
		reqID, _ := c.Get("request_id")
		l.WithFields(logrus.Fields{
			"request_id": reqID,
			"path":       c.FullPath(),
			"panic":      rec,
		}).Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code":    utils.CodeInternal,
			"message": http.StatusText(http.StatusInternalServerError),
		})
	})
}
