package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/albertkemp/home-cooking/pkg/apperr"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

// Error maps an apperr kind to its status code. Internal errors are
// logged with their detail server-side and reported to the caller as a
// bare "internal error".
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.Kind(err) {
	case apperr.ErrUnauthorized:
		status = http.StatusUnauthorized
	case apperr.ErrForbidden:
		status = http.StatusForbidden
	case apperr.ErrNotFound:
		status = http.StatusNotFound
	case apperr.ErrInvalidInput, apperr.ErrInvalidTransition, apperr.ErrUnavailable:
		status = http.StatusBadRequest
	case apperr.ErrConflict:
		status = http.StatusConflict
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logrus.WithFields(logrus.Fields{
			"path":   c.FullPath(),
			"method": c.Request.Method,
		}).WithError(err).Error("request failed")
		msg = apperr.ErrInternal.Error()
	}
	c.JSON(status, gin.H{"ok": false, "error": msg})
}
