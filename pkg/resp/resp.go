package resp

import (
	"errors"
	"log"
	"net/http"

	"github.com/NebiyouChanie/sapore/pkg/apperr"
	"github.com/gin-gonic/gin"
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

// Error is the single taxonomy-to-status translation used by every
// handler. Unexpected errors are logged with the handler's tag and
// returned as a generic 500, never with internal detail.
func Error(c *gin.Context, tag string, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case apperr.KindValidation:
			body := gin.H{"ok": false, "error": ae.Message}
			if len(ae.Fields) > 0 {
				body["details"] = ae.Fields
			}
			c.JSON(http.StatusBadRequest, body)
		case apperr.KindConflict:
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": ae.Message})
		case apperr.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": ae.Message})
		case apperr.KindAuth:
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": ae.Message})
		default:
			log.Printf("%s %v", tag, err)
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
		}
		return
	}

	log.Printf("%s %v", tag, err)
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}
