package api

import (
	"errors"
	"net/http"
	"time"

	"reveste/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError translates core error kinds into transport status codes. This
// is the only place that mapping lives; the core returns error values and
// never touches HTTP.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.Is(err, models.ErrIDMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrIDMismatch.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNotFound.Error()})
	default:
		// Concurrency conflicts and store failures surface as server errors;
		// the boundary logs them, the core does not.
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"error":  err.Error(),
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// requestLogger logs each request with method, path, status and latency
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("Request handled")
	}
}
