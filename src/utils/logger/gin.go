package logger

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Request-scoped logger, tagged with the route path
func LOG(c *gin.Context) *logrus.Entry {
	return NewSublogger("rest").WithField("path", c.FullPath())
}

// Like LOG, but also finishes the request with the given status code.
// The returned entry still needs a log call, e.g. LOGE(c, err, 400).Error("...")
func LOGE(c *gin.Context, err error, status int) *logrus.Entry {
	if err == nil {
		err = errors.New(http.StatusText(status))
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
	return LOG(c).WithError(err)
}
