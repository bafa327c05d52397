package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel aligns this package's logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// parseID reads a positive integer id from the path.
// Anything else is reported as not ok, which callers answer with a 404
// since no record can have such an id.
func parseID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Params.Get("id")
	if !exists {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// logFailure records an unexpected store error with the request id
func logFailure(ctx *gin.Context, err error, message string) {
	log.WithFields(logrus.Fields{
		"request_id": ctx.GetString("requestID"),
		"path":       ctx.FullPath(),
		"error":      err.Error(),
	}).Error(message)
}
