package helpers

import (
	"fmt"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
)

// LogFormat logs through the context logger and mirrors the message into a
// sentry breadcrumb so parse failures reported later keep their request
// context.
func LogFormat(contextLogger *log.Entry, format string, args ...interface{}) {
	contextLogger.Infof(format, args...)

	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category: "parse",
		Message:  fmt.Sprintf(format, args...),
		Data:     map[string]interface{}(contextLogger.Data),
		Level:    sentry.LevelInfo,
	})
}
