package global

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/getsentry/sentry-go"
)

// Setup configures logging and error reporting for the server.
func Setup() {
	// Log as JSON instead of the default ASCII formatter.
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)

	setupSentry()
}

func setupSentry() {
	dsn := os.Getenv("SENTRY_DSN")
	if len(dsn) == 0 {
		return
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: os.Getenv("SERVER_STAGE"),
	}); err != nil {
		fmt.Printf("Sentry initialization failed: %v\n", err)
	}
}
