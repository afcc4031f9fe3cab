package routers

import (
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apiControllerV2 "github.com/prairiewest/store-receipt-validator/internal/controllers/v2"
)

// SetupRouter is ...
func SetupRouter() *echo.Echo {
	// Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(sentryecho.New(sentryecho.Options{}))

	v2 := e.Group("/v2")

	v2.GET("/serverinfo", apiControllerV2.ServerInfo)

	v2transaction := v2.Group("/transaction")
	v2transaction.POST("/parse", apiControllerV2.ParseTransaction)
	v2transaction.POST("/parse/legacy", apiControllerV2.ParseLegacyReceipt)

	v2.POST("/renewal/parse", apiControllerV2.ParseRenewal)

	return e
}
