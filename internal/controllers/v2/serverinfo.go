package v2

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ServerVersion is stamped at build time.
var ServerVersion = "dev"

// ServerInfo handles server information requests.
func ServerInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"service": "store-receipt-validator",
		"version": ServerVersion,
	})
}
