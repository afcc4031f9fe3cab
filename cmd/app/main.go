package main

import (
	"github.com/prairiewest/store-receipt-validator/internal/global"
	"github.com/prairiewest/store-receipt-validator/internal/routers"
)

func main() {
	global.Setup()
	echo := routers.SetupRouter()

	// Start server
	echo.Logger.Fatal(echo.Start(":8092"))
}
