package main

import (
	"lifecare/config"
	"lifecare/di"
	"lifecare/shared/logger"
)

// @title Swasti Lifecare API
// @version 1.0
// @description Clinic content and appointment requests.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetOutput(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
