package main

import (
	"visitorpass/config"
	"visitorpass/di"
	"visitorpass/helper"
	"visitorpass/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Visitor Pass API
// @version 1.0
// @description E-pass, meal, accommodation and eco-fee bookings with payments, cancellations and refunds.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup := di.InitializeService()
	defer cleanup()

	http.Serve()
}
