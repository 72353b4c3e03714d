package main

import (
	"starlight/config"
	"starlight/di"
	"starlight/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title						Starlight API
// @version					1.0
// @description				Bookings, journal, house diagram and articles for the Starlight site.
// @BasePath					/
func main() {
	cfg := config.Get()

	logger.Configure(cfg)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
