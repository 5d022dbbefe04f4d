package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/rustlersclub/club-api/internal/config"
	"github.com/rustlersclub/club-api/internal/openphone"
	"github.com/rustlersclub/club-api/internal/places"
	"github.com/rustlersclub/club-api/internal/server"
	"github.com/rustlersclub/club-api/internal/signup"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load .env file (ignore error if a file doesn't exist)
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	openphoneClient := openphone.NewClient(cfg.OpenPhoneAPIKey, cfg.SenderNumber,
		logger.With().Str("component", "openphone").Logger())
	placesClient := places.NewClient(cfg.PlacesAPIKey, cfg.PlaceID,
		logger.With().Str("component", "places").Logger())
	notifier := signup.NewNotifier(openphoneClient, cfg.StaffPhones,
		logger.With().Str("component", "signup").Logger())

	// Create and start the server
	srv := server.New(cfg, placesClient, notifier,
		logger.With().Str("component", "server").Logger())

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
