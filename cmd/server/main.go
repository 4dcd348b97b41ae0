package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	app "promo-pages/internal/app/server"
	"promo-pages/internal/config"
)

func main() {
	// optional; real deployments set APP_* directly
	_ = godotenv.Load()

	cfg := config.MustLoad()
	if err := app.Run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
