package main

import (
	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/di"
	"todolist/shared/logger"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	http, cleanup, err := di.InitializeService(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}
