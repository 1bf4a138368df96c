package handler

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"todolist/config"
	"todolist/di"
	"todolist/shared/logger"
	"todolist/transport/http/response"
)

var (
	service     http.Handler
	serviceErr  error
	serviceOnce sync.Once
)

// Handler is the serverless entrypoint. The service graph is built once per
// instance and reused across invocations; the startup gate is not run here.
func Handler(w http.ResponseWriter, r *http.Request) {
	serviceOnce.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.SetLogLevel(cfg)

		service, _, serviceErr = di.InitializeService(cfg)
		if serviceErr != nil {
			log.Error().Err(serviceErr).Msg("Failed to initialize service")
		}
	})

	if serviceErr != nil {
		response.WithUnhealthy(w)

		return
	}

	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
