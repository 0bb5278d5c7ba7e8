package handler

import (
	"net/http"
	"sync"
	"todoapp/config"
	"todoapp/di"
	"todoapp/helper"
	"todoapp/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	once   sync.Once
	server http.Handler
)

// Handler is the serverless entrypoint. Warm invocations reuse the application built by the first one.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(setup)

	server.ServeHTTP(w, r)
}

func setup() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Error().Err(err).Msg("Failed to run migrations")
		}
	}

	server = di.InitializeService()
}
