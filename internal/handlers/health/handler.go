package health

import (
	"context"
	"errors"
	"net/http"
	"time"
	"todoapp/infras/database"
	"todoapp/shared/constant"
	"todoapp/transport/http/response"

	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

var errNoDatabase = errors.New("no database connection")

type Handler struct {
	db *database.Connection
}

func New(db *database.Connection) Handler {
	return Handler{db: db}
}

// Check reports the write database reachability.
// @Summary Health check
// @Description Returns OK when the database answers a ping within two seconds.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Check(w http.ResponseWriter, r *http.Request) {
	if err := handler.ping(r.Context()); err != nil {
		log.Error().Err(err).Msg("health check failed")

		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
}

func (handler *Handler) ping(ctx context.Context) error {
	if handler.db == nil || handler.db.Write == nil {
		return errNoDatabase
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return handler.db.Write.PingContext(ctx) //nolint:wrapcheck
}
