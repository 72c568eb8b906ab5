package health

import (
	"context"
	"net/http"
	"time"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/shared/constant"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Check probes one dependency.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

type Handler struct {
	checks []Check
	otel   otel.Otel
}

func New(db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return NewWithChecks(otel,
		Check{Name: "postgres", Probe: db.Write.PingContext},
		Check{Name: "redis", Probe: func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		}},
	)
}

func NewWithChecks(otel otel.Otel, checks ...Check) Handler {
	return Handler{
		checks: checks,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

type Status struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// Health reports whether the service and its dependencies are reachable.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Message
// @Router /v1/health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	status := Status{Status: "ok", Dependencies: map[string]string{}}

	for _, check := range handler.checks {
		if err := check.Probe(ctx); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("dependency", check.Name).Msg("health check failed")

			status.Status = "degraded"
			status.Dependencies[check.Name] = "down"

			continue
		}

		status.Dependencies[check.Name] = "up"
	}

	if status.Status != "ok" {
		response.WithUnhealthy(writer)

		return
	}

	response.WithJSON(writer, http.StatusOK, status)
}
