package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"
	"visitorpass/config"
	"visitorpass/internal/jobs"
	"visitorpass/shared/constant"
	"visitorpass/transport/http/middleware"
	"visitorpass/transport/http/response"
	"visitorpass/transport/http/router"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "visitorpass/docs" // swagger docs
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout   = 10 * time.Second
	defaultShutdownWait = 10 * time.Second
)

type HTTP struct {
	Config        *config.Config
	Router        router.Router
	AppMiddleware middleware.AppMiddleware
	Scheduler     *jobs.Scheduler

	state  atomic.Int32
	mux    *chi.Mux
	server *http.Server
}

func New(cfg *config.Config, r router.Router, appMiddleware middleware.AppMiddleware, scheduler *jobs.Scheduler) *HTTP {
	return &HTTP{
		Config:        cfg,
		Router:        r,
		AppMiddleware: appMiddleware,
		Scheduler:     scheduler,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve runs the server and the background jobs until SIGINT or SIGTERM.
func (h *HTTP) Serve() {
	h.setup()

	if err := h.Scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start background jobs")
	}

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	h.shutdown(signals)
}

// Adaptor exposes the routes as a plain handler for serverless runtimes. Background jobs do not run there.
func (h *HTTP) Adaptor() http.Handler {
	h.setup()

	return h.mux
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		chiMiddleware.RequestID,
		chiMiddleware.Recoverer,
		h.AppMiddleware.Tracing,
		h.AppMiddleware.AccessLog,
		h.stateGuard,
	)

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Use(h.AppMiddleware.RateLimit())

	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.Router.SetupRoutes(h.mux)

	h.state.Store(int32(ServerStateReady))
}

// stateGuard turns new requests away once shutdown has started.
func (h *HTTP) stateGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if h.State() != ServerStateReady {
			response.WithPreparingShutdown(writer)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (h *HTTP) shutdown(done chan os.Signal) {
	<-done

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env != constant.ServerEnvDevelopment {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.state.Store(int32(ServerStateInGracePeriod))

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	wait := time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second
	if wait <= 0 {
		wait = defaultShutdownWait
	}

	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	select {
	case <-h.Scheduler.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("Background jobs did not finish before the cleanup deadline")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
