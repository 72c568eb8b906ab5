package logger

import (
	"context"
	"io"
	"os"
	"time"
	"visitorpass/config"
	"visitorpass/shared/constant"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger writes JSON lines tagged with the service name, or a console format in development.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var out io.Writer = os.Stdout
	if cfg.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != "" {
		ctx = ctx.Str("service", cfg.App.Name)
	}

	log.Logger = ctx.Logger()
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// Request returns the global logger annotated with the request id and caller, when known.
func Request(ctx context.Context) *zerolog.Logger {
	with := log.Logger.With()

	if id := chiMiddleware.GetReqID(ctx); id != "" {
		with = with.Str("request_id", id)
	}

	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != "" {
		with = with.Str("user_id", user)
	}

	l := with.Logger()

	return &l
}
