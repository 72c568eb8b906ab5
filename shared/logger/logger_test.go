package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"visitorpass/config"
	"visitorpass/shared/constant"
	"visitorpass/shared/logger"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture swaps the global logger for a buffer and restores global state on cleanup.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})

	return &buf
}

func TestInitLogger(t *testing.T) {
	capture(t)

	cfg := &config.Config{}
	cfg.App.Name = "visitorpass"
	cfg.Server.Env = "production"

	logger.InitLogger(cfg)

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	log.Info().Msg("booted")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visitorpass", line["service"])
	assert.Equal(t, "booted", line["message"])
}

func TestErrorWithStack(t *testing.T) {
	buf := capture(t)

	logger.ErrorWithStack(errors.New("slot procedure failed"))

	assert.Contains(t, buf.String(), "slot procedure failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     zerolog.Level
	}{
		{name: "debug", logLevel: "debug", want: zerolog.DebugLevel},
		{name: "info", logLevel: "info", want: zerolog.InfoLevel},
		{name: "warn", logLevel: "warn", want: zerolog.WarnLevel},
		{name: "error", logLevel: "error", want: zerolog.ErrorLevel},
		{name: "disabled", logLevel: "disabled", want: zerolog.Disabled},
		{name: "invalid falls back to trace", logLevel: "verbose", want: zerolog.TraceLevel},
		{name: "unset falls back to trace", logLevel: "", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capture(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestRequest(t *testing.T) {
	tests := []struct {
		name    string
		ctx     func() context.Context
		want    map[string]string
		missing []string
	}{
		{
			name:    "bare context",
			ctx:     context.Background,
			missing: []string{"request_id", "user_id"},
		},
		{
			name: "request id and caller",
			ctx: func() context.Context {
				var ctx context.Context

				chiMiddleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
					ctx = r.Context()
				})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

				return context.WithValue(ctx, constant.ContextKeyUserID, "user-1")
			},
			want: map[string]string{"user_id": "user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)

			logger.Request(tt.ctx()).Info().Msg("cancelled booking")

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

			for key, value := range tt.want {
				assert.Equal(t, value, line[key])
			}

			for _, key := range tt.missing {
				assert.NotContains(t, line, key)
			}

			if tt.want != nil {
				assert.NotEmpty(t, line["request_id"])
			}
		})
	}
}
