package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"visitorpass/infras/otel/mocks"
	"visitorpass/internal/handlers/health"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestHandler_Health(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	tests := []struct {
		name     string
		checks   []health.Check
		wantCode int
	}{
		{
			name:     "all dependencies up",
			checks:   []health.Check{{Name: "postgres", Probe: up}, {Name: "redis", Probe: up}},
			wantCode: http.StatusOK,
		},
		{
			name:     "redis down",
			checks:   []health.Check{{Name: "postgres", Probe: up}, {Name: "redis", Probe: down}},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.NewWithChecks(mocks.NewOtel(), tt.checks...)

			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
