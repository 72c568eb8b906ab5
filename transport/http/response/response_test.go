package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	"visitorpass/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, constant.ContentTypeJSON, recorder.Header().Get(constant.RequestHeaderContentType))

	body := decode(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"id": "abc"}, body["data"])
}

func TestWithMessage(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		success bool
	}{
		{name: "success", code: http.StatusOK, success: true},
		{name: "rate limited", code: http.StatusTooManyRequests, success: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithMessage(recorder, tt.code, "done")

			body := decode(t, recorder)
			assert.Equal(t, tt.code, recorder.Code)
			assert.Equal(t, tt.success, body["success"])
			assert.Equal(t, "done", body["message"])
		})
	}
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "typed failure",
			err:         failure.Conflict("Slot is full"),
			wantCode:    http.StatusConflict,
			wantMessage: "Slot is full",
		},
		{
			name:        "wrapped failure",
			err:         fmt.Errorf("failed to book: %w", failure.NotFound("Slot not found")),
			wantCode:    http.StatusNotFound,
			wantMessage: "Slot not found",
		},
		{
			name:        "untyped error is masked",
			err:         errors.New("pq: connection refused"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: constant.ResponseErrorInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			body := decode(t, recorder)
			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}
