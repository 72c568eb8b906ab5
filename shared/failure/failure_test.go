package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"visitorpass/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
	}{
		{name: "forbidden", failure: failure.ForbiddenError, code: http.StatusForbidden},
		{name: "invalid module", failure: failure.InvalidModuleError, code: http.StatusBadRequest},
		{name: "booking not found", failure: failure.BookingNotFound, code: http.StatusNotFound},
		{name: "not payable", failure: failure.NotPayable, code: http.StatusBadRequest},
		{name: "already paid", failure: failure.AlreadyPaid, code: http.StatusConflict},
		{name: "not cancellable", failure: failure.NotCancellable, code: http.StatusBadRequest},
		{name: "invalid cancellation reason", failure: failure.InvalidCancellationReason, code: http.StatusForbidden},
		{name: "invalid stay range", failure: failure.InvalidStayRange, code: http.StatusBadRequest},
		{name: "invalid slot window", failure: failure.InvalidSlotWindow, code: http.StatusBadRequest},
		{name: "refund not pending", failure: failure.RefundNotPending, code: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.failure.Code)
			assert.NotEmpty(t, tt.failure.Error())
			assert.Equal(t, tt.failure.Message, tt.failure.Error())
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("Invalid date"), code: http.StatusBadRequest, message: "Invalid date"},
		{name: "unauthorized", err: failure.Unauthorized("Missing token"), code: http.StatusUnauthorized, message: "Missing token"},
		{name: "not found", err: failure.NotFound("Slot not found"), code: http.StatusNotFound, message: "Slot not found"},
		{name: "conflict", err: failure.Conflict("Slot is full"), code: http.StatusConflict, message: "Slot is full"},
		{name: "unprocessable", err: failure.Unprocessable("Refund already completed"), code: http.StatusUnprocessableEntity, message: "Refund already completed"},
		{name: "forbidden", err: failure.Forbidden("Invalid e-pass booking"), code: http.StatusForbidden, message: "Invalid e-pass booking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure
			require.ErrorAs(t, tt.err, &fail)
			assert.Equal(t, tt.code, fail.Code)
			assert.Equal(t, tt.message, fail.Message)
		})
	}
}

func TestBadRequest(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))

	err := failure.BadRequest(errors.New("quantity must be positive"))

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusBadRequest, fail.Code)
	assert.Equal(t, "quantity must be positive", fail.Message)
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.AlreadyPaid, want: http.StatusConflict},
		{name: "wrapped failure", err: fmt.Errorf("confirm payment: %w", failure.BookingNotFound), want: http.StatusNotFound},
		{name: "plain error", err: errors.New("connection reset"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}
