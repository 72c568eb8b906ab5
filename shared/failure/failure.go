package failure

import (
	"errors"
	"net/http"
)

// Failure is an error the transport layer renders with Code as the HTTP status and Message as the body.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError     = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	InvalidModuleError = &Failure{Code: http.StatusBadRequest, Message: "Invalid module"}

	BookingNotFound           = &Failure{Code: http.StatusNotFound, Message: "Booking not found"}
	NotPayable                = &Failure{Code: http.StatusBadRequest, Message: "Booking cannot be paid in its current status"}
	AlreadyPaid               = &Failure{Code: http.StatusConflict, Message: "Payment already completed for this booking"}
	NotCancellable            = &Failure{Code: http.StatusBadRequest, Message: "Booking cannot be cancelled in current state"}
	InvalidCancellationReason = &Failure{Code: http.StatusForbidden, Message: "Invalid or unauthorized cancellation reason"}
	InvalidStayRange          = &Failure{Code: http.StatusBadRequest, Message: "Check-out date must be after check-in date"}
	InvalidSlotWindow         = &Failure{Code: http.StatusBadRequest, Message: "end_time must be after start_time"}
	RefundNotPending          = &Failure{Code: http.StatusUnprocessableEntity, Message: "Refund is not pending"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400, or returns nil for a nil err.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// NotFound returns a 404 whose message names the missing entity.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

func Conflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: msg,
	}
}

// Unprocessable is for well-formed requests that the resource's current state rejects.
func Unprocessable(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the status carried by err, or 500 when err is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
