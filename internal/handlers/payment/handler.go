package payment

import (
	"net/http"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/payment/model/dto"
	"visitorpass/internal/domains/payment/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/payments/confirm", handler.Confirm)
}

// Confirm records a mock card payment and confirms the booking.
// @Summary Confirm payment
// @Description Records a SUCCESS payment for a BOOKED or DECLARED booking of the caller and moves it to CONFIRMED.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.ConfirmRequest true "Confirm Request"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Payment already completed for this booking"
// @Router /v1/payments/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Confirm")
	defer scope.End()

	req := dto.ConfirmRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	payment, err := handler.service.Confirm(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("module", req.Module).Str("booking_id", req.BookingID).Msg("failed to confirm payment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Payment confirmed " + payment.ID)

	response.WithJSON(writer, http.StatusCreated, payment)
}
