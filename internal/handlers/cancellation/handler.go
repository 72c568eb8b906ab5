package cancellation

import (
	"net/http"
	"visitorpass/infras/otel"
	bookingModel "visitorpass/internal/domains/booking/model"
	"visitorpass/internal/domains/cancellation/model/dto"
	"visitorpass/internal/domains/cancellation/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cancellation
	otel    otel.Otel
}

func New(service service.Cancellation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/cancel", handler.Cancel)
	router.Get("/cancel/reasons", handler.ListReasons)
	router.Post("/admin/cancel", handler.AdminCancel)

	router.Post("/epass/cancel/{id}", handler.cancelModule(bookingModel.ModuleEpass))
	router.Post("/food/cancel/{id}", handler.cancelModule(bookingModel.ModuleFood))
	router.Post("/accommodation/cancel/{id}", handler.cancelModule(bookingModel.ModuleAccommodation))
	router.Post("/eco/cancel/{id}", handler.cancelModule(bookingModel.ModuleEcoFee))
}

// Cancel cancels one of the caller's bookings.
// @Summary Cancel a booking
// @Description Cancel a BOOKED or DECLARED booking with a visitor reason code. A settled payment opens a pending refund.
// @Tags Cancellation
// @Accept json
// @Produce json
// @Param request body dto.CancelRequest true "Cancel Request"
// @Success 200 {object} response.Data[dto.CancelResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error "Reason not allowed"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	req := dto.CancelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to cancel booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking cancelled " + res.BookingID)

	response.WithJSON(writer, http.StatusOK, res)
}

// cancelModule serves the per-module cancel endpoints, which carry no reason code.
// @Summary Cancel a booking of one module
// @Tags Cancellation
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.CancelResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/epass/cancel/{id} [post]
// @Router /v1/food/cancel/{id} [post]
// @Router /v1/accommodation/cancel/{id} [post]
// @Router /v1/eco/cancel/{id} [post]
// @Security BearerAuth
func (handler *Handler) cancelModule(module bookingModel.Module) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel"+string(module))
		defer scope.End()

		id := chi.URLParam(request, "id")

		if err := validator.ValidateParam("id", id, "required,uuid"); err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		res, err := handler.service.CancelModule(ctx, dto.ModuleCancelRequest{
			Module:    string(module),
			BookingID: id,
		})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("module", string(module)).Str("booking_id", id).Msg("failed to cancel booking")

			response.WithError(writer, err)

			return
		}

		response.WithJSON(writer, http.StatusOK, res)
	}
}

// AdminCancel cancels any booking on behalf of the operator.
// @Summary Cancel a booking as admin
// @Description Requires an ADMIN reason code. Confirmed bookings may be cancelled too.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.AdminCancelRequest true "Admin Cancel Request"
// @Success 200 {object} response.Data[dto.CancelResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/cancel [post]
// @Security BearerAuth
func (handler *Handler) AdminCancel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminCancel")
	defer scope.End()

	req := dto.AdminCancelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.AdminCancel(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to cancel booking as admin")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + res.BookingID + " cancelled by admin " + user)

	response.WithJSON(writer, http.StatusOK, res)
}

// ListReasons lists the reasons a visitor may pick.
// @Summary Cancellation reasons
// @Tags Cancellation
// @Produce json
// @Success 200 {object} response.Data[dto.ReasonsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/cancel/reasons [get]
// @Security BearerAuth
func (handler *Handler) ListReasons(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListReasons")
	defer scope.End()

	reasons, err := handler.service.ListReasons(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list cancellation reasons")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reasons)
}
