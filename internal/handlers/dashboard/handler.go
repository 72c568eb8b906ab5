package dashboard

import (
	"net/http"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/dashboard/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/overview", handler.Overview)
		routerGroup.Get("/bookings", handler.Bookings)
		routerGroup.Get("/payments", handler.Payments)
		routerGroup.Get("/booking/{module}/{id}", handler.BookingDetail)
	})
}

// Overview summarises the caller's bookings and money flow.
// @Summary Dashboard overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.OverviewResponse]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/overview [get]
// @Security BearerAuth
func (handler *Handler) Overview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Overview")
	defer scope.End()

	overview, err := handler.service.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard overview")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, overview)
}

// Bookings lists every booking of the caller, newest first.
// @Summary Dashboard bookings
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.BookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/bookings [get]
// @Security BearerAuth
func (handler *Handler) Bookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DashboardBookings")
	defer scope.End()

	bookings, err := handler.service.Bookings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list dashboard bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// Payments lists the caller's payments with their refunds.
// @Summary Dashboard payments
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.PaymentsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/payments [get]
// @Security BearerAuth
func (handler *Handler) Payments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DashboardPayments")
	defer scope.End()

	payments, err := handler.service.Payments(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list dashboard payments")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, payments)
}

// BookingDetail shows one booking with its payment, refund and cancellation.
// @Summary Booking detail
// @Tags Dashboard
// @Produce json
// @Param module path string true "EPASS, FOOD, ACCOMMODATION or ECO_FEE"
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingDetailResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/dashboard/booking/{module}/{id} [get]
// @Security BearerAuth
func (handler *Handler) BookingDetail(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingDetail")
	defer scope.End()

	module := chi.URLParam(request, "module")
	id := chi.URLParam(request, "id")

	if err := validator.ValidateParam("id", id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	detail, err := handler.service.BookingDetail(ctx, module, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("module", module).Str("booking_id", id).Msg("failed to get booking detail")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, detail)
}
