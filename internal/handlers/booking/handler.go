package booking

import (
	"net/http"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/booking/model/dto"
	"visitorpass/internal/domains/booking/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/epass/book", handler.BookEpass)
	router.Get("/epass/my", handler.GetMyEpassBookings)

	router.Post("/food/book", handler.BookFood)
	router.Get("/food/my", handler.GetMyFoodBookings)

	router.Post("/accommodation/book", handler.BookAccommodation)
	router.Get("/accommodation/my", handler.GetMyAccommodationBookings)
}

// BookEpass reserves a place in an entry slot.
// @Summary Book an e-pass
// @Description Reserve one place in an active entry slot. The slot counter is incremented atomically.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookEpassRequest true "Book E-pass Request"
// @Success 201 {object} response.Data[dto.EpassBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot full or already booked"
// @Failure 500 {object} response.Error
// @Router /v1/epass/book [post]
// @Security BearerAuth
func (handler *Handler) BookEpass(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookEpass")
	defer scope.End()

	req := dto.BookEpassRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.BookEpass(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book e-pass")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("E-pass booked by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// BookFood reserves a meal.
// @Summary Book a meal
// @Description Reserve a place in a food slot, optionally tied to one of the caller's e-passes.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookFoodRequest true "Book Food Request"
// @Success 201 {object} response.Data[dto.FoodBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/food/book [post]
// @Security BearerAuth
func (handler *Handler) BookFood(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookFood")
	defer scope.End()

	req := dto.BookFoodRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.BookFood(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book food")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Meal booked by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// BookAccommodation books a stay.
// @Summary Book accommodation
// @Description Book an accommodation for whole nights. The amount is computed server side.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookAccommodationRequest true "Book Accommodation Request"
// @Success 201 {object} response.Data[dto.AccommodationBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/accommodation/book [post]
// @Security BearerAuth
func (handler *Handler) BookAccommodation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAccommodation")
	defer scope.End()

	req := dto.BookAccommodationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.BookAccommodation(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book accommodation")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Accommodation booked by user " + user)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetMyEpassBookings lists the caller's e-passes.
// @Summary My e-passes
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.EpassBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/epass/my [get]
// @Security BearerAuth
func (handler *Handler) GetMyEpassBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyEpassBookings")
	defer scope.End()

	bookings, err := handler.service.ListMyEpass(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get e-pass bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetMyFoodBookings lists the caller's meals.
// @Summary My meals
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.FoodBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/food/my [get]
// @Security BearerAuth
func (handler *Handler) GetMyFoodBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyFoodBookings")
	defer scope.End()

	bookings, err := handler.service.ListMyFood(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetMyAccommodationBookings lists the caller's stays.
// @Summary My stays
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.AccommodationBookingsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/accommodation/my [get]
// @Security BearerAuth
func (handler *Handler) GetMyAccommodationBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyAccommodationBookings")
	defer scope.End()

	bookings, err := handler.service.ListMyAccommodation(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get accommodation bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}
