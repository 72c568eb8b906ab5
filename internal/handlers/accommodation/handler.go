package accommodation

import (
	"net/http"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/accommodation/model/dto"
	"visitorpass/internal/domains/accommodation/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Accommodation
	otel    otel.Otel
}

func New(service service.Accommodation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/accommodations", handler.ListAccommodations)
	router.Post("/accommodations/quote", handler.Quote)

	router.Route("/admin/accommodations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAccommodation)
		routerGroup.Patch("/{id}/toggle", handler.ToggleAccommodation)
	})
}

// ListAccommodations lists active accommodations.
// @Summary List accommodations
// @Tags Accommodation
// @Produce json
// @Param type query string false "Accommodation type"
// @Success 200 {object} response.Data[dto.AccommodationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/accommodations [get]
func (handler *Handler) ListAccommodations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListAccommodations")
	defer scope.End()

	req := dto.ListAccommodationsRequest{
		Type: request.URL.Query().Get("type"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	accommodations, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list accommodations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, accommodations)
}

// Quote prices a stay without booking it.
// @Summary Quote a stay
// @Description Days are whole nights between check-in and check-out, minimum one.
// @Tags Accommodation
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Stay"
// @Success 200 {object} response.Data[dto.QuoteResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/accommodations/quote [post]
func (handler *Handler) Quote(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote accommodation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, quote)
}

// CreateAccommodation registers an accommodation.
// @Summary Create accommodation
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAccommodationRequest true "Accommodation"
// @Success 201 {object} response.Data[dto.AccommodationResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/accommodations [post]
// @Security BearerAuth
func (handler *Handler) CreateAccommodation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAccommodation")
	defer scope.End()

	req := dto.CreateAccommodationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	accommodation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create accommodation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Accommodation created " + accommodation.ID)

	response.WithJSON(writer, http.StatusCreated, accommodation)
}

// ToggleAccommodation flips the active flag of an accommodation.
// @Summary Toggle accommodation
// @Tags Admin
// @Produce json
// @Param id path string true "Accommodation ID"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/accommodations/{id}/toggle [patch]
// @Security BearerAuth
func (handler *Handler) ToggleAccommodation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleAccommodation")
	defer scope.End()

	id := chi.URLParam(request, "id")

	if err := validator.ValidateParam("id", id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Toggle(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to toggle accommodation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
