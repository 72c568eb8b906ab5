package eco

import (
	"net/http"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/eco/model/dto"
	"visitorpass/internal/domains/eco/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Eco
	otel    otel.Otel
}

func New(service service.Eco, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/eco/declare", handler.Declare)
	router.Get("/eco/my/{epassId}", handler.GetMyDeclaration)
}

// Declare records the plastic items carried in on an e-pass.
// @Summary Declare plastics
// @Description Prices each item from the fee table and stores one declaration per e-pass.
// @Tags Eco
// @Accept json
// @Produce json
// @Param request body dto.DeclareRequest true "Declaration"
// @Success 201 {object} response.Data[dto.DeclarationResponse]
// @Failure 400 {object} response.Error "Unknown plastic type or cancelled e-pass"
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error "Already declared"
// @Router /v1/eco/declare [post]
// @Security BearerAuth
func (handler *Handler) Declare(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Declare")
	defer scope.End()

	req := dto.DeclareRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	declaration, err := handler.service.Declare(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("epass_booking_id", req.EpassBookingID).Msg("failed to declare plastics")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Eco declaration created " + declaration.ID)

	response.WithJSON(writer, http.StatusCreated, declaration)
}

// GetMyDeclaration returns the caller's declaration for an e-pass.
// @Summary My declaration
// @Tags Eco
// @Produce json
// @Param epassId path string true "E-pass booking ID"
// @Success 200 {object} response.Data[dto.DeclarationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/eco/my/{epassId} [get]
// @Security BearerAuth
func (handler *Handler) GetMyDeclaration(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyDeclaration")
	defer scope.End()

	epassID := chi.URLParam(request, "epassId")

	if err := validator.ValidateParam("epassId", epassID, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	declaration, err := handler.service.GetMine(ctx, epassID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("epass_booking_id", epassID).Msg("failed to get eco declaration")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, declaration)
}
