package refund

import (
	"net/http"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/refund/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/middleware"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Refund
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Refund, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/admin/refunds", handler.ListPending)
	router.Post("/admin/refunds/{id}/complete", handler.Complete)

	router.With(handler.middleware.Internal).Post("/refunds/{id}/settle", handler.Settle)
}

// ListPending lists refunds waiting for settlement.
// @Summary Pending refunds
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.RefundsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/admin/refunds [get]
// @Security BearerAuth
func (handler *Handler) ListPending(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListPendingRefunds")
	defer scope.End()

	refunds, err := handler.service.ListPending(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list pending refunds")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, refunds)
}

// Complete marks a pending refund as paid out by the operator.
// @Summary Complete refund
// @Tags Admin
// @Produce json
// @Param id path string true "Refund ID"
// @Success 200 {object} response.Data[dto.RefundResponse]
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error "Refund is not pending"
// @Router /v1/admin/refunds/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) Complete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteRefund")
	defer scope.End()

	id := chi.URLParam(request, "id")

	if err := validator.ValidateParam("id", id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	refund, err := handler.service.Complete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("refund_id", id).Msg("failed to complete refund")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Refund completed " + refund.ID)

	response.WithJSON(writer, http.StatusOK, refund)
}

// Settle is the payment gateway's settlement callback.
// @Summary Settle refund
// @Description Idempotent. Requires the X-API-Key header.
// @Tags Refund
// @Produce json
// @Param id path string true "Refund ID"
// @Param X-API-Key header string true "Internal API key"
// @Success 200 {object} response.Data[dto.RefundResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/refunds/{id}/settle [post]
func (handler *Handler) Settle(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SettleRefund")
	defer scope.End()

	id := chi.URLParam(request, "id")

	if err := validator.ValidateParam("id", id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	refund, err := handler.service.Settle(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("refund_id", id).Msg("failed to settle refund")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, refund)
}
