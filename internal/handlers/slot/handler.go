package slot

import (
	"net/http"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/slot/model"
	"visitorpass/internal/domains/slot/model/dto"
	"visitorpass/internal/domains/slot/service"
	"visitorpass/shared/constant"
	"visitorpass/shared/validator"
	"visitorpass/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryDate     = "date"
	queryMealType = "meal_type"
)

type Handler struct {
	service service.Slot
	otel    otel.Otel
}

func New(service service.Slot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/entry-slots", handler.ListEntrySlots)
	router.Get("/food-slots", handler.ListFoodSlots)

	router.Route("/admin/entry-slots", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEntrySlot)
		routerGroup.Patch("/{id}/toggle", handler.ToggleEntrySlot)
	})

	router.Route("/admin/food-slots", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFoodSlot)
		routerGroup.Patch("/{id}/toggle", handler.ToggleFoodSlot)
	})
}

// ListEntrySlots lists active entry slots.
// @Summary List entry slots
// @Description List active entry slots, optionally for one date.
// @Tags Slot
// @Produce json
// @Param date query string false "Slot date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.EntrySlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/entry-slots [get]
func (handler *Handler) ListEntrySlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListEntrySlots")
	defer scope.End()

	req := dto.ListEntrySlotsRequest{
		Date: request.URL.Query().Get(queryDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	slots, err := handler.service.ListEntry(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list entry slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, slots)
}

// ListFoodSlots lists active food slots.
// @Summary List food slots
// @Description List active food slots, optionally for one date and meal type.
// @Tags Slot
// @Produce json
// @Param date query string false "Slot date (YYYY-MM-DD)"
// @Param meal_type query string false "FREE or PAID"
// @Success 200 {object} response.Data[dto.FoodSlotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/food-slots [get]
func (handler *Handler) ListFoodSlots(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListFoodSlots")
	defer scope.End()

	req := dto.ListFoodSlotsRequest{
		Date:     request.URL.Query().Get(queryDate),
		MealType: request.URL.Query().Get(queryMealType),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	slots, err := handler.service.ListFood(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list food slots")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, slots)
}

// CreateEntrySlot creates an entry slot.
// @Summary Create entry slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateEntrySlotRequest true "Entry slot"
// @Success 201 {object} response.Data[dto.EntrySlotResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/entry-slots [post]
// @Security BearerAuth
func (handler *Handler) CreateEntrySlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEntrySlot")
	defer scope.End()

	req := dto.CreateEntrySlotRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	slot, err := handler.service.CreateEntry(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create entry slot")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Entry slot created " + slot.ID)

	response.WithJSON(writer, http.StatusCreated, slot)
}

// CreateFoodSlot creates a food slot.
// @Summary Create food slot
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateFoodSlotRequest true "Food slot"
// @Success 201 {object} response.Data[dto.FoodSlotResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admin/food-slots [post]
// @Security BearerAuth
func (handler *Handler) CreateFoodSlot(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFoodSlot")
	defer scope.End()

	req := dto.CreateFoodSlotRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	slot, err := handler.service.CreateFood(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create food slot")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Food slot created " + slot.ID)

	response.WithJSON(writer, http.StatusCreated, slot)
}

// ToggleEntrySlot flips the active flag of an entry slot.
// @Summary Toggle entry slot
// @Tags Admin
// @Produce json
// @Param id path string true "Entry slot ID"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/entry-slots/{id}/toggle [patch]
// @Security BearerAuth
func (handler *Handler) ToggleEntrySlot(writer http.ResponseWriter, request *http.Request) {
	handler.toggle(writer, request, model.KindEntry, "ToggleEntrySlot")
}

// ToggleFoodSlot flips the active flag of a food slot.
// @Summary Toggle food slot
// @Tags Admin
// @Produce json
// @Param id path string true "Food slot ID"
// @Success 200 {object} response.Data[dto.ToggleResponse]
// @Failure 404 {object} response.Error
// @Router /v1/admin/food-slots/{id}/toggle [patch]
// @Security BearerAuth
func (handler *Handler) ToggleFoodSlot(writer http.ResponseWriter, request *http.Request) {
	handler.toggle(writer, request, model.KindFood, "ToggleFoodSlot")
}

func (handler *Handler) toggle(writer http.ResponseWriter, request *http.Request, kind model.Kind, op string) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+op)
	defer scope.End()

	id := chi.URLParam(request, "id")

	if err := validator.ValidateParam("id", id, "required,uuid"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Toggle(ctx, kind, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to toggle slot")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
