package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Slot=MockSlotService

import (
	"context"
	"fmt"
	"visitorpass/config"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/slot/model"
	"visitorpass/internal/domains/slot/model/dto"
	"visitorpass/internal/domains/slot/repository"
	"visitorpass/shared"
	"visitorpass/shared/cache"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/failure"
	"visitorpass/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllEntrySlot = "slot:entry:gets"
	cacheGetAllFoodSlot  = "slot:food:gets"
)

// listOrder sorts by day first, then by the start of the window.
var listOrder = gDto.QueryParams{
	SortBy:  model.FieldSlotDate + " " + gDto.SortDirAsc + ", " + model.FieldStartTime,
	SortDir: gDto.SortDirAsc,
}

type Slot interface {
	ListEntry(ctx context.Context, req dto.ListEntrySlotsRequest) (dto.EntrySlotsResponse, error)
	ListFood(ctx context.Context, req dto.ListFoodSlotsRequest) (dto.FoodSlotsResponse, error)
	CreateEntry(ctx context.Context, req dto.CreateEntrySlotRequest) (dto.EntrySlotResponse, error)
	CreateFood(ctx context.Context, req dto.CreateFoodSlotRequest) (dto.FoodSlotResponse, error)
	Toggle(ctx context.Context, kind model.Kind, id string) (dto.ToggleResponse, error)
}

type serviceImpl struct {
	repo  repository.Slot
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Slot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Slot {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func activeFilter(table string, extra ...gDto.Filter) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldIsActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    table,
		},
	}

	for _, f := range extra {
		if f.Value == constant.Empty {
			continue
		}

		filters = append(filters, f)
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

func (s *serviceImpl) ListEntry(ctx context.Context, req dto.ListEntrySlotsRequest) (res dto.EntrySlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.ListEntry")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := activeFilter(model.TableEntry, gDto.Filter{
		Field:    model.FieldSlotDate,
		Value:    req.Date,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableEntry,
	})

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEntrySlot, listOrder, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for entry slots")

		return res, nil
	}

	models, err := s.repo.GetAllEntry(ctx, listOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get entry slots")

		return res, fmt.Errorf("failed to get entry slots: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save entry slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListFood(ctx context.Context, req dto.ListFoodSlotsRequest) (res dto.FoodSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.ListFood")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := activeFilter(model.TableFood,
		gDto.Filter{
			Field:    model.FieldSlotDate,
			Value:    req.Date,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableFood,
		},
		gDto.Filter{
			Field:    model.FieldMealType,
			Value:    req.MealType,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableFood,
		},
	)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFoodSlot, listOrder, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for food slots")

		return res, nil
	}

	models, err := s.repo.GetAllFood(ctx, listOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food slots")

		return res, fmt.Errorf("failed to get food slots: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateEntry(ctx context.Context, req dto.CreateEntrySlotRequest) (res dto.EntrySlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.CreateEntry")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.EndTime <= req.StartTime {
		return res, failure.InvalidSlotWindow // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slot, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.InsertEntry(ctx, slot); err != nil {
		log.Error().Err(err).Msg("failed to create entry slot")

		return res, fmt.Errorf("failed to create entry slot: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllEntrySlot)
	}()

	res.FromModel(slot)

	return res, nil
}

func (s *serviceImpl) CreateFood(ctx context.Context, req dto.CreateFoodSlotRequest) (res dto.FoodSlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.CreateFood")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.EndTime <= req.StartTime {
		return res, failure.InvalidSlotWindow // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slot, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.InsertFood(ctx, slot); err != nil {
		log.Error().Err(err).Msg("failed to create food slot")

		return res, fmt.Errorf("failed to create food slot: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllFoodSlot)
	}()

	res.FromModel(slot)

	return res, nil
}

func (s *serviceImpl) Toggle(ctx context.Context, kind model.Kind, id string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	active, found, err := s.repo.Toggle(ctx, kind, id, user, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to toggle slot")

		return res, fmt.Errorf("failed to toggle slot: %w", err)
	}

	if !found {
		return res, failure.NotFound("Slot not found") // nolint:wrapcheck
	}

	prefix := cacheGetAllEntrySlot
	if kind == model.KindFood {
		prefix = cacheGetAllFoodSlot
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, prefix)
	}()

	return dto.ToggleResponse{ID: id, IsActive: active}, nil
}
