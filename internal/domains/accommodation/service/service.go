package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Accommodation=MockAccommodationService

import (
	"context"
	"fmt"
	"visitorpass/config"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/accommodation/model"
	"visitorpass/internal/domains/accommodation/model/dto"
	"visitorpass/internal/domains/accommodation/repository"
	"visitorpass/shared"
	"visitorpass/shared/cache"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/failure"
	"visitorpass/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllAccommodation = "accommodation:gets"
)

var listOrder = gDto.QueryParams{
	SortBy:  model.FieldName,
	SortDir: gDto.SortDirAsc,
}

type Accommodation interface {
	List(ctx context.Context, req dto.ListAccommodationsRequest) (dto.AccommodationsResponse, error)
	Create(ctx context.Context, req dto.CreateAccommodationRequest) (dto.AccommodationResponse, error)
	Toggle(ctx context.Context, id string) (dto.ToggleResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	repo  repository.Accommodation
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Accommodation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Accommodation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListAccommodationsRequest) (res dto.AccommodationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if req.Type != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldAccommodationType,
			Value:    req.Type,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAccommodation, listOrder, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for accommodations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, listOrder, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodations")

		return res, fmt.Errorf("failed to get accommodations: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save accommodations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAccommodationRequest) (res dto.AccommodationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	accommodation := req.ToModel(user)

	if err = s.repo.Insert(ctx, accommodation); err != nil {
		log.Error().Err(err).Msg("failed to create accommodation")

		return res, fmt.Errorf("failed to create accommodation: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllAccommodation)
	}()

	res.FromModel(accommodation)

	return res, nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id string) (res dto.ToggleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.Toggle")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	active, found, err := s.repo.Toggle(ctx, id, user, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to toggle accommodation")

		return res, fmt.Errorf("failed to toggle accommodation: %w", err)
	}

	if !found {
		return res, failure.NotFound("Accommodation not found") // nolint:wrapcheck
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllAccommodation)
	}()

	return dto.ToggleResponse{ID: id, IsActive: active}, nil
}

func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".accommodation.Quote")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.InvalidStayRange // nolint:wrapcheck
	}

	accommodation, err := s.repo.Get(ctx, shared.FilterByID(req.AccommodationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return res, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty || !accommodation.IsActive {
		return res, failure.NotFound("Accommodation not found or inactive") // nolint:wrapcheck
	}

	days, total := accommodation.Price(checkIn, checkOut)

	return dto.QuoteResponse{
		AccommodationID: accommodation.ID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		Days:            days,
		PricePerDay:     accommodation.PricePerDay,
		TotalAmount:     total,
	}, nil
}
