package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"
	"visitorpass/config"
	"visitorpass/infras/otel"
	accommodationModel "visitorpass/internal/domains/accommodation/model"
	accommodationRepo "visitorpass/internal/domains/accommodation/repository"
	"visitorpass/internal/domains/booking/model"
	"visitorpass/internal/domains/booking/model/dto"
	"visitorpass/internal/domains/booking/repository"
	outboxModel "visitorpass/internal/domains/outbox/model"
	outboxDto "visitorpass/internal/domains/outbox/model/dto"
	outboxService "visitorpass/internal/domains/outbox/service"
	slotModel "visitorpass/internal/domains/slot/model"
	slotRepo "visitorpass/internal/domains/slot/repository"
	"visitorpass/shared"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/qrcode"
	"visitorpass/shared/timezone"
	"visitorpass/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	BookEpass(ctx context.Context, req dto.BookEpassRequest) (dto.EpassBookingResponse, error)
	BookFood(ctx context.Context, req dto.BookFoodRequest) (dto.FoodBookingResponse, error)
	BookAccommodation(ctx context.Context, req dto.BookAccommodationRequest) (dto.AccommodationBookingResponse, error)
	ListMyEpass(ctx context.Context) (dto.EpassBookingsResponse, error)
	ListMyFood(ctx context.Context) (dto.FoodBookingsResponse, error)
	ListMyAccommodation(ctx context.Context) (dto.AccommodationBookingsResponse, error)
}

type serviceImpl struct {
	repo              repository.Booking
	slotRepo          slotRepo.Slot
	accommodationRepo accommodationRepo.Accommodation
	outbox            outboxService.Outbox
	transactor        transaction.Transactor
	cfg               *config.Config
	otel              otel.Otel
}

func New(
	repo repository.Booking,
	slotRepo slotRepo.Slot,
	accommodationRepo accommodationRepo.Accommodation,
	outbox outboxService.Outbox,
	transactor transaction.Transactor,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:              repo,
		slotRepo:          slotRepo,
		accommodationRepo: accommodationRepo,
		outbox:            outbox,
		transactor:        transactor,
		cfg:               cfg,
		otel:              otel,
	}
}

func createdEvent(module model.Module, id, user, qr string) outboxDto.Message {
	return outboxDto.Message{
		AggregateType: outboxModel.AggregateBooking,
		AggregateID:   id,
		EventType:     outboxModel.EventBookingCreated,
		Payload: dto.CreatedEvent{
			BookingID: id,
			Module:    module,
			UserID:    user,
			QRCode:    qr,
		},
	}
}

// reserve maps the store's capacity errors to a conflict.
func (s *serviceImpl) reserve(ctx context.Context, tx *sqlx.Tx, kind slotModel.Kind, slotID string) error {
	err := s.slotRepo.ReserveTx(ctx, tx, kind, slotID)
	if err == nil {
		return nil
	}

	if shared.IsCapacityExceeded(err) {
		return failure.Conflict("Slot is fully booked") // nolint:wrapcheck
	}

	log.Error().Err(err).Str("slotID", slotID).Msg("failed to reserve slot")

	return fmt.Errorf("failed to reserve slot: %w", err)
}

func (s *serviceImpl) BookEpass(ctx context.Context, req dto.BookEpassRequest) (res dto.EpassBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.BookEpass")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slot, err := s.slotRepo.GetEntry(ctx, shared.FilterByID(req.SlotID, slotModel.FieldID, slotModel.TableEntry))
	if err != nil {
		log.Error().Err(err).Msg("failed to get entry slot")

		return res, fmt.Errorf("failed to get entry slot: %w", err)
	}

	if slot.ID == constant.Empty || !slot.IsActive {
		return res, failure.NotFound("Slot not found or inactive") // nolint:wrapcheck
	}

	booking := model.EpassBooking{
		ID:        uuid.NewString(),
		UserID:    user,
		SlotID:    slot.ID,
		VisitDate: slot.SlotDate,
		Status:    model.ModuleEpass.InitialStatus(),
		QRCode:    qrcode.Generate(string(model.ModuleEpass)),
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.reserve(ctx, tx, slotModel.KindEntry, slot.ID); err != nil {
			return err
		}

		if err := s.repo.InsertEpassTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create e-pass booking")

			return fmt.Errorf("failed to create e-pass booking: %w", err)
		}

		return s.outbox.RecordTx(ctx, tx, createdEvent(model.ModuleEpass, booking.ID, user, booking.QRCode)) //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) BookFood(ctx context.Context, req dto.BookFoodRequest) (res dto.FoodBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.BookFood")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	slot, err := s.slotRepo.GetFood(ctx, shared.FilterByID(req.FoodSlotID, slotModel.FieldID, slotModel.TableFood))
	if err != nil {
		log.Error().Err(err).Msg("failed to get food slot")

		return res, fmt.Errorf("failed to get food slot: %w", err)
	}

	if slot.ID == constant.Empty || !slot.IsActive {
		return res, failure.NotFound("Food slot not found or inactive") // nolint:wrapcheck
	}

	if req.EpassBookingID != nil {
		epass, err := s.repo.FindRecord(ctx, model.ModuleEpass, *req.EpassBookingID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get e-pass booking")

			return res, fmt.Errorf("failed to get e-pass booking: %w", err)
		}

		if !epass.OwnedBy(user) {
			return res, failure.Forbidden("Invalid e-pass booking") // nolint:wrapcheck
		}

		if epass.Status == model.StatusCancelled {
			return res, failure.BadRequestFromString("E-pass booking is cancelled") // nolint:wrapcheck
		}
	}

	booking := model.FoodBooking{
		ID:             uuid.NewString(),
		UserID:         user,
		FoodSlotID:     slot.ID,
		EpassBookingID: req.EpassBookingID,
		Status:         model.ModuleFood.InitialStatus(),
		QRCode:         qrcode.Generate(string(model.ModuleFood)),
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.reserve(ctx, tx, slotModel.KindFood, slot.ID); err != nil {
			return err
		}

		if err := s.repo.InsertFoodTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create food booking")

			return fmt.Errorf("failed to create food booking: %w", err)
		}

		return s.outbox.RecordTx(ctx, tx, createdEvent(model.ModuleFood, booking.ID, user, booking.QRCode)) //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)
	res.SlotDate = slot.SlotDate.Format(constant.DayFormat)
	res.StartTime = slot.StartTime
	res.EndTime = slot.EndTime
	res.MealType = slot.MealType

	return res, nil
}

func (s *serviceImpl) BookAccommodation(ctx context.Context, req dto.BookAccommodationRequest) (res dto.AccommodationBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.BookAccommodation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.InvalidStayRange // nolint:wrapcheck
	}

	accommodation, err := s.accommodationRepo.Get(ctx, shared.FilterByID(req.AccommodationID, accommodationModel.FieldID, accommodationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation")

		return res, fmt.Errorf("failed to get accommodation: %w", err)
	}

	if accommodation.ID == constant.Empty || !accommodation.IsActive {
		return res, failure.NotFound("Accommodation not found or inactive") // nolint:wrapcheck
	}

	_, total := accommodation.Price(checkIn, checkOut)

	booking := model.AccommodationBooking{
		ID:              uuid.NewString(),
		UserID:          user,
		AccommodationID: accommodation.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		CheckInDeadline: s.checkInDeadline(checkIn),
		TotalAmount:     total,
		Status:          model.ModuleAccommodation.InitialStatus(),
		QRCode:          qrcode.Generate(string(model.ModuleAccommodation)),
		Metadata:        gModel.NewMetadata(user, timezone.Now()),
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.InsertAccommodationTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create accommodation booking")

			return fmt.Errorf("failed to create accommodation booking: %w", err)
		}

		return s.outbox.RecordTx(ctx, tx, createdEvent(model.ModuleAccommodation, booking.ID, user, booking.QRCode)) //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(booking)
	res.Name = accommodation.Name
	res.AccommodationType = accommodation.AccommodationType

	return res, nil
}

// checkInDeadline is the check-in day at the configured hour, local to the application.
func (s *serviceImpl) checkInDeadline(checkIn time.Time) time.Time {
	return timezone.At(checkIn, s.cfg.Booking.CheckInDeadlineHour)
}

func (s *serviceImpl) ListMyEpass(ctx context.Context) (res dto.EpassBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMyEpass")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	details, err := s.repo.ListEpass(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to get e-pass bookings")

		return res, fmt.Errorf("failed to get e-pass bookings: %w", err)
	}

	res.FromDetails(details)

	return res, nil
}

func (s *serviceImpl) ListMyFood(ctx context.Context) (res dto.FoodBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMyFood")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	details, err := s.repo.ListFood(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food bookings")

		return res, fmt.Errorf("failed to get food bookings: %w", err)
	}

	res.FromDetails(details)

	return res, nil
}

func (s *serviceImpl) ListMyAccommodation(ctx context.Context) (res dto.AccommodationBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMyAccommodation")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	details, err := s.repo.ListAccommodation(ctx, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accommodation bookings")

		return res, fmt.Errorf("failed to get accommodation bookings: %w", err)
	}

	res.FromDetails(details)

	return res, nil
}
