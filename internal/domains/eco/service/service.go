package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Eco=MockEcoService

import (
	"context"
	"fmt"
	"visitorpass/infras/otel"
	bookingModel "visitorpass/internal/domains/booking/model"
	bookingRepo "visitorpass/internal/domains/booking/repository"
	"visitorpass/internal/domains/eco/model"
	"visitorpass/internal/domains/eco/model/dto"
	"visitorpass/internal/domains/eco/repository"
	outboxModel "visitorpass/internal/domains/outbox/model"
	outboxDto "visitorpass/internal/domains/outbox/model/dto"
	outboxService "visitorpass/internal/domains/outbox/service"
	"visitorpass/shared"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/timezone"
	"visitorpass/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Eco interface {
	Declare(ctx context.Context, req dto.DeclareRequest) (dto.DeclarationResponse, error)
	GetMine(ctx context.Context, epassBookingID string) (dto.DeclarationResponse, error)
}

type serviceImpl struct {
	repo        repository.Eco
	bookingRepo bookingRepo.Booking
	outbox      outboxService.Outbox
	transactor  transaction.Transactor
	otel        otel.Otel
}

func New(
	repo repository.Eco,
	bookingRepo bookingRepo.Booking,
	outbox outboxService.Outbox,
	transactor transaction.Transactor,
	otel otel.Otel,
) Eco {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		outbox:      outbox,
		transactor:  transactor,
		otel:        otel,
	}
}

// price turns the requested items into rows, rejecting the whole list on the first unknown type.
func price(declarationID, user string, req []dto.ItemRequest) ([]model.Item, float64, error) {
	now := timezone.Now()
	items := make([]model.Item, 0, len(req))

	var total float64

	for _, r := range req {
		plasticType, fee, ok := model.FeeFor(r.PlasticType)
		if !ok {
			return nil, 0, failure.BadRequestFromString(fmt.Sprintf("Unknown plastic type: %s", r.PlasticType)) // nolint:wrapcheck
		}

		subtotal := fee * float64(r.Quantity)
		total += subtotal

		items = append(items, model.Item{
			ID:               uuid.NewString(),
			EcoDeclarationID: declarationID,
			PlasticType:      plasticType,
			Quantity:         r.Quantity,
			FeePerItem:       fee,
			Subtotal:         subtotal,
			Metadata:         gModel.NewMetadata(user, now),
		})
	}

	return items, total, nil
}

func (s *serviceImpl) Declare(ctx context.Context, req dto.DeclareRequest) (res dto.DeclarationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".eco.Declare")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	epass, err := s.bookingRepo.FindRecord(ctx, bookingModel.ModuleEpass, req.EpassBookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get e-pass booking")

		return res, fmt.Errorf("failed to get e-pass booking: %w", err)
	}

	if !epass.OwnedBy(user) {
		return res, failure.Forbidden("Invalid e-pass booking") // nolint:wrapcheck
	}

	if epass.Status == bookingModel.StatusCancelled {
		return res, failure.BadRequestFromString("E-pass booking is cancelled") // nolint:wrapcheck
	}

	declarationID := uuid.NewString()

	items, total, err := price(declarationID, user, req.Items)
	if err != nil {
		return res, err
	}

	declaration := model.Declaration{
		ID:             declarationID,
		UserID:         user,
		EpassBookingID: epass.ID,
		TotalFee:       total,
		Status:         bookingModel.ModuleEcoFee.InitialStatus(),
		Metadata:       gModel.NewMetadata(user, timezone.Now()),
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.InsertDeclarationTx(ctx, tx, declaration); err != nil {
			if shared.IsUniqueViolation(err) {
				return failure.Conflict("Eco fee already declared for this e-pass") // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to create eco declaration")

			return fmt.Errorf("failed to create eco declaration: %w", err)
		}

		if err := s.repo.InsertItemsTx(ctx, tx, items); err != nil {
			log.Error().Err(err).Msg("failed to create eco declaration items")

			return fmt.Errorf("failed to create eco declaration items: %w", err)
		}

		return s.outbox.RecordTx(ctx, tx, outboxDto.Message{ //nolint:wrapcheck
			AggregateType: outboxModel.AggregateBooking,
			AggregateID:   declaration.ID,
			EventType:     outboxModel.EventEcoDeclared,
			Payload: dto.DeclaredEvent{
				DeclarationID:  declaration.ID,
				EpassBookingID: declaration.EpassBookingID,
				UserID:         user,
				TotalFee:       total,
			},
		})
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(declaration, items)

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, epassBookingID string) (res dto.DeclarationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".eco.GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	declaration, err := s.repo.GetByEpass(ctx, epassBookingID, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to get eco declaration")

		return res, fmt.Errorf("failed to get eco declaration: %w", err)
	}

	if declaration.ID == constant.Empty {
		return res, failure.NotFound("Eco declaration not found") // nolint:wrapcheck
	}

	items, err := s.repo.GetItems(ctx, declaration.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get eco declaration items")

		return res, fmt.Errorf("failed to get eco declaration items: %w", err)
	}

	res.FromModel(declaration, items)

	return res, nil
}
