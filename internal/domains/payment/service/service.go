package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payment=MockPaymentService

import (
	"context"
	"fmt"
	"visitorpass/infras/otel"
	bookingModel "visitorpass/internal/domains/booking/model"
	bookingRepo "visitorpass/internal/domains/booking/repository"
	outboxModel "visitorpass/internal/domains/outbox/model"
	outboxDto "visitorpass/internal/domains/outbox/model/dto"
	outboxService "visitorpass/internal/domains/outbox/service"
	"visitorpass/internal/domains/payment/model"
	"visitorpass/internal/domains/payment/model/dto"
	"visitorpass/internal/domains/payment/repository"
	refundModel "visitorpass/internal/domains/refund/model"
	refundRepo "visitorpass/internal/domains/refund/repository"
	slotModel "visitorpass/internal/domains/slot/model"
	"visitorpass/shared"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/failure"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/timezone"
	"visitorpass/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Payment interface {
	Confirm(ctx context.Context, req dto.ConfirmRequest) (dto.PaymentResponse, error)
	ListMine(ctx context.Context) (dto.PaymentsResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	refundRepo  refundRepo.Refund
	bookingRepo bookingRepo.Booking
	outbox      outboxService.Outbox
	transactor  transaction.Transactor
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	refundRepo refundRepo.Refund,
	bookingRepo bookingRepo.Booking,
	outbox outboxService.Outbox,
	transactor transaction.Transactor,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		refundRepo:  refundRepo,
		bookingRepo: bookingRepo,
		outbox:      outbox,
		transactor:  transactor,
		otel:        otel,
	}
}

// checkPayable validates a locked booking against the payment rules.
func checkPayable(record bookingModel.Record, user string) error {
	if !record.OwnedBy(user) {
		return failure.BookingNotFound // nolint:wrapcheck
	}

	if record.Module == bookingModel.ModuleFood && record.MealType != nil && *record.MealType == slotModel.MealTypeFree {
		return failure.BadRequestFromString("Free meals do not require payment") // nolint:wrapcheck
	}

	if record.Status == bookingModel.StatusConfirmed {
		return failure.AlreadyPaid // nolint:wrapcheck
	}

	for _, status := range bookingModel.PayableStatuses() {
		if record.Status == status {
			return nil
		}
	}

	return failure.NotPayable // nolint:wrapcheck
}

func (s *serviceImpl) Confirm(ctx context.Context, req dto.ConfirmRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	module, err := bookingModel.ParseModule(req.Module)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()
	payment := model.Payment{
		ID:            uuid.NewString(),
		UserID:        user,
		Module:        string(module),
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentStatus: model.StatusSuccess,
		PaymentMethod: model.MethodCard,
		Gateway:       model.GatewayMock,
		Metadata:      gModel.NewMetadata(user, now),
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		record, err := s.bookingRepo.FindRecordTx(ctx, tx, module, req.BookingID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", err)
		}

		if err := checkPayable(record, user); err != nil {
			return err
		}

		if err := s.repo.InsertTx(ctx, tx, payment); err != nil {
			if shared.IsUniqueViolation(err) {
				return failure.AlreadyPaid // nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to create payment")

			return fmt.Errorf("failed to create payment: %w", err)
		}

		affected, err := s.bookingRepo.TransitionTx(ctx, tx, module, record.ID, bookingModel.PayableStatuses(), bookingModel.StatusConfirmed, user, now)
		if err != nil {
			log.Error().Err(err).Msg("failed to confirm booking")

			return fmt.Errorf("failed to confirm booking: %w", err)
		}

		if affected == 0 {
			return failure.NotPayable // nolint:wrapcheck
		}

		return s.outbox.RecordTx(ctx, tx, outboxDto.Message{ //nolint:wrapcheck
			AggregateType: outboxModel.AggregatePayment,
			AggregateID:   payment.ID,
			EventType:     outboxModel.EventPaymentConfirmed,
			Payload: dto.ConfirmedEvent{
				PaymentID: payment.ID,
				Module:    payment.Module,
				BookingID: payment.BookingID,
				UserID:    user,
				Amount:    payment.Amount,
			},
		})
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context) (res dto.PaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	payments, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: user, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	refunds, err := s.refundRepo.GetAll(ctx, params, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: refundModel.FieldUserID, Value: user, Operator: gDto.FilterOperatorEq, Table: refundModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get refunds")

		return res, fmt.Errorf("failed to get refunds: %w", err)
	}

	res.FromModels(payments, refunds)

	return res, nil
}
