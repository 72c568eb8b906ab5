package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Refund=MockRefundService

import (
	"context"
	"fmt"
	"time"
	"visitorpass/infras/otel"
	outboxModel "visitorpass/internal/domains/outbox/model"
	outboxDto "visitorpass/internal/domains/outbox/model/dto"
	outboxService "visitorpass/internal/domains/outbox/service"
	paymentRepo "visitorpass/internal/domains/payment/repository"
	"visitorpass/internal/domains/refund/model"
	"visitorpass/internal/domains/refund/model/dto"
	"visitorpass/internal/domains/refund/repository"
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

type Refund interface {
	// CreateForBookingTx opens a PENDING refund when the booking has a settled payment.
	// It returns nil when there is nothing to refund.
	CreateForBookingTx(ctx context.Context, tx *sqlx.Tx, module, bookingID, user string) (*model.Refund, error)
	ListPending(ctx context.Context) (dto.RefundsResponse, error)
	Complete(ctx context.Context, id string) (dto.RefundResponse, error)
	Settle(ctx context.Context, id string) (dto.RefundResponse, error)
	SettleDue(ctx context.Context, delay time.Duration) (int, error)
}

type serviceImpl struct {
	repo        repository.Refund
	paymentRepo paymentRepo.Payment
	outbox      outboxService.Outbox
	transactor  transaction.Transactor
	otel        otel.Otel
}

func New(
	repo repository.Refund,
	paymentRepo paymentRepo.Payment,
	outbox outboxService.Outbox,
	transactor transaction.Transactor,
	otel otel.Otel,
) Refund {
	return &serviceImpl{
		repo:        repo,
		paymentRepo: paymentRepo,
		outbox:      outbox,
		transactor:  transactor,
		otel:        otel,
	}
}

func event(eventType string, refund model.Refund) outboxDto.Message {
	return outboxDto.Message{
		AggregateType: outboxModel.AggregateRefund,
		AggregateID:   refund.ID,
		EventType:     eventType,
		Payload:       dto.NewEvent(refund),
	}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// transitionFilter matches id only while the refund is still in from.
func transitionFilter(id, from string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "from_status", Field: model.FieldRefundStatus, Value: from, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	}
}

func transition(to, user string, at time.Time) map[string]any {
	return shared.Changes(map[string]any{
		model.FieldRefundStatus: to,
		model.FieldProcessedAt:  at,
	}, user, at)
}

func (s *serviceImpl) CreateForBookingTx(ctx context.Context, tx *sqlx.Tx, module, bookingID, user string) (res *model.Refund, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".refund.CreateForBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	payment, err := s.paymentRepo.GetForUpdateTx(ctx, tx, paymentRepo.SuccessfulFor(module, bookingID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return nil, nil
	}

	refund := model.Refund{
		ID:           uuid.NewString(),
		UserID:       payment.UserID,
		PaymentID:    payment.ID,
		BookingID:    bookingID,
		Module:       module,
		Amount:       payment.Amount,
		RefundStatus: model.StatusPending,
		Metadata:     gModel.NewMetadata(user, timezone.Now()),
	}

	if err := s.repo.InsertTx(ctx, tx, refund); err != nil {
		if shared.IsUniqueViolation(err) {
			return nil, failure.Conflict("Refund already exists for this payment") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create refund")

		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	if err := s.outbox.RecordTx(ctx, tx, event(outboxModel.EventRefundCreated, refund)); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &refund, nil
}

func (s *serviceImpl) ListPending(ctx context.Context) (res dto.RefundsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".refund.ListPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	refunds, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}, repository.ByStatus(model.StatusPending))
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending refunds")

		return res, fmt.Errorf("failed to get pending refunds: %w", err)
	}

	res.FromModels(refunds)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.RefundResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".refund.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	var refund model.Refund

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateAffectedTx(ctx, tx, transition(model.StatusCompleted, user, now), transitionFilter(id, model.StatusPending))
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to complete refund")

			return fmt.Errorf("failed to complete refund: %w", err)
		}

		if affected == 0 {
			return failure.Unprocessable("Refund not found or not pending") // nolint:wrapcheck
		}

		refund, err = s.repo.GetForUpdateTx(ctx, tx, byID(id))
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to get refund")

			return fmt.Errorf("failed to get refund: %w", err)
		}

		return s.outbox.RecordTx(ctx, tx, event(outboxModel.EventRefundCompleted, refund)) //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(refund)

	return res, nil
}

func (s *serviceImpl) Settle(ctx context.Context, id string) (res dto.RefundResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".refund.Settle")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	var refund model.Refund

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		refund, err = s.repo.GetForUpdateTx(ctx, tx, byID(id))
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to get refund")

			return fmt.Errorf("failed to get refund: %w", err)
		}

		switch refund.RefundStatus {
		case constant.Empty:
			return failure.NotFound("Refund not found") // nolint:wrapcheck
		case model.StatusSuccess:
			return nil
		case model.StatusCompleted:
			return failure.Unprocessable("Refund already completed manually") // nolint:wrapcheck
		}

		affected, err := s.repo.UpdateAffectedTx(ctx, tx, transition(model.StatusSuccess, constant.ContextSystem, now), transitionFilter(id, model.StatusPending))
		if err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to settle refund")

			return fmt.Errorf("failed to settle refund: %w", err)
		}

		if affected == 0 {
			return failure.RefundNotPending // nolint:wrapcheck
		}

		refund.RefundStatus = model.StatusSuccess
		refund.ProcessedAt = &now

		return s.outbox.RecordTx(ctx, tx, event(outboxModel.EventRefundSettled, refund)) //nolint:wrapcheck
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(refund)

	return res, nil
}

func (s *serviceImpl) SettleDue(ctx context.Context, delay time.Duration) (settled int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".refund.SettleDue")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		refunds, err := s.repo.SettleDueTx(ctx, tx, now.Add(-delay), now)
		if err != nil {
			return err //nolint:wrapcheck
		}

		for _, refund := range refunds {
			if err := s.outbox.RecordTx(ctx, tx, event(outboxModel.EventRefundSettled, refund)); err != nil {
				return err //nolint:wrapcheck
			}
		}

		settled = len(refunds)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to settle due refunds")

		return 0, err //nolint:wrapcheck
	}

	if settled > 0 {
		log.Info().Int("count", settled).Msg("settled due refunds")
	}

	return settled, nil
}
