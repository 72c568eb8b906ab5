package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Cancellation=MockCancellationService

import (
	"context"
	"fmt"
	"slices"
	"visitorpass/infras/otel"
	bookingModel "visitorpass/internal/domains/booking/model"
	bookingRepo "visitorpass/internal/domains/booking/repository"
	"visitorpass/internal/domains/cancellation/model"
	"visitorpass/internal/domains/cancellation/model/dto"
	"visitorpass/internal/domains/cancellation/repository"
	outboxModel "visitorpass/internal/domains/outbox/model"
	outboxDto "visitorpass/internal/domains/outbox/model/dto"
	outboxService "visitorpass/internal/domains/outbox/service"
	refundDto "visitorpass/internal/domains/refund/model/dto"
	refundService "visitorpass/internal/domains/refund/service"
	slotRepo "visitorpass/internal/domains/slot/repository"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/timezone"
	"visitorpass/shared/transaction"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const releaseSavepoint = "release_slot"

type Cancellation interface {
	Cancel(ctx context.Context, req dto.CancelRequest) (dto.CancelResponse, error)
	CancelModule(ctx context.Context, req dto.ModuleCancelRequest) (dto.CancelResponse, error)
	AdminCancel(ctx context.Context, req dto.AdminCancelRequest) (dto.CancelResponse, error)
	ListReasons(ctx context.Context) (dto.ReasonsResponse, error)
}

type serviceImpl struct {
	repo        repository.Cancellation
	bookingRepo bookingRepo.Booking
	slotRepo    slotRepo.Slot
	refund      refundService.Refund
	outbox      outboxService.Outbox
	transactor  transaction.Transactor
	otel        otel.Otel
}

func New(
	repo repository.Cancellation,
	bookingRepo bookingRepo.Booking,
	slotRepo slotRepo.Slot,
	refund refundService.Refund,
	outbox outboxService.Outbox,
	transactor transaction.Transactor,
	otel otel.Otel,
) Cancellation {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		refund:      refund,
		outbox:      outbox,
		transactor:  transactor,
		otel:        otel,
	}
}

// actor describes who is cancelling and what they are allowed to cancel.
type actor struct {
	user        string
	initiatedBy string
	statuses    []string
	anyOwner    bool
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelRequest) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cancellation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.cancel(ctx, req.Module, req.BookingID, &req.ReasonCode, actor{
		user:        user,
		initiatedBy: model.InitiatedByUser,
		statuses:    bookingModel.CancellableStatuses(),
	})
}

func (s *serviceImpl) CancelModule(ctx context.Context, req dto.ModuleCancelRequest) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cancellation.CancelModule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.cancel(ctx, req.Module, req.BookingID, nil, actor{
		user:        user,
		initiatedBy: model.InitiatedByUser,
		statuses:    bookingModel.CancellableStatuses(),
	})
}

func (s *serviceImpl) AdminCancel(ctx context.Context, req dto.AdminCancelRequest) (res dto.CancelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cancellation.AdminCancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.cancel(ctx, req.Module, req.BookingID, &req.ReasonCode, actor{
		user:        user,
		initiatedBy: model.InitiatedByAdmin,
		statuses:    bookingModel.AdminCancellableStatuses(),
		anyOwner:    true,
	})
}

// resolveReason returns nil only when no code was supplied at all.
func (s *serviceImpl) resolveReason(ctx context.Context, code *string, initiatedBy string) (*model.Reason, error) {
	if code == nil {
		return nil, nil
	}

	if *code == constant.Empty {
		return nil, failure.InvalidCancellationReason // nolint:wrapcheck
	}

	reason, err := s.repo.FindReason(ctx, *code)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cancellation reason")

		return nil, fmt.Errorf("failed to get cancellation reason: %w", err)
	}

	if reason.ID == constant.Empty || reason.InitiatedBy != initiatedBy {
		return nil, failure.InvalidCancellationReason // nolint:wrapcheck
	}

	return &reason, nil
}

// release gives the slot back inside a savepoint. A failure is logged and never fails the cancellation.
func (s *serviceImpl) release(ctx context.Context, tx *sqlx.Tx, module bookingModel.Module, slotID *string) {
	kind := module.SlotKind()
	if kind == "" || slotID == nil {
		return
	}

	err := s.transactor.Savepoint(ctx, tx, releaseSavepoint, func() error {
		return s.slotRepo.ReleaseTx(ctx, tx, kind, *slotID)
	})
	if err != nil {
		log.Error().Err(err).Str("slotID", *slotID).Str("module", string(module)).Msg("failed to release slot")
	}
}

func (s *serviceImpl) cancel(ctx context.Context, rawModule, bookingID string, reasonCode *string, by actor) (res dto.CancelResponse, err error) {
	module, err := bookingModel.ParseModule(rawModule)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		record, err := s.bookingRepo.FindRecordTx(ctx, tx, module, bookingID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return fmt.Errorf("failed to get booking: %w", err)
		}

		if !record.Exists() || (!by.anyOwner && !record.OwnedBy(by.user)) {
			return failure.BookingNotFound // nolint:wrapcheck
		}

		if !slices.Contains(by.statuses, record.Status) {
			return failure.NotCancellable // nolint:wrapcheck
		}

		reason, err := s.resolveReason(ctx, reasonCode, by.initiatedBy)
		if err != nil {
			return err
		}

		audit := model.Cancellation{
			ID:          uuid.NewString(),
			UserID:      record.UserID,
			Module:      string(module),
			BookingID:   record.ID,
			CancelledBy: by.user,
			Metadata:    gModel.NewMetadata(by.user, now),
		}

		if reason != nil {
			audit.CancellationReasonID = &reason.ID
		}

		if err := s.repo.InsertTx(ctx, tx, audit); err != nil {
			log.Error().Err(err).Msg("failed to create cancellation")

			return fmt.Errorf("failed to create cancellation: %w", err)
		}

		affected, err := s.bookingRepo.TransitionTx(ctx, tx, module, record.ID, by.statuses, bookingModel.StatusCancelled, by.user, now)
		if err != nil {
			log.Error().Err(err).Msg("failed to cancel booking")

			return fmt.Errorf("failed to cancel booking: %w", err)
		}

		if affected == 0 {
			return failure.NotCancellable // nolint:wrapcheck
		}

		s.release(ctx, tx, module, record.SlotID)

		refund, err := s.refund.CreateForBookingTx(ctx, tx, string(module), record.ID, by.user)
		if err != nil {
			return err //nolint:wrapcheck
		}

		event := dto.CancelledEvent{
			BookingID:  record.ID,
			Module:     string(module),
			UserID:     record.UserID,
			ReasonCode: reasonCode,
		}

		if refund != nil {
			var refundRes refundDto.RefundResponse

			refundRes.FromModel(*refund)

			res.Refund = &refundRes
			event.RefundID = &refund.ID
		}

		return s.outbox.RecordTx(ctx, tx, outboxDto.Message{ //nolint:wrapcheck
			AggregateType: outboxModel.AggregateBooking,
			AggregateID:   record.ID,
			EventType:     outboxModel.EventBookingCancelled,
			Payload:       event,
		})
	})
	if err != nil {
		return dto.CancelResponse{}, err //nolint:wrapcheck
	}

	res.BookingID = bookingID
	res.Module = string(module)
	res.Status = bookingModel.StatusCancelled

	return res, nil
}

func (s *serviceImpl) ListReasons(ctx context.Context) (res dto.ReasonsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".cancellation.ListReasons")
	defer scope.End()
	defer scope.TraceIfError(err)

	reasons, err := s.repo.ListReasons(ctx, model.InitiatedByUser)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cancellation reasons")

		return res, fmt.Errorf("failed to get cancellation reasons: %w", err)
	}

	res.FromModels(reasons)

	return res, nil
}
