package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Outbox=MockOutboxService

import (
	"context"
	"fmt"
	"visitorpass/infras/broker"
	"visitorpass/infras/otel"
	"visitorpass/internal/domains/outbox/model/dto"
	"visitorpass/internal/domains/outbox/repository"
	"visitorpass/shared/constant"
	"visitorpass/shared/timezone"
	"visitorpass/shared/transaction"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Outbox interface {
	// RecordTx stores msg in the same transaction as the business write that raised it.
	RecordTx(ctx context.Context, tx *sqlx.Tx, msg dto.Message) error
	// Relay publishes up to batch pending events and reports how many left the service.
	Relay(ctx context.Context, batch int) (int, error)
}

type serviceImpl struct {
	repo       repository.Outbox
	transactor transaction.Transactor
	publisher  broker.Publisher
	otel       otel.Otel
}

func New(repo repository.Outbox, transactor transaction.Transactor, publisher broker.Publisher, otel otel.Otel) Outbox {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		publisher:  publisher,
		otel:       otel,
	}
}

func (s *serviceImpl) RecordTx(ctx context.Context, tx *sqlx.Tx, msg dto.Message) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".outbox.RecordTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok {
		user = constant.ContextSystem
	}

	event, err := msg.ToModel(user)
	if err != nil {
		log.Error().Err(err).Str("eventType", msg.EventType).Msg("failed to encode event payload")

		return fmt.Errorf("failed to encode event payload: %w", err)
	}

	if err = s.repo.InsertTx(ctx, tx, event); err != nil {
		log.Error().Err(err).Str("eventType", msg.EventType).Msg("failed to record event")

		return fmt.Errorf("failed to record event: %w", err)
	}

	return nil
}

func (s *serviceImpl) Relay(ctx context.Context, batch int) (published int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".outbox.Relay")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		events, err := s.repo.ClaimTx(ctx, tx, batch)
		if err != nil {
			return err //nolint:wrapcheck
		}

		ids := make([]string, 0, len(events))

		for _, event := range events {
			pubErr := s.publisher.Publish(ctx, broker.Event{
				ID:          event.ID,
				Type:        event.EventType,
				AggregateID: event.AggregateID,
				Payload:     event.Payload,
			})
			if pubErr != nil {
				log.Warn().Err(pubErr).Str("eventID", event.ID).Int("attempts", event.Attempts+1).Msg("failed to publish event")

				if err := s.repo.RecordFailureTx(ctx, tx, event.ID, pubErr.Error(), timezone.Now()); err != nil {
					return err //nolint:wrapcheck
				}

				continue
			}

			ids = append(ids, event.ID)
		}

		published = len(ids)

		return s.repo.MarkPublishedTx(ctx, tx, ids, timezone.Now()) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to relay outbox events")

		return 0, fmt.Errorf("failed to relay outbox events: %w", err)
	}

	return published, nil
}
