package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/internal/domains/outbox/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/logger"
	gRepo "visitorpass/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	claimQuery = `SELECT id, aggregate_type, aggregate_id, event_type, payload, attempts, last_error, published_at,
		created_at, modified_at, created_by, modified_by
		FROM outbox_events WHERE published_at IS NULL
		ORDER BY created_at ASC LIMIT $1 FOR UPDATE SKIP LOCKED`
	markPublishedQuery = `UPDATE outbox_events SET published_at = $1, modified_at = $1 WHERE id = ANY($2)`
	recordFailureQuery = `UPDATE outbox_events SET attempts = attempts + 1, last_error = $1, modified_at = $2 WHERE id = $3`
)

type Outbox interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, event model.Event) error
	// ClaimTx locks up to limit unpublished events, oldest first. Rows locked by another relay are skipped.
	ClaimTx(ctx context.Context, tx *sqlx.Tx, limit int) ([]model.Event, error)
	MarkPublishedTx(ctx context.Context, tx *sqlx.Tx, ids []string, at time.Time) error
	RecordFailureTx(ctx context.Context, tx *sqlx.Tx, id, reason string, at time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Event]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Outbox {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Event](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) ClaimTx(ctx context.Context, tx *sqlx.Tx, limit int) ([]model.Event, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.ClaimTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, claimQuery)

	events := []model.Event{}

	if err := tx.SelectContext(ctx, &events, claimQuery, limit); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to claim outbox events: %w", err)
	}

	return events, nil
}

func (r *repositoryImpl) MarkPublishedTx(ctx context.Context, tx *sqlx.Tx, ids []string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.MarkPublishedTx")
	defer scope.End()

	if len(ids) == 0 {
		return nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, markPublishedQuery)

	if _, err := tx.ExecContext(ctx, markPublishedQuery, at, pq.Array(ids)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to mark outbox events published: %w", err)
	}

	return nil
}

func (r *repositoryImpl) RecordFailureTx(ctx context.Context, tx *sqlx.Tx, id, reason string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".outbox.RecordFailureTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, recordFailureQuery)

	if _, err := tx.ExecContext(ctx, recordFailureQuery, reason, at, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to record outbox failure: %w", err)
	}

	return nil
}
