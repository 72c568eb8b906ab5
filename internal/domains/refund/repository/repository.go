package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/internal/domains/refund/model"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/logger"
	gRepo "visitorpass/shared/repository"

	"github.com/jmoiron/sqlx"
)

const settleDueQuery = `UPDATE refunds SET refund_status = $1, processed_at = $2, modified_at = $2, modified_by = $3
	WHERE refund_status = $4 AND created_at <= $5
	RETURNING id, user_id, payment_id, booking_id, module, amount, refund_status, processed_at,
		created_at, modified_at, created_by, modified_by`

type Refund interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Refund) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Refund, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Refund, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Refund, error)
	UpdateAffectedTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, filter gDto.FilterGroup) (int64, error)
	// SettleDueTx moves every PENDING refund created at or before cutoff to SUCCESS and returns the moved rows.
	SettleDueTx(ctx context.Context, tx *sqlx.Tx, cutoff, at time.Time) ([]model.Refund, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Refund]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Refund {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Refund](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) SettleDueTx(ctx context.Context, tx *sqlx.Tx, cutoff, at time.Time) ([]model.Refund, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".refund.SettleDueTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, settleDueQuery)

	refunds := []model.Refund{}

	err := tx.SelectContext(ctx, &refunds, settleDueQuery, model.StatusSuccess, at, constant.ContextSystem, model.StatusPending, cutoff)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to settle due refunds: %w", err)
	}

	return refunds, nil
}

func ByStatus(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldRefundStatus, Value: status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
