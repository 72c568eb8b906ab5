package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/internal/domains/cancellation/model"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/logger"
	gRepo "visitorpass/shared/repository"

	"github.com/jmoiron/sqlx"
)

const findReasonQuery = `SELECT id, reason_code, description, initiated_by, created_at, modified_at, created_by, modified_by
	FROM cancellation_reasons WHERE LOWER(reason_code) = LOWER($1)`

type Cancellation interface {
	// FindReason matches code case-insensitively and returns a zero Reason when nothing matches.
	FindReason(ctx context.Context, code string) (model.Reason, error)
	ListReasons(ctx context.Context, initiatedBy string) ([]model.Reason, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, cancellation model.Cancellation) error
	GetDetail(ctx context.Context, module, bookingID string) (model.CancellationDetail, error)
}

type repositoryImpl struct {
	reason       gRepo.Repository[model.Reason]
	cancellation gRepo.Repository[model.Cancellation]
	detail       gRepo.Repository[model.CancellationDetail]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cancellation {
	return &repositoryImpl{
		reason:       gRepo.NewRepository[model.Reason](model.EntityReason, model.TableReason, model.FieldID, db, otel),
		cancellation: gRepo.NewRepository[model.Cancellation](model.EntityCancellation, model.TableCancellation, model.FieldID, db, otel),
		detail:       gRepo.NewRepository[model.CancellationDetail](model.EntityCancellation, model.TableCancellation, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

func (r *repositoryImpl) FindReason(ctx context.Context, code string) (model.Reason, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".cancellation.FindReason")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, findReasonQuery)

	var reason model.Reason

	err := r.db.Read.GetContext(ctx, &reason, findReasonQuery, code)
	if errors.Is(err, sql.ErrNoRows) {
		return reason, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return reason, fmt.Errorf("failed to get cancellation reason: %w", err)
	}

	return reason, nil
}

func (r *repositoryImpl) ListReasons(ctx context.Context, initiatedBy string) ([]model.Reason, error) {
	return r.reason.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldReasonCode, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []any{
			gDto.Filter{Field: model.FieldInitiatedBy, Value: initiatedBy, Operator: gDto.FilterOperatorEq, Table: model.TableReason},
		},
	})
}

func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, cancellation model.Cancellation) error {
	return r.cancellation.InsertTx(ctx, tx, cancellation) //nolint:wrapcheck
}

func (r *repositoryImpl) GetDetail(ctx context.Context, module, bookingID string) (model.CancellationDetail, error) {
	return r.detail.Get(ctx, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []any{
			gDto.Filter{Field: model.FieldModule, Value: module, Operator: gDto.FilterOperatorEq, Table: model.TableCancellation},
			gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: model.TableCancellation},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
}
