package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/internal/domains/accommodation/model"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/logger"
	gRepo "visitorpass/shared/repository"
)

type Accommodation interface {
	Insert(ctx context.Context, model model.Accommodation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Accommodation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Accommodation, error)
	Toggle(ctx context.Context, id, user string, at time.Time) (active, found bool, err error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Accommodation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Accommodation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Accommodation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Toggle(ctx context.Context, id, user string, at time.Time) (active, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".accommodation.Toggle")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET is_active = NOT is_active, modified_at = $2, modified_by = $3 WHERE id = $1 RETURNING is_active",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.db.Write.QueryRowxContext(ctx, query, id, at, user).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, false, fmt.Errorf("failed to toggle accommodation: %w", err)
	}

	return active, true, nil
}
