package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/internal/domains/user/model"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/logger"
	gRepo "visitorpass/shared/repository"
)

const upsertQuery = `INSERT INTO users (id, email, role, full_name, last_sign_in_at, created_at, modified_at, created_by, modified_by)
	VALUES (:id, :email, :role, :full_name, :last_sign_in_at, :created_at, :modified_at, :created_by, :modified_by)
	ON CONFLICT (id) DO UPDATE SET
		email = EXCLUDED.email,
		role = EXCLUDED.role,
		full_name = COALESCE(EXCLUDED.full_name, users.full_name),
		last_sign_in_at = EXCLUDED.last_sign_in_at,
		modified_at = EXCLUDED.modified_at,
		modified_by = EXCLUDED.modified_by`

type User interface {
	Upsert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Upsert(ctx context.Context, user model.User) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Upsert")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	if _, err := r.db.Write.NamedExecContext(ctx, upsertQuery, user); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}
