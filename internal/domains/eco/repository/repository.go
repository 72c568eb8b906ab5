package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/internal/domains/eco/model"
	gDto "visitorpass/shared/dto"
	gRepo "visitorpass/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Eco interface {
	InsertDeclarationTx(ctx context.Context, tx *sqlx.Tx, declaration model.Declaration) error
	InsertItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.Item) error
	// GetByEpass returns a zero declaration when the user has not declared for the e-pass.
	GetByEpass(ctx context.Context, epassBookingID, userID string) (model.Declaration, error)
	GetItems(ctx context.Context, declarationID string) ([]model.Item, error)
}

type repositoryImpl struct {
	declaration gRepo.Repository[model.Declaration]
	item        gRepo.Repository[model.Item]
}

func New(db *postgres.Connection, otel otel.Otel) Eco {
	return &repositoryImpl{
		declaration: gRepo.NewRepository[model.Declaration](model.EntityDeclaration, model.TableDeclaration, model.FieldID, db, otel),
		item:        gRepo.NewRepository[model.Item](model.EntityItem, model.TableItem, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) InsertDeclarationTx(ctx context.Context, tx *sqlx.Tx, declaration model.Declaration) error {
	return r.declaration.InsertTx(ctx, tx, declaration) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertItemsTx(ctx context.Context, tx *sqlx.Tx, items []model.Item) error {
	return r.item.InsertBulkTx(ctx, tx, items) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByEpass(ctx context.Context, epassBookingID, userID string) (model.Declaration, error) {
	return r.declaration.Get(ctx, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []any{
			gDto.Filter{Field: model.FieldEpassBookingID, Value: epassBookingID, Operator: gDto.FilterOperatorEq, Table: model.TableDeclaration},
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TableDeclaration},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
}

func (r *repositoryImpl) GetItems(ctx context.Context, declarationID string) ([]model.Item, error) {
	return r.item.GetAll(ctx, gDto.QueryParams{SortBy: "plastic_type", SortDir: gDto.SortDirAsc}, gDto.FilterGroup{ //nolint:wrapcheck
		Filters: []any{
			gDto.Filter{Field: model.FieldEcoDeclarationID, Value: declarationID, Operator: gDto.FilterOperatorEq, Table: model.TableItem},
		},
	})
}
