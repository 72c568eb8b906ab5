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
	"visitorpass/internal/domains/slot/model"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/logger"
	gRepo "visitorpass/shared/repository"

	"github.com/jmoiron/sqlx"
)

var (
	ErrUnknownKind = errors.New("unknown slot kind")
)

type Slot interface {
	InsertEntry(ctx context.Context, model model.EntrySlot) error
	InsertFood(ctx context.Context, model model.FoodSlot) error
	GetEntry(ctx context.Context, filter gDto.FilterGroup) (model.EntrySlot, error)
	GetFood(ctx context.Context, filter gDto.FilterGroup) (model.FoodSlot, error)
	GetAllEntry(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.EntrySlot, error)
	GetAllFood(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FoodSlot, error)
	// Toggle flips is_active and reports the new value. found is false when no slot has the id.
	Toggle(ctx context.Context, kind model.Kind, id, user string, at time.Time) (active, found bool, err error)
	// ReserveTx takes one unit of capacity. The store raises when the slot is full or inactive.
	ReserveTx(ctx context.Context, tx *sqlx.Tx, kind model.Kind, id string) error
	// ReleaseTx gives one unit of capacity back.
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, kind model.Kind, id string) error
}

type repositoryImpl struct {
	entry gRepo.Repository[model.EntrySlot]
	food  gRepo.Repository[model.FoodSlot]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Slot {
	return &repositoryImpl{
		entry: gRepo.NewRepository[model.EntrySlot](model.EntityEntry, model.TableEntry, model.FieldID, db, otel),
		food:  gRepo.NewRepository[model.FoodSlot](model.EntityFood, model.TableFood, model.FieldID, db, otel),
		db:    db,
		otel:  otel,
	}
}

func (r *repositoryImpl) InsertEntry(ctx context.Context, model model.EntrySlot) error {
	return r.entry.Insert(ctx, model) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertFood(ctx context.Context, model model.FoodSlot) error {
	return r.food.Insert(ctx, model) //nolint:wrapcheck
}

func (r *repositoryImpl) GetEntry(ctx context.Context, filter gDto.FilterGroup) (model.EntrySlot, error) {
	return r.entry.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetFood(ctx context.Context, filter gDto.FilterGroup) (model.FoodSlot, error) {
	return r.food.Get(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllEntry(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.EntrySlot, error) {
	return r.entry.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAllFood(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.FoodSlot, error) {
	return r.food.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Toggle(ctx context.Context, kind model.Kind, id, user string, at time.Time) (active, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.Toggle")
	defer scope.End()

	table, err := tableOf(kind)
	if err != nil {
		return false, false, err
	}

	query := fmt.Sprintf(
		"UPDATE %s SET is_active = NOT is_active, modified_at = $2, modified_by = $3 WHERE id = $1 RETURNING is_active",
		table,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.db.Write.QueryRowxContext(ctx, query, id, at, user).Scan(&active)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, false, fmt.Errorf("failed to toggle slot (%s): %w", table, err)
	}

	return active, true, nil
}

func (r *repositoryImpl) ReserveTx(ctx context.Context, tx *sqlx.Tx, kind model.Kind, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.ReserveTx")
	defer scope.End()

	return r.callProcedure(ctx, scope, tx, "safe_increment_", kind, id)
}

func (r *repositoryImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, kind model.Kind, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.ReleaseTx")
	defer scope.End()

	return r.callProcedure(ctx, scope, tx, "safe_decrement_", kind, id)
}

func (r *repositoryImpl) callProcedure(ctx context.Context, scope otel.Scope, tx *sqlx.Tx, prefix string, kind model.Kind, id string) error {
	if kind != model.KindEntry && kind != model.KindFood {
		return ErrUnknownKind
	}

	query := fmt.Sprintf("SELECT %s%s_slot($1)", prefix, kind)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to call %s%s_slot: %w", prefix, kind, err)
	}

	return nil
}

func tableOf(kind model.Kind) (string, error) {
	switch kind {
	case model.KindEntry:
		return model.TableEntry, nil
	case model.KindFood:
		return model.TableFood, nil
	default:
		return "", ErrUnknownKind
	}
}
