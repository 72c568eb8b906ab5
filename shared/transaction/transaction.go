package transaction

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Transactor interface {
	// WithinTx runs fn in a write transaction. The transaction commits when fn returns nil
	// and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
	// Savepoint runs fn inside a named savepoint of tx. When fn fails only the work done
	// since the savepoint is discarded and the error is returned to the caller.
	Savepoint(ctx context.Context, tx *sqlx.Tx, name string, fn func() error) error
}

type transactorImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Transactor {
	return &transactorImpl{
		db:   db,
		otel: otel,
	}
}

func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.WithinTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, context.Canceled) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (t *transactorImpl) Savepoint(ctx context.Context, tx *sqlx.Tx, name string, fn func() error) (err error) {
	ctx, scope := t.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".transaction.Savepoint")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("savepoint", name)

	if _, err = tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		return fmt.Errorf("failed to create savepoint %s: %w", name, err)
	}

	if err = fn(); err != nil {
		if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			log.Error().Err(rbErr).Str("savepoint", name).Msg("failed to rollback to savepoint")

			return fmt.Errorf("failed to rollback to savepoint %s: %w", name, rbErr)
		}

		return err
	}

	if _, err = tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		return fmt.Errorf("failed to release savepoint %s: %w", name, err)
	}

	return nil
}
