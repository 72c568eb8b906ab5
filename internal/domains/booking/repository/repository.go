package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"visitorpass/infras/otel"
	"visitorpass/infras/postgres"
	"visitorpass/internal/domains/booking/model"
	"visitorpass/shared/constant"
	gDto "visitorpass/shared/dto"
	"visitorpass/shared/logger"
	gRepo "visitorpass/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errUnknownModule = errors.New("unknown module")
)

// recordSelects project every module table onto model.Record. The booking table is always aliased b.
var recordSelects = map[model.Module]string{
	model.ModuleEpass: `SELECT b.id, b.user_id, 'EPASS' AS module, b.status, b.slot_id::text AS slot_id,
		NULL::text AS meal_type, 0::float8 AS amount, b.visit_date AS date, b.created_at
		FROM epass_bookings b`,
	model.ModuleFood: `SELECT b.id, b.user_id, 'FOOD' AS module, b.status, b.food_slot_id::text AS slot_id,
		s.meal_type::text AS meal_type, 0::float8 AS amount, s.slot_date AS date, b.created_at
		FROM food_bookings b JOIN food_slots s ON s.id = b.food_slot_id`,
	model.ModuleAccommodation: `SELECT b.id, b.user_id, 'ACCOMMODATION' AS module, b.status, NULL::text AS slot_id,
		NULL::text AS meal_type, b.total_amount::float8 AS amount, b.check_in_date AS date, b.created_at
		FROM accommodation_bookings b`,
	model.ModuleEcoFee: `SELECT b.id, b.user_id, 'ECO_FEE' AS module, b.status, NULL::text AS slot_id,
		NULL::text AS meal_type, b.total_fee::float8 AS amount, NULL::date AS date, b.created_at
		FROM eco_declarations b`,
}

type Booking interface {
	InsertEpassTx(ctx context.Context, tx *sqlx.Tx, booking model.EpassBooking) error
	InsertFoodTx(ctx context.Context, tx *sqlx.Tx, booking model.FoodBooking) error
	InsertAccommodationTx(ctx context.Context, tx *sqlx.Tx, booking model.AccommodationBooking) error
	ListEpass(ctx context.Context, userID string) ([]model.EpassBookingDetail, error)
	ListFood(ctx context.Context, userID string) ([]model.FoodBookingDetail, error)
	ListAccommodation(ctx context.Context, userID string) ([]model.AccommodationBookingDetail, error)
	// FindRecord returns a zero Record when no row of module has the id.
	FindRecord(ctx context.Context, module model.Module, id string) (model.Record, error)
	// FindRecordTx is FindRecord holding a row lock until tx ends.
	FindRecordTx(ctx context.Context, tx *sqlx.Tx, module model.Module, id string) (model.Record, error)
	// ListRecords merges the rows of modules owned by userID, newest first.
	ListRecords(ctx context.Context, userID string, modules []model.Module) ([]model.Record, error)
	// TransitionTx moves a booking to status to only while its status is one of from.
	// Zero affected rows means the guard did not hold.
	TransitionTx(ctx context.Context, tx *sqlx.Tx, module model.Module, id string, from []string, to, user string, at time.Time) (int64, error)
}

type repositoryImpl struct {
	epass               gRepo.Repository[model.EpassBooking]
	food                gRepo.Repository[model.FoodBooking]
	accommodation       gRepo.Repository[model.AccommodationBooking]
	epassDetail         gRepo.Repository[model.EpassBookingDetail]
	foodDetail          gRepo.Repository[model.FoodBookingDetail]
	accommodationDetail gRepo.Repository[model.AccommodationBookingDetail]
	db                  *postgres.Connection
	otel                otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		epass:               gRepo.NewRepository[model.EpassBooking](model.EntityEpass, model.TableEpass, model.FieldID, db, otel),
		food:                gRepo.NewRepository[model.FoodBooking](model.EntityFood, model.TableFood, model.FieldID, db, otel),
		accommodation:       gRepo.NewRepository[model.AccommodationBooking](model.EntityAccommodation, model.TableAccommodation, model.FieldID, db, otel),
		epassDetail:         gRepo.NewRepository[model.EpassBookingDetail](model.EntityEpass, model.TableEpass, model.FieldID, db, otel),
		foodDetail:          gRepo.NewRepository[model.FoodBookingDetail](model.EntityFood, model.TableFood, model.FieldID, db, otel),
		accommodationDetail: gRepo.NewRepository[model.AccommodationBookingDetail](model.EntityAccommodation, model.TableAccommodation, model.FieldID, db, otel),
		db:                  db,
		otel:                otel,
	}
}

func ownedBy(userID, table string) (gDto.QueryParams, gDto.FilterGroup) {
	params := gDto.QueryParams{
		SortBy:  table + "." + model.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}

	return params, filter
}

func (r *repositoryImpl) InsertEpassTx(ctx context.Context, tx *sqlx.Tx, booking model.EpassBooking) error {
	return r.epass.InsertTx(ctx, tx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertFoodTx(ctx context.Context, tx *sqlx.Tx, booking model.FoodBooking) error {
	return r.food.InsertTx(ctx, tx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertAccommodationTx(ctx context.Context, tx *sqlx.Tx, booking model.AccommodationBooking) error {
	return r.accommodation.InsertTx(ctx, tx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) ListEpass(ctx context.Context, userID string) ([]model.EpassBookingDetail, error) {
	params, filter := ownedBy(userID, model.TableEpass)

	return r.epassDetail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) ListFood(ctx context.Context, userID string) ([]model.FoodBookingDetail, error) {
	params, filter := ownedBy(userID, model.TableFood)

	return r.foodDetail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) ListAccommodation(ctx context.Context, userID string) ([]model.AccommodationBookingDetail, error) {
	params, filter := ownedBy(userID, model.TableAccommodation)

	return r.accommodationDetail.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) FindRecord(ctx context.Context, module model.Module, id string) (model.Record, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindRecord")
	defer scope.End()

	return r.findRecord(ctx, scope, r.db.Read, module, id, "")
}

func (r *repositoryImpl) FindRecordTx(ctx context.Context, tx *sqlx.Tx, module model.Module, id string) (model.Record, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindRecordTx")
	defer scope.End()

	return r.findRecord(ctx, scope, tx, module, id, " FOR UPDATE OF b")
}

func (r *repositoryImpl) findRecord(ctx context.Context, scope otel.Scope, q sqlx.QueryerContext, module model.Module, id, lock string) (model.Record, error) {
	var record model.Record

	selectQuery, ok := recordSelects[module]
	if !ok {
		return record, errUnknownModule
	}

	query := selectQuery + " WHERE b.id = $1" + lock
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := sqlx.GetContext(ctx, q, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Record{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return record, fmt.Errorf("failed to find booking (%s): %w", module, err)
	}

	return record, nil
}

func (r *repositoryImpl) ListRecords(ctx context.Context, userID string, modules []model.Module) ([]model.Record, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListRecords")
	defer scope.End()

	parts := make([]string, 0, len(modules))

	for _, module := range modules {
		selectQuery, ok := recordSelects[module]
		if !ok {
			return nil, errUnknownModule
		}

		parts = append(parts, "("+selectQuery+" WHERE b.user_id = $1)")
	}

	records := []model.Record{}
	if len(parts) == 0 {
		return records, nil
	}

	query := strings.Join(parts, " UNION ALL ") + " ORDER BY created_at DESC"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err := r.db.Read.SelectContext(ctx, &records, query, userID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return records, nil
}

func (r *repositoryImpl) TransitionTx(ctx context.Context, tx *sqlx.Tx, module model.Module, id string, from []string, to, user string, at time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionTx")
	defer scope.End()

	if !module.Valid() {
		return 0, errUnknownModule
	}

	query := fmt.Sprintf(
		"UPDATE %s SET status = $1, modified_at = $2, modified_by = $3 WHERE id = $4 AND status = ANY($5)",
		module.Table(),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, to, at, user, id, pq.Array(from))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to transition booking (%s): %w", module, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", module, err)
	}

	return affected, nil
}
