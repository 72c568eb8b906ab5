package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"visitorpass/config"
	"visitorpass/infras/otel/mocks"
	accommodationMocks "visitorpass/internal/domains/accommodation/mocks"
	accommodationModel "visitorpass/internal/domains/accommodation/model"
	bookingMocks "visitorpass/internal/domains/booking/mocks"
	"visitorpass/internal/domains/booking/model"
	"visitorpass/internal/domains/booking/model/dto"
	"visitorpass/internal/domains/booking/service"
	outboxMocks "visitorpass/internal/domains/outbox/mocks"
	slotMocks "visitorpass/internal/domains/slot/mocks"
	slotModel "visitorpass/internal/domains/slot/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	"visitorpass/shared/timezone"
	txMocks "visitorpass/shared/transaction/mocks"
)

const (
	userID  = "6f1c7a52-0d4e-4b8a-9a53-0f5c2d9e1a11"
	otherID = "0b8d2c11-7e3f-4a9b-8c6d-5e4f3a2b1c00"
	slotID  = "4a2e9f31-5c6b-4d7e-8f90-1a2b3c4d5e6f"
	epassID = "9c8b7a65-4d3e-4f2a-9b1c-0d9e8f7a6b5c"
)

type fixture struct {
	svc           service.Booking
	repo          *bookingMocks.MockBooking
	slots         *slotMocks.MockSlot
	accommodation *accommodationMocks.MockAccommodation
	outbox        *outboxMocks.MockOutboxService
	tx            *txMocks.MockTransactor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:          bookingMocks.NewMockBooking(ctrl),
		slots:         slotMocks.NewMockSlot(ctrl),
		accommodation: accommodationMocks.NewMockAccommodation(ctrl),
		outbox:        outboxMocks.NewMockOutboxService(ctrl),
		tx:            txMocks.NewMockTransactor(ctrl),
	}

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()

	cfg := &config.Config{}
	cfg.Booking.CheckInDeadlineHour = 18

	f.svc = service.New(f.repo, f.slots, f.accommodation, f.outbox, f.tx, cfg, mocks.NewOtel())

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestBookingService_BookEpass(t *testing.T) {
	visitDate := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "reserves capacity and books",
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetEntry(gomock.Any(), gomock.Any()).Return(slotModel.EntrySlot{ID: slotID, SlotDate: visitDate, IsActive: true}, nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), slotModel.KindEntry, slotID).Return(nil)
				f.repo.EXPECT().InsertEpassTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, booking model.EpassBooking) error {
						assert.Equal(t, model.StatusBooked, booking.Status)
						assert.Equal(t, userID, booking.UserID)
						assert.Equal(t, visitDate, booking.VisitDate)
						assert.True(t, strings.HasPrefix(booking.QRCode, "EPASS-"))

						return nil
					},
				)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing slot",
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetEntry(gomock.Any(), gomock.Any()).Return(slotModel.EntrySlot{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive slot",
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetEntry(gomock.Any(), gomock.Any()).Return(slotModel.EntrySlot{ID: slotID, IsActive: false}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "slot full",
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetEntry(gomock.Any(), gomock.Any()).Return(slotModel.EntrySlot{ID: slotID, IsActive: true}, nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(fmt.Errorf("failed to call safe_increment_entry_slot: %w", &pq.Error{Code: "P0001", Message: "slot is full"}))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "insert fails",
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetEntry(gomock.Any(), gomock.Any()).Return(slotModel.EntrySlot{ID: slotID, IsActive: true}, nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertEpassTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.BookEpass(userContext(), dto.BookEpassRequest{SlotID: slotID})

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "2026-10-25", res.VisitDate)
			assert.Equal(t, model.StatusBooked, res.Status)
		})
	}
}

func TestBookingService_BookFood(t *testing.T) {
	epass := epassID

	tests := []struct {
		name      string
		req       dto.BookFoodRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "books without an e-pass",
			req:  dto.BookFoodRequest{FoodSlotID: slotID},
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetFood(gomock.Any(), gomock.Any()).Return(slotModel.FoodSlot{ID: slotID, MealType: slotModel.MealTypeFree, IsActive: true}, nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), slotModel.KindFood, slotID).Return(nil)
				f.repo.EXPECT().InsertFoodTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "books with an owned e-pass",
			req:  dto.BookFoodRequest{FoodSlotID: slotID, EpassBookingID: &epass},
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetFood(gomock.Any(), gomock.Any()).Return(slotModel.FoodSlot{ID: slotID, IsActive: true}, nil)
				f.repo.EXPECT().FindRecord(gomock.Any(), model.ModuleEpass, epassID).Return(model.Record{ID: epassID, UserID: userID, Status: model.StatusBooked}, nil)
				f.slots.EXPECT().ReserveTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertFoodTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, booking model.FoodBooking) error {
						assert.Equal(t, epassID, *booking.EpassBookingID)

						return nil
					},
				)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "e-pass of another visitor",
			req:  dto.BookFoodRequest{FoodSlotID: slotID, EpassBookingID: &epass},
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetFood(gomock.Any(), gomock.Any()).Return(slotModel.FoodSlot{ID: slotID, IsActive: true}, nil)
				f.repo.EXPECT().FindRecord(gomock.Any(), model.ModuleEpass, epassID).Return(model.Record{ID: epassID, UserID: otherID}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "inactive food slot",
			req:  dto.BookFoodRequest{FoodSlotID: slotID},
			setupMock: func(f fixture) {
				f.slots.EXPECT().GetFood(gomock.Any(), gomock.Any()).Return(slotModel.FoodSlot{ID: slotID}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.BookFood(userContext(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_BookAccommodation(t *testing.T) {
	accommodation := accommodationModel.Accommodation{ID: slotID, Name: "Lake Lodge", PricePerDay: 1200, IsActive: true}

	tests := []struct {
		name      string
		req       dto.BookAccommodationRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "two nights",
			req:  dto.BookAccommodationRequest{AccommodationID: slotID, CheckInDate: "2026-12-01", CheckOutDate: "2026-12-03"},
			setupMock: func(f fixture) {
				f.accommodation.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accommodation, nil)
				f.repo.EXPECT().InsertAccommodationTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, booking model.AccommodationBooking) error {
						assert.InDelta(t, 2400, booking.TotalAmount, 0.001)
						assert.Equal(t, 18, booking.CheckInDeadline.Hour())
						assert.Equal(t, timezone.Location(), booking.CheckInDeadline.Location())
						assert.Equal(t, 1, booking.CheckInDeadline.Day())

						return nil
					},
				)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "check-out on check-in day",
			req:       dto.BookAccommodationRequest{AccommodationID: slotID, CheckInDate: "2026-12-01", CheckOutDate: "2026-12-01"},
			setupMock: func(_ fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "inactive accommodation",
			req:  dto.BookAccommodationRequest{AccommodationID: slotID, CheckInDate: "2026-12-01", CheckOutDate: "2026-12-02"},
			setupMock: func(f fixture) {
				f.accommodation.EXPECT().Get(gomock.Any(), gomock.Any()).Return(accommodationModel.Accommodation{ID: slotID}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.BookAccommodation(userContext(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "Lake Lodge", res.Name)
			assert.Equal(t, model.StatusBooked, res.Status)
		})
	}
}

func TestBookingService_ListMyFood(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListFood(gomock.Any(), userID).Return([]model.FoodBookingDetail{
		{ID: "food-1", MealType: slotModel.MealTypePaid, StartTime: "12:00:00", Status: model.StatusConfirmed},
	}, nil)

	res, err := f.svc.ListMyFood(userContext())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, slotModel.MealTypePaid, res[0].MealType)
}

func TestBookingService_ListMyEpassError(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListEpass(gomock.Any(), userID).Return(nil, errors.New("database error"))

	_, err := f.svc.ListMyEpass(userContext())

	assert.Error(t, err)
}

func TestParseModule(t *testing.T) {
	tests := []struct {
		input   string
		want    model.Module
		wantErr bool
	}{
		{input: "EPASS", want: model.ModuleEpass},
		{input: "food", want: model.ModuleFood},
		{input: " Accommodation ", want: model.ModuleAccommodation},
		{input: "ECO_FEE", want: model.ModuleEcoFee},
		{input: "PARKING", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := model.ParseModule(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, failure.InvalidModuleError)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
