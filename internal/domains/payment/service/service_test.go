package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"visitorpass/infras/otel/mocks"
	bookingMocks "visitorpass/internal/domains/booking/mocks"
	bookingModel "visitorpass/internal/domains/booking/model"
	outboxMocks "visitorpass/internal/domains/outbox/mocks"
	paymentMocks "visitorpass/internal/domains/payment/mocks"
	"visitorpass/internal/domains/payment/model"
	"visitorpass/internal/domains/payment/model/dto"
	"visitorpass/internal/domains/payment/service"
	refundMocks "visitorpass/internal/domains/refund/mocks"
	refundModel "visitorpass/internal/domains/refund/model"
	slotModel "visitorpass/internal/domains/slot/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	txMocks "visitorpass/shared/transaction/mocks"
)

const (
	userID    = "6f1c7a52-0d4e-4b8a-9a53-0f5c2d9e1a11"
	otherID   = "0b8d2c11-7e3f-4a9b-8c6d-5e4f3a2b1c00"
	bookingID = "9c8b7a65-4d3e-4f2a-9b1c-0d9e8f7a6b5c"
)

type fixture struct {
	svc      service.Payment
	repo     *paymentMocks.MockPayment
	refunds  *refundMocks.MockRefund
	bookings *bookingMocks.MockBooking
	outbox   *outboxMocks.MockOutboxService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     paymentMocks.NewMockPayment(ctrl),
		refunds:  refundMocks.NewMockRefund(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		outbox:   outboxMocks.NewMockOutboxService(ctrl),
	}

	tx := txMocks.NewMockTransactor(ctrl)
	tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()

	f.svc = service.New(f.repo, f.refunds, f.bookings, f.outbox, tx, mocks.NewOtel())

	return f
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func record(module bookingModel.Module, status string) bookingModel.Record {
	return bookingModel.Record{ID: bookingID, UserID: userID, Module: module, Status: status}
}

func TestPaymentService_Confirm(t *testing.T) {
	free := slotModel.MealTypeFree
	paid := slotModel.MealTypePaid

	tests := []struct {
		name      string
		req       dto.ConfirmRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "confirms a booked e-pass",
			req:  dto.ConfirmRequest{Module: "epass", BookingID: bookingID, Amount: 50},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), bookingModel.ModuleEpass, bookingID).
					Return(record(bookingModel.ModuleEpass, bookingModel.StatusBooked), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, payment model.Payment) error {
						assert.Equal(t, model.StatusSuccess, payment.PaymentStatus)
						assert.Equal(t, model.MethodCard, payment.PaymentMethod)
						assert.Equal(t, model.GatewayMock, payment.Gateway)
						assert.Equal(t, "EPASS", payment.Module)
						assert.Equal(t, float64(50), payment.Amount)

						return nil
					},
				)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), bookingModel.ModuleEpass, bookingID,
					bookingModel.PayableStatuses(), bookingModel.StatusConfirmed, userID, gomock.Any()).Return(int64(1), nil)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "confirms a declared eco fee",
			req:  dto.ConfirmRequest{Module: "ECO_FEE", BookingID: bookingID, Amount: 30},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), bookingModel.ModuleEcoFee, bookingID).
					Return(record(bookingModel.ModuleEcoFee, bookingModel.StatusDeclared), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "confirms a paid meal",
			req:  dto.ConfirmRequest{Module: "FOOD", BookingID: bookingID, Amount: 12},
			setupMock: func(f fixture) {
				r := record(bookingModel.ModuleFood, bookingModel.StatusBooked)
				r.MealType = &paid

				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "unknown module",
			req:       dto.ConfirmRequest{Module: "PARKING", BookingID: bookingID, Amount: 10},
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "booking of another visitor",
			req:  dto.ConfirmRequest{Module: "EPASS", BookingID: bookingID, Amount: 10},
			setupMock: func(f fixture) {
				r := record(bookingModel.ModuleEpass, bookingModel.StatusBooked)
				r.UserID = otherID

				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "missing booking",
			req:  dto.ConfirmRequest{Module: "EPASS", BookingID: bookingID, Amount: 10},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Record{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "free meal regardless of amount",
			req:  dto.ConfirmRequest{Module: "FOOD", BookingID: bookingID, Amount: 99},
			setupMock: func(f fixture) {
				r := record(bookingModel.ModuleFood, bookingModel.StatusBooked)
				r.MealType = &free

				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(r, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "cancelled booking",
			req:  dto.ConfirmRequest{Module: "ACCOMMODATION", BookingID: bookingID, Amount: 300},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(record(bookingModel.ModuleAccommodation, bookingModel.StatusCancelled), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "already confirmed",
			req:  dto.ConfirmRequest{Module: "ACCOMMODATION", BookingID: bookingID, Amount: 300},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(record(bookingModel.ModuleAccommodation, bookingModel.StatusConfirmed), nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "losing a concurrent payment race",
			req:  dto.ConfirmRequest{Module: "EPASS", BookingID: bookingID, Amount: 10},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(record(bookingModel.ModuleEpass, bookingModel.StatusBooked), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "status changed under the lock",
			req:  dto.ConfirmRequest{Module: "EPASS", BookingID: bookingID, Amount: 10},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(record(bookingModel.ModuleEpass, bookingModel.StatusBooked), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert fails",
			req:  dto.ConfirmRequest{Module: "EPASS", BookingID: bookingID, Amount: 10},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(record(bookingModel.ModuleEpass, bookingModel.StatusBooked), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Confirm(userContext(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusSuccess, res.PaymentStatus)
			assert.Equal(t, bookingID, res.BookingID)
		})
	}
}

func TestPaymentService_ListMine(t *testing.T) {
	f := newFixture(t)
	processed := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Payment{
		{ID: "pay-2", Module: "ACCOMMODATION", BookingID: "b-2", Amount: 300, PaymentStatus: model.StatusSuccess},
		{ID: "pay-1", Module: "EPASS", BookingID: "b-1", Amount: 50, PaymentStatus: model.StatusSuccess},
	}, nil)
	f.refunds.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]refundModel.Refund{
		{ID: "ref-1", PaymentID: "pay-1", Amount: 50, RefundStatus: refundModel.StatusSuccess, ProcessedAt: &processed},
	}, nil)

	res, err := f.svc.ListMine(userContext())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "pay-2", res[0].ID)
	assert.Empty(t, res[0].Refunds)
	assert.Len(t, res[1].Refunds, 1)
	assert.Equal(t, refundModel.StatusSuccess, res[1].Refunds[0].RefundStatus)
	assert.NotNil(t, res[1].Refunds[0].ProcessedAt)
}

func TestPaymentService_ListMine_Error(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

	_, err := f.svc.ListMine(userContext())

	assert.Error(t, err)
}
