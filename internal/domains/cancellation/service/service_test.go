package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"visitorpass/infras/otel/mocks"
	bookingMocks "visitorpass/internal/domains/booking/mocks"
	bookingModel "visitorpass/internal/domains/booking/model"
	cancellationMocks "visitorpass/internal/domains/cancellation/mocks"
	"visitorpass/internal/domains/cancellation/model"
	"visitorpass/internal/domains/cancellation/model/dto"
	"visitorpass/internal/domains/cancellation/service"
	outboxMocks "visitorpass/internal/domains/outbox/mocks"
	outboxDto "visitorpass/internal/domains/outbox/model/dto"
	outboxModel "visitorpass/internal/domains/outbox/model"
	refundMocks "visitorpass/internal/domains/refund/mocks"
	refundModel "visitorpass/internal/domains/refund/model"
	slotMocks "visitorpass/internal/domains/slot/mocks"
	slotModel "visitorpass/internal/domains/slot/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	txMocks "visitorpass/shared/transaction/mocks"
)

const (
	userID    = "6f1c7a52-0d4e-4b8a-9a53-0f5c2d9e1a11"
	otherID   = "0b8d2c11-7e3f-4a9b-8c6d-5e4f3a2b1c00"
	adminID   = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
	bookingID = "9c8b7a65-4d3e-4f2a-9b1c-0d9e8f7a6b5c"
	slotID    = "4a2e9f31-5c6b-4d7e-8f90-1a2b3c4d5e6f"
	reasonID  = "5b6c7d8e-9f0a-4b1c-8d2e-3f4a5b6c7d8e"
)

type fixture struct {
	svc      service.Cancellation
	repo     *cancellationMocks.MockCancellation
	bookings *bookingMocks.MockBooking
	slots    *slotMocks.MockSlot
	refunds  *refundMocks.MockRefundService
	outbox   *outboxMocks.MockOutboxService
	tx       *txMocks.MockTransactor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     cancellationMocks.NewMockCancellation(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		slots:    slotMocks.NewMockSlot(ctrl),
		refunds:  refundMocks.NewMockRefundService(ctrl),
		outbox:   outboxMocks.NewMockOutboxService(ctrl),
		tx:       txMocks.NewMockTransactor(ctrl),
	}

	f.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, *sqlx.Tx) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()

	f.svc = service.New(f.repo, f.bookings, f.slots, f.refunds, f.outbox, f.tx, mocks.NewOtel())

	return f
}

func contextOf(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

func epassRecord(status string) bookingModel.Record {
	slot := slotID

	return bookingModel.Record{ID: bookingID, UserID: userID, Module: bookingModel.ModuleEpass, Status: status, SlotID: &slot}
}

// expectCancelled wires the effects that follow a successful precondition check.
func expectCancelled(f fixture, module bookingModel.Module, refund *refundModel.Refund) {
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), module, bookingID, gomock.Any(), bookingModel.StatusCancelled, gomock.Any(), gomock.Any()).
		Return(int64(1), nil)
	f.refunds.EXPECT().CreateForBookingTx(gomock.Any(), gomock.Any(), string(module), bookingID, gomock.Any()).Return(refund, nil).Times(1)
	f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, msg outboxDto.Message) error {
			if msg.EventType != outboxModel.EventBookingCancelled {
				return errors.New("unexpected event " + msg.EventType)
			}

			return nil
		},
	)
}

func expectRelease(f fixture, kind slotModel.Kind, err error) {
	f.tx.EXPECT().Savepoint(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *sqlx.Tx, _ string, fn func() error) error {
			return fn()
		},
	)
	f.slots.EXPECT().ReleaseTx(gomock.Any(), gomock.Any(), kind, slotID).Return(err)
}

func expectUserReason(f fixture, code string) {
	f.repo.EXPECT().FindReason(gomock.Any(), code).
		Return(model.Reason{ID: reasonID, ReasonCode: "CHANGE_OF_PLANS", InitiatedBy: model.InitiatedByUser}, nil)
}

func TestCancellationService_Cancel(t *testing.T) {
	reasonCode := "change_of_plans"

	tests := []struct {
		name       string
		req        dto.CancelRequest
		setupMock  func(f fixture)
		wantCode   int
		wantRefund float64
	}{
		{
			name: "user reason matched case-insensitively",
			req:  dto.CancelRequest{Module: "epass", BookingID: bookingID, ReasonCode: reasonCode},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(epassRecord(bookingModel.StatusBooked), nil)
				expectUserReason(f, reasonCode)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, audit model.Cancellation) error {
						assert.Equal(t, reasonID, *audit.CancellationReasonID)
						assert.Equal(t, "EPASS", audit.Module)

						return nil
					},
				)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
				expectRelease(f, slotModel.KindEntry, nil)
				f.refunds.EXPECT().CreateForBookingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "paid e-pass releases its slot and refunds the payment amount",
			req:  dto.CancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: reasonCode},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), bookingModel.ModuleEpass, bookingID).
					Return(epassRecord(bookingModel.StatusBooked), nil)
				expectUserReason(f, reasonCode)
				expectRelease(f, slotModel.KindEntry, nil)
				expectCancelled(f, bookingModel.ModuleEpass, &refundModel.Refund{
					ID: "ref-1", PaymentID: "pay-1", BookingID: bookingID, Module: "EPASS", Amount: 150, RefundStatus: refundModel.StatusPending,
				})
			},
			wantRefund: 150,
		},
		{
			name: "blank reason code",
			req:  dto.CancelRequest{Module: "EPASS", BookingID: bookingID},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(epassRecord(bookingModel.StatusBooked), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "admin-only reason",
			req:  dto.CancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: "WEATHER"},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(epassRecord(bookingModel.StatusBooked), nil)
				f.repo.EXPECT().FindReason(gomock.Any(), "WEATHER").
					Return(model.Reason{ID: reasonID, InitiatedBy: model.InitiatedByAdmin}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "unknown reason",
			req:  dto.CancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: "BORED"},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(epassRecord(bookingModel.StatusBooked), nil)
				f.repo.EXPECT().FindReason(gomock.Any(), "BORED").Return(model.Reason{}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "unknown module",
			req:       dto.CancelRequest{Module: "PARKING", BookingID: bookingID, ReasonCode: reasonCode},
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "booking of another visitor",
			req:  dto.CancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: reasonCode},
			setupMock: func(f fixture) {
				record := epassRecord(bookingModel.StatusBooked)
				record.UserID = otherID

				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(record, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already cancelled booking writes nothing",
			req:  dto.CancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: reasonCode},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(epassRecord(bookingModel.StatusCancelled), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "confirmed booking cannot be cancelled by the visitor",
			req:  dto.CancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: reasonCode},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(epassRecord(bookingModel.StatusConfirmed), nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Cancel(contextOf(userID), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingModel.StatusCancelled, res.Status)
			assert.Equal(t, "EPASS", res.Module)

			if tt.wantRefund == 0 {
				assert.Nil(t, res.Refund)

				return
			}

			if assert.NotNil(t, res.Refund) {
				assert.Equal(t, refundModel.StatusPending, res.Refund.RefundStatus)
				assert.Equal(t, "pay-1", res.Refund.PaymentID)
				assert.Equal(t, tt.wantRefund, res.Refund.Amount)
			}
		})
	}
}

func TestCancellationService_CancelModule(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.ModuleCancelRequest
		setupMock  func(f fixture)
		wantCode   int
		wantRefund bool
	}{
		{
			name: "unpaid e-pass releases its slot without a reason",
			req:  dto.ModuleCancelRequest{Module: "EPASS", BookingID: bookingID},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), bookingModel.ModuleEpass, bookingID).
					Return(epassRecord(bookingModel.StatusBooked), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, audit model.Cancellation) error {
						assert.Nil(t, audit.CancellationReasonID)
						assert.Equal(t, userID, audit.CancelledBy)

						return nil
					},
				)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), bookingModel.ModuleEpass, bookingID, gomock.Any(), bookingModel.StatusCancelled, gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
				expectRelease(f, slotModel.KindEntry, nil)
				f.refunds.EXPECT().CreateForBookingTx(gomock.Any(), gomock.Any(), "EPASS", bookingID, gomock.Any()).Return(nil, nil)
				f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "paid accommodation opens one pending refund",
			req:  dto.ModuleCancelRequest{Module: "ACCOMMODATION", BookingID: bookingID},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), bookingModel.ModuleAccommodation, bookingID).
					Return(bookingModel.Record{ID: bookingID, UserID: userID, Module: bookingModel.ModuleAccommodation, Status: bookingModel.StatusBooked}, nil)
				expectCancelled(f, bookingModel.ModuleAccommodation, &refundModel.Refund{
					ID: "ref-1", BookingID: bookingID, Amount: 300, RefundStatus: refundModel.StatusPending,
				})
			},
			wantRefund: true,
		},
		{
			name: "slot release failure does not fail the cancellation",
			req:  dto.ModuleCancelRequest{Module: "EPASS", BookingID: bookingID},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(epassRecord(bookingModel.StatusBooked), nil)
				expectRelease(f, slotModel.KindEntry, errors.New("counter underflow"))
				expectCancelled(f, bookingModel.ModuleEpass, nil)
			},
		},
		{
			name:      "unknown module",
			req:       dto.ModuleCancelRequest{Module: "PARKING", BookingID: bookingID},
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "lost a concurrent cancellation",
			req:  dto.ModuleCancelRequest{Module: "ACCOMMODATION", BookingID: bookingID},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Record{ID: bookingID, UserID: userID, Status: bookingModel.StatusBooked}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "refund creation fails",
			req:  dto.ModuleCancelRequest{Module: "ACCOMMODATION", BookingID: bookingID},
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Record{ID: bookingID, UserID: userID, Status: bookingModel.StatusBooked}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)
				f.refunds.EXPECT().CreateForBookingTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CancelModule(contextOf(userID), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingModel.StatusCancelled, res.Status)

			if tt.wantRefund {
				assert.NotNil(t, res.Refund)
				assert.Equal(t, refundModel.StatusPending, res.Refund.RefundStatus)
			} else {
				assert.Nil(t, res.Refund)
			}
		})
	}
}

func TestCancellationService_AdminCancel(t *testing.T) {
	t.Run("confirmed booking of any visitor with an admin reason", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), bookingModel.ModuleFood, bookingID).
			Return(bookingModel.Record{ID: bookingID, UserID: userID, Module: bookingModel.ModuleFood, Status: bookingModel.StatusConfirmed}, nil)
		f.repo.EXPECT().FindReason(gomock.Any(), "WEATHER").
			Return(model.Reason{ID: reasonID, ReasonCode: "WEATHER", InitiatedBy: model.InitiatedByAdmin}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, audit model.Cancellation) error {
				assert.Equal(t, userID, audit.UserID)
				assert.Equal(t, adminID, audit.CancelledBy)

				return nil
			},
		)
		f.bookings.EXPECT().TransitionTx(gomock.Any(), gomock.Any(), bookingModel.ModuleFood, bookingID,
			bookingModel.AdminCancellableStatuses(), bookingModel.StatusCancelled, adminID, gomock.Any()).Return(int64(1), nil)
		f.refunds.EXPECT().CreateForBookingTx(gomock.Any(), gomock.Any(), "FOOD", bookingID, adminID).
			Return(&refundModel.Refund{ID: "ref-1", RefundStatus: refundModel.StatusPending}, nil)
		f.outbox.EXPECT().RecordTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.AdminCancel(contextOf(adminID), dto.AdminCancelRequest{Module: "FOOD", BookingID: bookingID, ReasonCode: "WEATHER"})

		assert.NoError(t, err)
		assert.NotNil(t, res.Refund)
	})

	t.Run("user reason is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(epassRecord(bookingModel.StatusBooked), nil)
		f.repo.EXPECT().FindReason(gomock.Any(), gomock.Any()).
			Return(model.Reason{ID: reasonID, InitiatedBy: model.InitiatedByUser}, nil)

		_, err := f.svc.AdminCancel(contextOf(adminID), dto.AdminCancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: "CHANGE_OF_PLANS"})

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().FindRecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Record{}, nil)

		_, err := f.svc.AdminCancel(contextOf(adminID), dto.AdminCancelRequest{Module: "EPASS", BookingID: bookingID, ReasonCode: "WEATHER"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCancellationService_ListReasons(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().ListReasons(gomock.Any(), model.InitiatedByUser).Return([]model.Reason{
		{ReasonCode: "CHANGE_OF_PLANS", Description: "Change of plans"},
		{ReasonCode: "HEALTH", Description: "Health reasons"},
	}, nil)

	res, err := f.svc.ListReasons(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "CHANGE_OF_PLANS", res[0].ReasonCode)
}
