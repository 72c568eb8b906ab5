package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"visitorpass/infras/otel/mocks"
	bookingMocks "visitorpass/internal/domains/booking/mocks"
	bookingModel "visitorpass/internal/domains/booking/model"
	cancellationMocks "visitorpass/internal/domains/cancellation/mocks"
	cancellationModel "visitorpass/internal/domains/cancellation/model"
	"visitorpass/internal/domains/dashboard/service"
	paymentMocks "visitorpass/internal/domains/payment/mocks"
	paymentModel "visitorpass/internal/domains/payment/model"
	paymentDto "visitorpass/internal/domains/payment/model/dto"
	refundMocks "visitorpass/internal/domains/refund/mocks"
	refundModel "visitorpass/internal/domains/refund/model"
	refundDto "visitorpass/internal/domains/refund/model/dto"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	"visitorpass/shared/timezone"
)

const (
	userID    = "6f1c7a52-0d4e-4b8a-9a53-0f5c2d9e1a11"
	otherID   = "0b8d2c11-7e3f-4a9b-8c6d-5e4f3a2b1c00"
	bookingID = "9c8b7a65-4d3e-4f2a-9b1c-0d9e8f7a6b5c"
)

type fixture struct {
	svc           service.Dashboard
	bookings      *bookingMocks.MockBooking
	payments      *paymentMocks.MockPayment
	refunds       *refundMocks.MockRefund
	cancellations *cancellationMocks.MockCancellation
	paymentSvc    *paymentMocks.MockPaymentService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		bookings:      bookingMocks.NewMockBooking(ctrl),
		payments:      paymentMocks.NewMockPayment(ctrl),
		refunds:       refundMocks.NewMockRefund(ctrl),
		cancellations: cancellationMocks.NewMockCancellation(ctrl),
		paymentSvc:    paymentMocks.NewMockPaymentService(ctrl),
	}

	f.svc = service.New(f.bookings, f.payments, f.refunds, f.cancellations, f.paymentSvc, mocks.NewOtel())

	return f
}

func contextWithRole(role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func day(offset int) *time.Time {
	d := timezone.Now().AddDate(0, 0, offset)
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)

	return &d
}

func TestDashboardService_Overview(t *testing.T) {
	records := []bookingModel.Record{
		{ID: "e1", Module: bookingModel.ModuleEpass, Status: bookingModel.StatusBooked, Date: day(10)},
		{ID: "e2", Module: bookingModel.ModuleEpass, Status: bookingModel.StatusConfirmed, Date: day(3)},
		{ID: "e3", Module: bookingModel.ModuleEpass, Status: bookingModel.StatusCancelled, Date: day(1)},
		{ID: "e4", Module: bookingModel.ModuleEpass, Status: bookingModel.StatusBooked, Date: day(-2)},
		{ID: "f1", Module: bookingModel.ModuleFood, Status: bookingModel.StatusBooked, Date: day(3)},
		{ID: "d1", Module: bookingModel.ModuleEcoFee, Status: bookingModel.StatusDeclared},
	}

	payments := paymentDto.PaymentsResponse{
		{ID: "p1", Amount: 50, PaymentStatus: paymentModel.StatusSuccess},
		{ID: "p2", Amount: 300, PaymentStatus: paymentModel.StatusSuccess, Refunds: refundDto.RefundsResponse{
			{ID: "r1", Amount: 300, RefundStatus: refundModel.StatusSuccess},
		}},
		{ID: "p3", Amount: 20, PaymentStatus: paymentModel.StatusSuccess, Refunds: refundDto.RefundsResponse{
			{ID: "r2", Amount: 20, RefundStatus: refundModel.StatusPending},
		}},
		{ID: "p4", Amount: 15, PaymentStatus: paymentModel.StatusSuccess, Refunds: refundDto.RefundsResponse{
			{ID: "r3", Amount: 15, RefundStatus: refundModel.StatusCompleted},
		}},
	}

	tests := []struct {
		name      string
		role      string
		records   []bookingModel.Record
		wantAdmin bool
	}{
		{name: "visitor", role: constant.RoleUser, records: records},
		{name: "administrator", role: constant.RoleAdmin, records: records, wantAdmin: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.bookings.EXPECT().ListRecords(gomock.Any(), userID, bookingModel.Modules()).Return(tt.records, nil)
			f.paymentSvc.EXPECT().ListMine(gomock.Any()).Return(payments, nil)

			res, err := f.svc.Overview(contextWithRole(tt.role))

			assert.NoError(t, err)
			assert.Equal(t, 5, res.TotalBookings)
			assert.Equal(t, 1, res.CancelledBookings)
			assert.Equal(t, 4, res.ActiveBookings)
			assert.Equal(t, 4, res.Breakdown[string(bookingModel.ModuleEpass)].Total)
			assert.Equal(t, 1, res.Breakdown[string(bookingModel.ModuleFood)].Active)
			assert.Equal(t, float64(385), res.TotalPaid)
			assert.Equal(t, float64(300), res.TotalRefunded)
			assert.True(t, res.EcoFeePaid)
			assert.Equal(t, tt.wantAdmin, res.IsAdmin)

			if assert.NotNil(t, res.UpcomingVisit) {
				assert.Equal(t, day(3).Format(constant.DayFormat), *res.UpcomingVisit)
			}
		})
	}
}

func TestDashboardService_Overview_TodayIsUpcoming(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().ListRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Record{
		{ID: "e1", Module: bookingModel.ModuleEpass, Status: bookingModel.StatusBooked, Date: day(0)},
	}, nil)
	f.paymentSvc.EXPECT().ListMine(gomock.Any()).Return(paymentDto.PaymentsResponse{}, nil)

	res, err := f.svc.Overview(contextWithRole(constant.RoleUser))

	assert.NoError(t, err)
	assert.False(t, res.EcoFeePaid)
	assert.Equal(t, day(0).Format(constant.DayFormat), *res.UpcomingVisit)
}

func TestDashboardService_Overview_Empty(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().ListRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Record{}, nil)
	f.paymentSvc.EXPECT().ListMine(gomock.Any()).Return(paymentDto.PaymentsResponse{}, nil)

	res, err := f.svc.Overview(contextWithRole(constant.RoleUser))

	assert.NoError(t, err)
	assert.Zero(t, res.TotalBookings)
	assert.Nil(t, res.UpcomingVisit)
	assert.NotNil(t, res.Breakdown)
}

func TestDashboardService_Bookings(t *testing.T) {
	f := newFixture(t)
	amount := 300.0

	f.bookings.EXPECT().ListRecords(gomock.Any(), userID, bookingModel.Modules()).Return([]bookingModel.Record{
		{ID: "a1", Module: bookingModel.ModuleAccommodation, Status: bookingModel.StatusBooked, Amount: amount, Date: day(5)},
		{ID: "e1", Module: bookingModel.ModuleEpass, Status: bookingModel.StatusCancelled, Date: day(2)},
	}, nil)

	res, err := f.svc.Bookings(contextWithRole(constant.RoleUser))

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "ACCOMMODATION", res[0].Module)
	assert.Equal(t, amount, res[0].Meta.Amount)
	assert.NotNil(t, res[0].Meta.Date)
}

func TestDashboardService_Payments(t *testing.T) {
	f := newFixture(t)

	f.paymentSvc.EXPECT().ListMine(gomock.Any()).Return(paymentDto.PaymentsResponse{{ID: "p1"}}, nil)

	res, err := f.svc.Payments(contextWithRole(constant.RoleUser))

	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestDashboardService_BookingDetail(t *testing.T) {
	reasonCode := "CHANGE_OF_PLANS"
	description := "Change of plans"

	tests := []struct {
		name             string
		module           string
		setupMock        func(f fixture)
		wantCode         int
		wantPayment      bool
		wantRefund       bool
		wantCancellation bool
	}{
		{
			name:   "cancelled paid booking",
			module: "epass",
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecord(gomock.Any(), bookingModel.ModuleEpass, bookingID).
					Return(bookingModel.Record{ID: bookingID, UserID: userID, Module: bookingModel.ModuleEpass, Status: bookingModel.StatusCancelled}, nil)
				f.payments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paymentModel.Payment{ID: "p1", Amount: 50}, nil)
				f.refunds.EXPECT().Get(gomock.Any(), gomock.Any()).Return(refundModel.Refund{ID: "r1", PaymentID: "p1", RefundStatus: refundModel.StatusPending}, nil)
				f.cancellations.EXPECT().GetDetail(gomock.Any(), "EPASS", bookingID).
					Return(cancellationModel.CancellationDetail{ID: "c1", ReasonCode: &reasonCode, Description: &description}, nil)
			},
			wantPayment:      true,
			wantRefund:       true,
			wantCancellation: true,
		},
		{
			name:   "unpaid active booking",
			module: "FOOD",
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecord(gomock.Any(), bookingModel.ModuleFood, bookingID).
					Return(bookingModel.Record{ID: bookingID, UserID: userID, Module: bookingModel.ModuleFood, Status: bookingModel.StatusBooked}, nil)
				f.payments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paymentModel.Payment{}, nil)
				f.cancellations.EXPECT().GetDetail(gomock.Any(), gomock.Any(), gomock.Any()).Return(cancellationModel.CancellationDetail{}, nil)
			},
		},
		{
			name:      "unknown module",
			module:    "PARKING",
			setupMock: func(f fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "booking of another visitor",
			module: "EPASS",
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecord(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(bookingModel.Record{ID: bookingID, UserID: otherID}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "store error",
			module: "EPASS",
			setupMock: func(f fixture) {
				f.bookings.EXPECT().FindRecord(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Record{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.BookingDetail(contextWithRole(constant.RoleUser), tt.module, bookingID)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookingID, res.Booking.ID)
			assert.Equal(t, tt.wantPayment, res.Payment != nil)
			assert.Equal(t, tt.wantRefund, res.Refund != nil)
			assert.Equal(t, tt.wantCancellation, res.Cancellation != nil)

			if tt.wantCancellation {
				assert.Equal(t, reasonCode, *res.Cancellation.ReasonCode)
			}
		})
	}
}
