package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"
	"fmt"
	"slices"
	"visitorpass/infras/otel"
	bookingModel "visitorpass/internal/domains/booking/model"
	bookingRepo "visitorpass/internal/domains/booking/repository"
	cancellationDto "visitorpass/internal/domains/cancellation/model/dto"
	cancellationRepo "visitorpass/internal/domains/cancellation/repository"
	"visitorpass/internal/domains/dashboard/model/dto"
	paymentModel "visitorpass/internal/domains/payment/model"
	paymentDto "visitorpass/internal/domains/payment/model/dto"
	paymentRepo "visitorpass/internal/domains/payment/repository"
	paymentService "visitorpass/internal/domains/payment/service"
	refundModel "visitorpass/internal/domains/refund/model"
	refundDto "visitorpass/internal/domains/refund/model/dto"
	refundRepo "visitorpass/internal/domains/refund/repository"
	"visitorpass/permissions"
	"visitorpass/shared"
	"visitorpass/shared/constant"
	"visitorpass/shared/failure"
	"visitorpass/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Overview(ctx context.Context) (dto.OverviewResponse, error)
	Bookings(ctx context.Context) (dto.BookingsResponse, error)
	Payments(ctx context.Context) (paymentDto.PaymentsResponse, error)
	BookingDetail(ctx context.Context, module, id string) (dto.BookingDetailResponse, error)
}

type serviceImpl struct {
	bookingRepo      bookingRepo.Booking
	paymentRepo      paymentRepo.Payment
	refundRepo       refundRepo.Refund
	cancellationRepo cancellationRepo.Cancellation
	payment          paymentService.Payment
	otel             otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	paymentRepo paymentRepo.Payment,
	refundRepo refundRepo.Refund,
	cancellationRepo cancellationRepo.Cancellation,
	payment paymentService.Payment,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		bookingRepo:      bookingRepo,
		paymentRepo:      paymentRepo,
		refundRepo:       refundRepo,
		cancellationRepo: cancellationRepo,
		payment:          payment,
		otel:             otel,
	}
}

func (s *serviceImpl) Overview(ctx context.Context) (res dto.OverviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Overview")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	records, err := s.bookingRepo.ListRecords(ctx, user, bookingModel.Modules())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	payments, err := s.payment.ListMine(ctx)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	counted := bookingModel.BookingModules()
	today := timezone.Today()
	res.Breakdown = map[string]dto.ModuleStats{}

	for _, record := range records {
		if record.Module == bookingModel.ModuleEcoFee {
			res.EcoFeePaid = true

			continue
		}

		if !slices.Contains(counted, record.Module) {
			continue
		}

		res.Count(record)

		if record.Module != bookingModel.ModuleEpass || record.Status == bookingModel.StatusCancelled || record.Date == nil {
			continue
		}

		visit := timezone.Day(*record.Date)
		if visit >= today && (res.UpcomingVisit == nil || visit < *res.UpcomingVisit) {
			res.UpcomingVisit = &visit
		}
	}

	for _, payment := range payments {
		if payment.PaymentStatus == paymentModel.StatusSuccess {
			res.TotalPaid += payment.Amount
		}

		for _, refund := range payment.Refunds {
			// COMPLETED refunds are not settled yet.
			if refund.RefundStatus == refundModel.StatusSuccess {
				res.TotalRefunded += refund.Amount
			}
		}
	}

	res.IsAdmin = permissions.IsAdmin(role)

	return res, nil
}

func (s *serviceImpl) Bookings(ctx context.Context) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Bookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	records, err := s.bookingRepo.ListRecords(ctx, user, bookingModel.Modules())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromRecords(records)

	return res, nil
}

func (s *serviceImpl) Payments(ctx context.Context) (paymentDto.PaymentsResponse, error) {
	return s.payment.ListMine(ctx) //nolint:wrapcheck
}

func (s *serviceImpl) BookingDetail(ctx context.Context, rawModule, id string) (res dto.BookingDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.BookingDetail")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	module, err := bookingModel.ParseModule(rawModule)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	record, err := s.bookingRepo.FindRecord(ctx, module, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !record.OwnedBy(user) {
		return res, failure.BookingNotFound // nolint:wrapcheck
	}

	res.Booking.FromRecord(record)

	payment, err := s.paymentRepo.Get(ctx, paymentRepo.SuccessfulFor(string(module), record.ID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID != constant.Empty {
		res.Payment = &paymentDto.PaymentResponse{}
		res.Payment.FromModel(payment)

		refund, err := s.refundRepo.Get(ctx, shared.FilterByID(payment.ID, refundModel.FieldPaymentID, refundModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get refund")

			return res, fmt.Errorf("failed to get refund: %w", err)
		}

		if refund.ID != constant.Empty {
			res.Refund = &refundDto.RefundResponse{}
			res.Refund.FromModel(refund)
		}
	}

	cancellation, err := s.cancellationRepo.GetDetail(ctx, string(module), record.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cancellation")

		return res, fmt.Errorf("failed to get cancellation: %w", err)
	}

	if cancellation.ID != constant.Empty {
		res.Cancellation = &cancellationDto.CancellationResponse{}
		res.Cancellation.FromDetail(cancellation)
	}

	return res, nil
}
