package dto

import (
	bookingModel "visitorpass/internal/domains/booking/model"
	cancellationDto "visitorpass/internal/domains/cancellation/model/dto"
	paymentDto "visitorpass/internal/domains/payment/model/dto"
	refundDto "visitorpass/internal/domains/refund/model/dto"
	"visitorpass/shared/constant"
	"visitorpass/shared/timezone"
)

type ModuleStats struct {
	Total     int `json:"total"`
	Cancelled int `json:"cancelled"`
	Active    int `json:"active"`
}

type OverviewResponse struct {
	TotalPaid         float64                `json:"total_paid"`
	TotalRefunded     float64                `json:"total_refunded"`
	TotalBookings     int                    `json:"total_bookings"`
	CancelledBookings int                    `json:"cancelled_bookings"`
	ActiveBookings    int                    `json:"active_bookings"`
	Breakdown         map[string]ModuleStats `json:"breakdown"`
	UpcomingVisit     *string                `json:"upcomingVisit"`
	EcoFeePaid        bool                   `json:"ecoFeePaid"`
	IsAdmin           bool                   `json:"is_admin"`
}

// Count adds one booking row to the totals and its module's breakdown.
func (r *OverviewResponse) Count(record bookingModel.Record) {
	if r.Breakdown == nil {
		r.Breakdown = map[string]ModuleStats{}
	}

	stats := r.Breakdown[string(record.Module)]
	stats.Total++
	r.TotalBookings++

	if record.Status == bookingModel.StatusCancelled {
		stats.Cancelled++
		r.CancelledBookings++
	} else {
		stats.Active++
		r.ActiveBookings++
	}

	r.Breakdown[string(record.Module)] = stats
}

type BookingMeta struct {
	SlotID   *string `json:"slot_id,omitempty"`
	MealType *string `json:"meal_type,omitempty"`
	Amount   float64 `json:"amount"`
	Date     *string `json:"date,omitempty"`
}

type BookingResponse struct {
	ID        string      `json:"id"`
	Module    string      `json:"module"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at"`
	Meta      BookingMeta `json:"meta"`
}

func (r *BookingResponse) FromRecord(m bookingModel.Record) {
	r.ID = m.ID
	r.Module = string(m.Module)
	r.Status = m.Status
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
	r.Meta = BookingMeta{
		SlotID:   m.SlotID,
		MealType: m.MealType,
		Amount:   m.Amount,
	}

	if m.Date != nil {
		date := m.Date.Format(constant.DayFormat)
		r.Meta.Date = &date
	}
}

type BookingsResponse []BookingResponse

func (r *BookingsResponse) FromRecords(records []bookingModel.Record) {
	*r = make(BookingsResponse, 0, len(records))

	for _, record := range records {
		var res BookingResponse

		res.FromRecord(record)
		*r = append(*r, res)
	}
}

type BookingDetailResponse struct {
	Booking      BookingResponse                       `json:"booking"`
	Payment      *paymentDto.PaymentResponse           `json:"payment"`
	Refund       *refundDto.RefundResponse             `json:"refund"`
	Cancellation *cancellationDto.CancellationResponse `json:"cancellation"`
}

// PaymentsResponse is the payment history shown on the dashboard.
type PaymentsResponse = paymentDto.PaymentsResponse
