package dto

import (
	"time"
	"visitorpass/internal/domains/booking/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/timezone"
)

type BookEpassRequest struct {
	SlotID string `json:"slot_id" validate:"required,uuid"`
}

type BookFoodRequest struct {
	FoodSlotID     string  `json:"food_slot_id"     validate:"required,uuid"`
	EpassBookingID *string `json:"epass_booking_id" validate:"omitempty,uuid"`
}

type BookAccommodationRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required,uuid"`
	CheckInDate     string `json:"check_in_date"    validate:"required,date"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,date"`
}

// Dates parses both days at midnight UTC.
func (r BookAccommodationRequest) Dates() (time.Time, time.Time, error) {
	checkIn, err := timezone.ParseDay(r.CheckInDate)
	if err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDay(r.CheckOutDate)
	if err != nil {
		return time.Time{}, time.Time{}, err //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

type EpassBookingResponse struct {
	ID        string `json:"id"`
	SlotID    string `json:"slot_id"`
	VisitDate string `json:"visit_date"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Status    string `json:"status"`
	QRCode    string `json:"qr_code"`
	CreatedAt string `json:"created_at"`
}

func (r *EpassBookingResponse) FromModel(m model.EpassBooking) {
	r.ID = m.ID
	r.SlotID = m.SlotID
	r.VisitDate = m.VisitDate.Format(constant.DayFormat)
	r.Status = m.Status
	r.QRCode = m.QRCode
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func (r *EpassBookingResponse) FromDetail(m model.EpassBookingDetail) {
	r.ID = m.ID
	r.SlotID = m.SlotID
	r.VisitDate = m.VisitDate.Format(constant.DayFormat)
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.Status = m.Status
	r.QRCode = m.QRCode
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type EpassBookingsResponse []EpassBookingResponse

func (r *EpassBookingsResponse) FromDetails(details []model.EpassBookingDetail) {
	*r = make(EpassBookingsResponse, 0, len(details))

	for _, d := range details {
		var res EpassBookingResponse

		res.FromDetail(d)
		*r = append(*r, res)
	}
}

type FoodBookingResponse struct {
	ID             string  `json:"id"`
	FoodSlotID     string  `json:"food_slot_id"`
	EpassBookingID *string `json:"epass_booking_id"`
	SlotDate       string  `json:"slot_date,omitempty"`
	StartTime      string  `json:"start_time,omitempty"`
	EndTime        string  `json:"end_time,omitempty"`
	MealType       string  `json:"meal_type,omitempty"`
	Status         string  `json:"status"`
	QRCode         string  `json:"qr_code"`
	CreatedAt      string  `json:"created_at"`
}

func (r *FoodBookingResponse) FromModel(m model.FoodBooking) {
	r.ID = m.ID
	r.FoodSlotID = m.FoodSlotID
	r.EpassBookingID = m.EpassBookingID
	r.Status = m.Status
	r.QRCode = m.QRCode
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func (r *FoodBookingResponse) FromDetail(m model.FoodBookingDetail) {
	r.ID = m.ID
	r.FoodSlotID = m.FoodSlotID
	r.EpassBookingID = m.EpassBookingID
	r.SlotDate = m.SlotDate.Format(constant.DayFormat)
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.MealType = m.MealType
	r.Status = m.Status
	r.QRCode = m.QRCode
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type FoodBookingsResponse []FoodBookingResponse

func (r *FoodBookingsResponse) FromDetails(details []model.FoodBookingDetail) {
	*r = make(FoodBookingsResponse, 0, len(details))

	for _, d := range details {
		var res FoodBookingResponse

		res.FromDetail(d)
		*r = append(*r, res)
	}
}

type AccommodationBookingResponse struct {
	ID                string  `json:"id"`
	AccommodationID   string  `json:"accommodation_id"`
	Name              string  `json:"name,omitempty"`
	AccommodationType string  `json:"accommodation_type,omitempty"`
	CheckInDate       string  `json:"check_in_date"`
	CheckOutDate      string  `json:"check_out_date"`
	CheckInDeadline   string  `json:"check_in_deadline"`
	TotalAmount       float64 `json:"total_amount"`
	Status            string  `json:"status"`
	QRCode            string  `json:"qr_code"`
	CreatedAt         string  `json:"created_at"`
}

func (r *AccommodationBookingResponse) FromModel(m model.AccommodationBooking) {
	r.ID = m.ID
	r.AccommodationID = m.AccommodationID
	r.CheckInDate = m.CheckInDate.Format(constant.DayFormat)
	r.CheckOutDate = m.CheckOutDate.Format(constant.DayFormat)
	r.CheckInDeadline = timezone.Format(m.CheckInDeadline, constant.DateFormat)
	r.TotalAmount = m.TotalAmount
	r.Status = m.Status
	r.QRCode = m.QRCode
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func (r *AccommodationBookingResponse) FromDetail(m model.AccommodationBookingDetail) {
	r.ID = m.ID
	r.AccommodationID = m.AccommodationID
	r.Name = m.Name
	r.AccommodationType = m.AccommodationType
	r.CheckInDate = m.CheckInDate.Format(constant.DayFormat)
	r.CheckOutDate = m.CheckOutDate.Format(constant.DayFormat)
	r.CheckInDeadline = timezone.Format(m.CheckInDeadline, constant.DateFormat)
	r.TotalAmount = m.TotalAmount
	r.Status = m.Status
	r.QRCode = m.QRCode
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type AccommodationBookingsResponse []AccommodationBookingResponse

func (r *AccommodationBookingsResponse) FromDetails(details []model.AccommodationBookingDetail) {
	*r = make(AccommodationBookingsResponse, 0, len(details))

	for _, d := range details {
		var res AccommodationBookingResponse

		res.FromDetail(d)
		*r = append(*r, res)
	}
}

// CreatedEvent is the payload of booking.created.
type CreatedEvent struct {
	BookingID string       `json:"booking_id"`
	Module    model.Module `json:"module"`
	UserID    string       `json:"user_id"`
	QRCode    string       `json:"qr_code"`
}
