package dto

import (
	"time"
	"visitorpass/internal/domains/accommodation/model"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/timezone"

	"github.com/google/uuid"
)

type CreateAccommodationRequest struct {
	Name              string  `json:"name"               validate:"required,max=255"`
	AccommodationType string  `json:"accommodation_type" validate:"required,max=100"`
	Capacity          int     `json:"capacity"           validate:"required,gt=0"`
	PricePerDay       float64 `json:"price_per_day"      validate:"gte=0"`
}

func (r CreateAccommodationRequest) ToModel(user string) model.Accommodation {
	return model.Accommodation{
		ID:                uuid.NewString(),
		Name:              r.Name,
		AccommodationType: r.AccommodationType,
		Capacity:          r.Capacity,
		PricePerDay:       r.PricePerDay,
		IsActive:          true,
		Metadata:          gModel.NewMetadata(user, timezone.Now()),
	}
}

type ListAccommodationsRequest struct {
	Type string `json:"type" validate:"omitempty,max=100"`
}

type AccommodationResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	AccommodationType string  `json:"accommodation_type"`
	Capacity          int     `json:"capacity"`
	PricePerDay       float64 `json:"price_per_day"`
	IsActive          bool    `json:"is_active"`
}

func (r *AccommodationResponse) FromModel(m model.Accommodation) {
	r.ID = m.ID
	r.Name = m.Name
	r.AccommodationType = m.AccommodationType
	r.Capacity = m.Capacity
	r.PricePerDay = m.PricePerDay
	r.IsActive = m.IsActive
}

type AccommodationsResponse []AccommodationResponse

func (r *AccommodationsResponse) FromModels(models []model.Accommodation) {
	*r = make(AccommodationsResponse, 0, len(models))

	for _, m := range models {
		var res AccommodationResponse

		res.FromModel(m)
		*r = append(*r, res)
	}
}

type ToggleResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

type QuoteRequest struct {
	AccommodationID string `json:"accommodation_id" validate:"required,uuid"`
	CheckInDate     string `json:"check_in_date"    validate:"required,date"`
	CheckOutDate    string `json:"check_out_date"   validate:"required,date"`
}

// Dates parses both days at midnight UTC so day arithmetic is not skewed by DST.
func (r QuoteRequest) Dates() (time.Time, time.Time, error) {
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

type QuoteResponse struct {
	AccommodationID string  `json:"accommodation_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	Days            int     `json:"days"`
	PricePerDay     float64 `json:"price_per_day"`
	TotalAmount     float64 `json:"total_amount"`
}
