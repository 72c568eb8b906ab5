package model

import (
	"math"
	"time"
	"visitorpass/shared/model"
)

const (
	TableName  = "accommodations"
	EntityName = "accommodation"

	FieldID                = "id"
	FieldName              = "name"
	FieldAccommodationType = "accommodation_type"
	FieldIsActive          = "is_active"
)

const hoursPerDay = 24

type Accommodation struct {
	ID                string  `db:"id"`
	Name              string  `db:"name"`
	AccommodationType string  `db:"accommodation_type"`
	Capacity          int     `db:"capacity"`
	PricePerDay       float64 `db:"price_per_day"`
	IsActive          bool    `db:"is_active"`
	model.Metadata
}

// Days counts the nights between two calendar dates. Both values are expected at midnight UTC.
func Days(checkIn, checkOut time.Time) int {
	return int(math.Round(checkOut.Sub(checkIn).Hours() / hoursPerDay))
}

// Price returns the stay length and its total cost.
func (a Accommodation) Price(checkIn, checkOut time.Time) (int, float64) {
	days := Days(checkIn, checkOut)

	return days, float64(days) * a.PricePerDay
}
