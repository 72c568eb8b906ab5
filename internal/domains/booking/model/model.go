package model

import (
	"time"
	"visitorpass/shared/model"
)

const (
	TableEpass          = "epass_bookings"
	TableFood           = "food_bookings"
	TableAccommodation  = "accommodation_bookings"
	TableEcoDeclaration = "eco_declarations"

	TableEntrySlots     = "entry_slots"
	TableFoodSlots      = "food_slots"
	TableAccommodations = "accommodations"

	EntityEpass         = "epass_booking"
	EntityFood          = "food_booking"
	EntityAccommodation = "accommodation_booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldStatus          = "status"
	FieldSlotID          = "slot_id"
	FieldFoodSlotID      = "food_slot_id"
	FieldEpassBookingID  = "epass_booking_id"
	FieldAccommodationID = "accommodation_id"
	FieldVisitDate       = "visit_date"
	FieldCreatedAt       = "created_at"
)

type EpassBooking struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	SlotID    string    `db:"slot_id"`
	VisitDate time.Time `db:"visit_date"`
	Status    string    `db:"status"`
	QRCode    string    `db:"qr_code"`
	model.Metadata
}

type FoodBooking struct {
	ID             string  `db:"id"`
	UserID         string  `db:"user_id"`
	FoodSlotID     string  `db:"food_slot_id"`
	EpassBookingID *string `db:"epass_booking_id"`
	Status         string  `db:"status"`
	QRCode         string  `db:"qr_code"`
	model.Metadata
}

type AccommodationBooking struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	AccommodationID string    `db:"accommodation_id"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	CheckInDeadline time.Time `db:"check_in_deadline"`
	TotalAmount     float64   `db:"total_amount"`
	Status          string    `db:"status"`
	QRCode          string    `db:"qr_code"`
	model.Metadata
}

// EpassBookingDetail is an e-pass joined with its entry slot window.
type EpassBookingDetail struct {
	ID        string    `db:"id"`
	SlotID    string    `db:"slot_id"`
	VisitDate time.Time `db:"visit_date"`
	Status    string    `db:"status"`
	QRCode    string    `db:"qr_code"`
	CreatedAt time.Time `db:"created_at"`
	StartTime string    `db:"start_time"  table:"entry_slots"`
	EndTime   string    `db:"end_time"    table:"entry_slots"`
}

func (EpassBookingDetail) GetJoinQuery() string {
	return "JOIN entry_slots ON entry_slots.id = epass_bookings.slot_id"
}

// FoodBookingDetail is a food booking joined with its food slot.
type FoodBookingDetail struct {
	ID             string    `db:"id"`
	FoodSlotID     string    `db:"food_slot_id"`
	EpassBookingID *string   `db:"epass_booking_id"`
	Status         string    `db:"status"`
	QRCode         string    `db:"qr_code"`
	CreatedAt      time.Time `db:"created_at"`
	SlotDate       time.Time `db:"slot_date"  table:"food_slots"`
	StartTime      string    `db:"start_time" table:"food_slots"`
	EndTime        string    `db:"end_time"   table:"food_slots"`
	MealType       string    `db:"meal_type"  table:"food_slots"`
}

func (FoodBookingDetail) GetJoinQuery() string {
	return "JOIN food_slots ON food_slots.id = food_bookings.food_slot_id"
}

// AccommodationBookingDetail is a stay joined with the accommodation it reserves.
type AccommodationBookingDetail struct {
	ID                string    `db:"id"`
	AccommodationID   string    `db:"accommodation_id"`
	CheckInDate       time.Time `db:"check_in_date"`
	CheckOutDate      time.Time `db:"check_out_date"`
	CheckInDeadline   time.Time `db:"check_in_deadline"`
	TotalAmount       float64   `db:"total_amount"`
	Status            string    `db:"status"`
	QRCode            string    `db:"qr_code"`
	CreatedAt         time.Time `db:"created_at"`
	Name              string    `db:"name"               table:"accommodations"`
	AccommodationType string    `db:"accommodation_type" table:"accommodations"`
}

func (AccommodationBookingDetail) GetJoinQuery() string {
	return "JOIN accommodations ON accommodations.id = accommodation_bookings.accommodation_id"
}

// Record is the module-independent view of any booking row used by the workflows.
type Record struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	Module    Module     `db:"module"`
	Status    string     `db:"status"`
	SlotID    *string    `db:"slot_id"`
	MealType  *string    `db:"meal_type"`
	Amount    float64    `db:"amount"`
	Date      *time.Time `db:"date"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r Record) Exists() bool {
	return r.ID != ""
}

func (r Record) OwnedBy(user string) bool {
	return r.Exists() && r.UserID == user
}
