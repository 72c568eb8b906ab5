package model

import (
	"time"
	"visitorpass/shared/model"
)

const (
	TableEntry = "entry_slots"
	TableFood  = "food_slots"

	EntityEntry = "entry_slot"
	EntityFood  = "food_slot"

	FieldID        = "id"
	FieldSlotDate  = "slot_date"
	FieldStartTime = "start_time"
	FieldIsActive  = "is_active"
	FieldMealType  = "meal_type"
)

const (
	MealTypeFree = "FREE"
	MealTypePaid = "PAID"
)

// Kind selects which capacity counter a reservation touches.
type Kind string

const (
	KindEntry Kind = "entry"
	KindFood  Kind = "food"
)

type EntrySlot struct {
	ID          string    `db:"id"`
	SlotDate    time.Time `db:"slot_date"`
	StartTime   string    `db:"start_time"`
	EndTime     string    `db:"end_time"`
	MaxCapacity int       `db:"max_capacity"`
	BookedCount int       `db:"booked_count"`
	IsActive    bool      `db:"is_active"`
	model.Metadata
}

type FoodSlot struct {
	ID          string    `db:"id"`
	SlotDate    time.Time `db:"slot_date"`
	StartTime   string    `db:"start_time"`
	EndTime     string    `db:"end_time"`
	MealType    string    `db:"meal_type"`
	MaxCapacity int       `db:"max_capacity"`
	BookedCount int       `db:"booked_count"`
	IsActive    bool      `db:"is_active"`
	model.Metadata
}

func (s FoodSlot) IsFree() bool {
	return s.MealType == MealTypeFree
}
