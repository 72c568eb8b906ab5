package dto

import (
	"visitorpass/internal/domains/slot/model"
	"visitorpass/shared/constant"
	gModel "visitorpass/shared/model"
	"visitorpass/shared/timezone"

	"github.com/google/uuid"
)

type CreateEntrySlotRequest struct {
	SlotDate    string `json:"slot_date"    validate:"required,date"`
	StartTime   string `json:"start_time"   validate:"required,clock"`
	EndTime     string `json:"end_time"     validate:"required,clock"`
	MaxCapacity int    `json:"max_capacity" validate:"required,gt=0"`
}

func (r CreateEntrySlotRequest) ToModel(user string) (model.EntrySlot, error) {
	date, err := timezone.ParseDay(r.SlotDate)
	if err != nil {
		return model.EntrySlot{}, err //nolint:wrapcheck
	}

	return model.EntrySlot{
		ID:          uuid.NewString(),
		SlotDate:    date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		MaxCapacity: r.MaxCapacity,
		IsActive:    true,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type CreateFoodSlotRequest struct {
	SlotDate    string `json:"slot_date"    validate:"required,date"`
	StartTime   string `json:"start_time"   validate:"required,clock"`
	EndTime     string `json:"end_time"     validate:"required,clock"`
	MealType    string `json:"meal_type"    validate:"required,oneof=FREE PAID"`
	MaxCapacity int    `json:"max_capacity" validate:"required,gt=0"`
}

func (r CreateFoodSlotRequest) ToModel(user string) (model.FoodSlot, error) {
	date, err := timezone.ParseDay(r.SlotDate)
	if err != nil {
		return model.FoodSlot{}, err //nolint:wrapcheck
	}

	return model.FoodSlot{
		ID:          uuid.NewString(),
		SlotDate:    date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		MealType:    r.MealType,
		MaxCapacity: r.MaxCapacity,
		IsActive:    true,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}, nil
}

type EntrySlotResponse struct {
	ID          string `json:"id"`
	SlotDate    string `json:"slot_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MaxCapacity int    `json:"max_capacity"`
	BookedCount int    `json:"booked_count"`
	Available   int    `json:"available"`
	IsActive    bool   `json:"is_active"`
}

func (r *EntrySlotResponse) FromModel(m model.EntrySlot) {
	r.ID = m.ID
	r.SlotDate = m.SlotDate.Format(constant.DayFormat)
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.MaxCapacity = m.MaxCapacity
	r.BookedCount = m.BookedCount
	r.Available = max(m.MaxCapacity-m.BookedCount, 0)
	r.IsActive = m.IsActive
}

type EntrySlotsResponse []EntrySlotResponse

func (r *EntrySlotsResponse) FromModels(models []model.EntrySlot) {
	*r = make(EntrySlotsResponse, 0, len(models))

	for _, m := range models {
		var slot EntrySlotResponse

		slot.FromModel(m)
		*r = append(*r, slot)
	}
}

type FoodSlotResponse struct {
	ID          string `json:"id"`
	SlotDate    string `json:"slot_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	MealType    string `json:"meal_type"`
	MaxCapacity int    `json:"max_capacity"`
	BookedCount int    `json:"booked_count"`
	Available   int    `json:"available"`
	IsActive    bool   `json:"is_active"`
}

func (r *FoodSlotResponse) FromModel(m model.FoodSlot) {
	r.ID = m.ID
	r.SlotDate = m.SlotDate.Format(constant.DayFormat)
	r.StartTime = m.StartTime
	r.EndTime = m.EndTime
	r.MealType = m.MealType
	r.MaxCapacity = m.MaxCapacity
	r.BookedCount = m.BookedCount
	r.Available = max(m.MaxCapacity-m.BookedCount, 0)
	r.IsActive = m.IsActive
}

type FoodSlotsResponse []FoodSlotResponse

func (r *FoodSlotsResponse) FromModels(models []model.FoodSlot) {
	*r = make(FoodSlotsResponse, 0, len(models))

	for _, m := range models {
		var slot FoodSlotResponse

		slot.FromModel(m)
		*r = append(*r, slot)
	}
}

type ToggleResponse struct {
	ID       string `json:"id"`
	IsActive bool   `json:"is_active"`
}

type ListEntrySlotsRequest struct {
	Date string `json:"date" validate:"omitempty,date"`
}

type ListFoodSlotsRequest struct {
	Date     string `json:"date"      validate:"omitempty,date"`
	MealType string `json:"meal_type" validate:"omitempty,oneof=FREE PAID"`
}
