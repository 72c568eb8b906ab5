package dto

import (
	"visitorpass/internal/domains/eco/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/timezone"
)

type ItemRequest struct {
	PlasticType string `json:"plastic_type" validate:"required"`
	Quantity    int    `json:"quantity"     validate:"required,gt=0"`
}

type DeclareRequest struct {
	EpassBookingID string        `json:"epass_booking_id" validate:"required,uuid"`
	Items          []ItemRequest `json:"items"            validate:"required,min=1,dive"`
}

type ItemResponse struct {
	ID          string  `json:"id"`
	PlasticType string  `json:"plastic_type"`
	Quantity    int     `json:"quantity"`
	FeePerItem  float64 `json:"fee_per_item"`
	Subtotal    float64 `json:"subtotal"`
}

type DeclarationResponse struct {
	ID             string         `json:"id"`
	EpassBookingID string         `json:"epass_booking_id"`
	TotalFee       float64        `json:"total_fee"`
	Status         string         `json:"status"`
	CreatedAt      string         `json:"created_at"`
	Items          []ItemResponse `json:"items"`
}

func (r *DeclarationResponse) FromModel(declaration model.Declaration, items []model.Item) {
	r.ID = declaration.ID
	r.EpassBookingID = declaration.EpassBookingID
	r.TotalFee = declaration.TotalFee
	r.Status = declaration.Status
	r.CreatedAt = timezone.Format(declaration.CreatedAt, constant.DateFormat)
	r.Items = make([]ItemResponse, 0, len(items))

	for _, item := range items {
		r.Items = append(r.Items, ItemResponse{
			ID:          item.ID,
			PlasticType: item.PlasticType,
			Quantity:    item.Quantity,
			FeePerItem:  item.FeePerItem,
			Subtotal:    item.Subtotal,
		})
	}
}

type DeclaredEvent struct {
	DeclarationID  string  `json:"declaration_id"`
	EpassBookingID string  `json:"epass_booking_id"`
	UserID         string  `json:"user_id"`
	TotalFee       float64 `json:"total_fee"`
}
