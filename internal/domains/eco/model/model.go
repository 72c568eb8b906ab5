package model

import (
	"strings"
	"visitorpass/shared/model"
)

const (
	TableDeclaration  = "eco_declarations"
	TableItem         = "eco_declaration_items"
	EntityDeclaration = "eco_declaration"
	EntityItem        = "eco_declaration_item"

	FieldID               = "id"
	FieldUserID           = "user_id"
	FieldEpassBookingID   = "epass_booking_id"
	FieldEcoDeclarationID = "eco_declaration_id"
)

const (
	PlasticBottle    = "BOTTLE"
	PlasticBag       = "BAG"
	PlasticContainer = "CONTAINER"
)

var fees = map[string]float64{
	PlasticBottle:    10,
	PlasticBag:       5,
	PlasticContainer: 15,
}

// FeeFor returns the per-item fee of a plastic type, matched case-insensitively.
func FeeFor(plasticType string) (string, float64, bool) {
	key := strings.ToUpper(strings.TrimSpace(plasticType))
	fee, ok := fees[key]

	return key, fee, ok
}

type Declaration struct {
	ID             string  `db:"id"`
	UserID         string  `db:"user_id"`
	EpassBookingID string  `db:"epass_booking_id"`
	TotalFee       float64 `db:"total_fee"`
	Status         string  `db:"status"`
	model.Metadata
}

type Item struct {
	ID               string  `db:"id"`
	EcoDeclarationID string  `db:"eco_declaration_id"`
	PlasticType      string  `db:"plastic_type"`
	Quantity         int     `db:"quantity"`
	FeePerItem       float64 `db:"fee_per_item"`
	Subtotal         float64 `db:"subtotal"`
	model.Metadata
}
