package model

import "visitorpass/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldModule        = "module"
	FieldBookingID     = "booking_id"
	FieldPaymentStatus = "payment_status"
	FieldCreatedAt     = "created_at"
)

const (
	StatusSuccess = "SUCCESS"
	MethodCard    = "CARD"
	GatewayMock   = "MOCK"
)

type Payment struct {
	ID            string  `db:"id"`
	UserID        string  `db:"user_id"`
	Module        string  `db:"module"`
	BookingID     string  `db:"booking_id"`
	Amount        float64 `db:"amount"`
	PaymentStatus string  `db:"payment_status"`
	PaymentMethod string  `db:"payment_method"`
	Gateway       string  `db:"gateway"`
	model.Metadata
}
