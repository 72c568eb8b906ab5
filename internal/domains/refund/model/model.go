package model

import (
	"time"
	"visitorpass/shared/model"
)

const (
	TableName  = "refunds"
	EntityName = "refund"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldPaymentID    = "payment_id"
	FieldBookingID    = "booking_id"
	FieldModule       = "module"
	FieldRefundStatus = "refund_status"
	FieldProcessedAt  = "processed_at"
	FieldCreatedAt    = "created_at"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusSuccess   = "SUCCESS"
)

type Refund struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	PaymentID    string     `db:"payment_id"`
	BookingID    string     `db:"booking_id"`
	Module       string     `db:"module"`
	Amount       float64    `db:"amount"`
	RefundStatus string     `db:"refund_status"`
	ProcessedAt  *time.Time `db:"processed_at"`
	model.Metadata
}

// Settled reports whether the money has left, by either the admin or the gateway path.
func (r Refund) Settled() bool {
	return r.RefundStatus == StatusCompleted || r.RefundStatus == StatusSuccess
}
