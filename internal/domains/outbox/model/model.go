package model

import (
	"time"
	"visitorpass/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "outbox_events"
	EntityName = "outbox_event"

	FieldID = "id"
)

const (
	AggregateBooking = "booking"
	AggregatePayment = "payment"
	AggregateRefund  = "refund"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventEcoDeclared      = "eco.declared"
	EventPaymentConfirmed = "payment.confirmed"
	EventRefundCreated    = "refund.created"
	EventRefundCompleted  = "refund.completed"
	EventRefundSettled    = "refund.settled"
)

type Event struct {
	ID            string         `db:"id"`
	AggregateType string         `db:"aggregate_type"`
	AggregateID   string         `db:"aggregate_id"`
	EventType     string         `db:"event_type"`
	Payload       types.JSONText `db:"payload"`
	Attempts      int            `db:"attempts"`
	LastError     *string        `db:"last_error"`
	PublishedAt   *time.Time     `db:"published_at"`
	model.Metadata
}
