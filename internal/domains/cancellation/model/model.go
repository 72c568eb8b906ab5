package model

import (
	"time"
	"visitorpass/shared/model"
)

const (
	TableReason        = "cancellation_reasons"
	TableCancellation  = "cancellations"
	EntityReason       = "cancellation_reason"
	EntityCancellation = "cancellation"

	FieldID          = "id"
	FieldReasonCode  = "reason_code"
	FieldInitiatedBy = "initiated_by"
	FieldModule      = "module"
	FieldBookingID   = "booking_id"
	FieldCreatedAt   = "created_at"
)

const (
	InitiatedByUser  = "USER"
	InitiatedByAdmin = "ADMIN"
)

type Reason struct {
	ID          string `db:"id"`
	ReasonCode  string `db:"reason_code"`
	Description string `db:"description"`
	InitiatedBy string `db:"initiated_by"`
	model.Metadata
}

// Cancellation is one append-only audit row.
type Cancellation struct {
	ID                   string  `db:"id"`
	UserID               string  `db:"user_id"`
	Module               string  `db:"module"`
	BookingID            string  `db:"booking_id"`
	CancellationReasonID *string `db:"cancellation_reason_id"`
	CancelledBy          string  `db:"cancelled_by"`
	model.Metadata
}

// CancellationDetail is an audit row with its reason, when one was given.
type CancellationDetail struct {
	ID          string    `db:"id"`
	Module      string    `db:"module"`
	BookingID   string    `db:"booking_id"`
	CancelledBy string    `db:"cancelled_by"`
	CreatedAt   time.Time `db:"created_at"`
	ReasonCode  *string   `db:"reason_code" table:"cancellation_reasons"`
	Description *string   `db:"description" table:"cancellation_reasons"`
}

func (CancellationDetail) GetJoinQuery() string {
	return "LEFT JOIN cancellation_reasons ON cancellation_reasons.id = cancellations.cancellation_reason_id"
}
