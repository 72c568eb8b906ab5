package dto

import (
	"visitorpass/internal/domains/refund/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/timezone"
)

type RefundResponse struct {
	ID           string  `json:"id"`
	PaymentID    string  `json:"payment_id"`
	BookingID    string  `json:"booking_id"`
	Module       string  `json:"module"`
	Amount       float64 `json:"amount"`
	RefundStatus string  `json:"refund_status"`
	ProcessedAt  *string `json:"processed_at"`
	CreatedAt    string  `json:"created_at"`
}

func (r *RefundResponse) FromModel(m model.Refund) {
	r.ID = m.ID
	r.PaymentID = m.PaymentID
	r.BookingID = m.BookingID
	r.Module = m.Module
	r.Amount = m.Amount
	r.RefundStatus = m.RefundStatus
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)

	if m.ProcessedAt != nil {
		processedAt := timezone.Format(*m.ProcessedAt, constant.DateFormat)
		r.ProcessedAt = &processedAt
	}
}

type RefundsResponse []RefundResponse

func (r *RefundsResponse) FromModels(models []model.Refund) {
	*r = make(RefundsResponse, 0, len(models))

	for _, m := range models {
		var res RefundResponse

		res.FromModel(m)
		*r = append(*r, res)
	}
}

type Event struct {
	RefundID     string  `json:"refund_id"`
	PaymentID    string  `json:"payment_id"`
	BookingID    string  `json:"booking_id"`
	Module       string  `json:"module"`
	UserID       string  `json:"user_id"`
	Amount       float64 `json:"amount"`
	RefundStatus string  `json:"refund_status"`
}

func NewEvent(m model.Refund) Event {
	return Event{
		RefundID:     m.ID,
		PaymentID:    m.PaymentID,
		BookingID:    m.BookingID,
		Module:       m.Module,
		UserID:       m.UserID,
		Amount:       m.Amount,
		RefundStatus: m.RefundStatus,
	}
}
