package dto

import (
	"visitorpass/internal/domains/payment/model"
	refundDto "visitorpass/internal/domains/refund/model/dto"
	refundModel "visitorpass/internal/domains/refund/model"
	"visitorpass/shared/constant"
	"visitorpass/shared/timezone"
)

type ConfirmRequest struct {
	Module    string  `json:"module"     validate:"required"`
	BookingID string  `json:"booking_id" validate:"required,uuid"`
	Amount    float64 `json:"amount"     validate:"gt=0"`
}

type PaymentResponse struct {
	ID            string                    `json:"id"`
	Module        string                    `json:"module"`
	BookingID     string                    `json:"booking_id"`
	Amount        float64                   `json:"amount"`
	PaymentStatus string                    `json:"payment_status"`
	PaymentMethod string                    `json:"payment_method"`
	Gateway       string                    `json:"gateway"`
	CreatedAt     string                    `json:"created_at"`
	Refunds       refundDto.RefundsResponse `json:"refunds,omitempty"`
}

func (r *PaymentResponse) FromModel(m model.Payment) {
	r.ID = m.ID
	r.Module = m.Module
	r.BookingID = m.BookingID
	r.Amount = m.Amount
	r.PaymentStatus = m.PaymentStatus
	r.PaymentMethod = m.PaymentMethod
	r.Gateway = m.Gateway
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

type PaymentsResponse []PaymentResponse

// FromModels nests each refund under the payment it reverses.
func (r *PaymentsResponse) FromModels(payments []model.Payment, refunds []refundModel.Refund) {
	byPayment := make(map[string][]refundModel.Refund, len(refunds))
	for _, refund := range refunds {
		byPayment[refund.PaymentID] = append(byPayment[refund.PaymentID], refund)
	}

	*r = make(PaymentsResponse, 0, len(payments))

	for _, p := range payments {
		var res PaymentResponse

		res.FromModel(p)
		res.Refunds.FromModels(byPayment[p.ID])

		*r = append(*r, res)
	}
}

type ConfirmedEvent struct {
	PaymentID string  `json:"payment_id"`
	Module    string  `json:"module"`
	BookingID string  `json:"booking_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
}
