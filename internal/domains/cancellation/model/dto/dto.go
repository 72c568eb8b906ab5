package dto

import (
	"visitorpass/internal/domains/cancellation/model"
	refundDto "visitorpass/internal/domains/refund/model/dto"
	"visitorpass/shared/constant"
	"visitorpass/shared/timezone"
)

type CancelRequest struct {
	Module     string `json:"module"      validate:"required"`
	BookingID  string `json:"booking_id"  validate:"required,uuid"`
	ReasonCode string `json:"reason_code" validate:"required,max=64"`
}

// ModuleCancelRequest is built from the per-module cancel routes, which carry no reason.
type ModuleCancelRequest struct {
	Module    string
	BookingID string
}

type AdminCancelRequest struct {
	Module     string `json:"module"      validate:"required"`
	BookingID  string `json:"booking_id"  validate:"required,uuid"`
	ReasonCode string `json:"reason_code" validate:"required,max=64"`
}

type CancelResponse struct {
	BookingID string                    `json:"booking_id"`
	Module    string                    `json:"module"`
	Status    string                    `json:"status"`
	Refund    *refundDto.RefundResponse `json:"refund"`
}

type ReasonResponse struct {
	ReasonCode  string `json:"reason_code"`
	Description string `json:"description"`
}

type ReasonsResponse []ReasonResponse

func (r *ReasonsResponse) FromModels(models []model.Reason) {
	*r = make(ReasonsResponse, 0, len(models))

	for _, m := range models {
		*r = append(*r, ReasonResponse{
			ReasonCode:  m.ReasonCode,
			Description: m.Description,
		})
	}
}

type CancellationResponse struct {
	CreatedAt   string  `json:"created_at"`
	CancelledBy string  `json:"cancelled_by"`
	ReasonCode  *string `json:"reason_code"`
	Description *string `json:"description"`
}

func (r *CancellationResponse) FromDetail(m model.CancellationDetail) {
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
	r.CancelledBy = m.CancelledBy
	r.ReasonCode = m.ReasonCode
	r.Description = m.Description
}

type CancelledEvent struct {
	BookingID  string  `json:"booking_id"`
	Module     string  `json:"module"`
	UserID     string  `json:"user_id"`
	ReasonCode *string `json:"reason_code"`
	RefundID   *string `json:"refund_id"`
}
