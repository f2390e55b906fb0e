package domain

import "time"

// PaymentStatus is the billing state of a slip payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentOverdue PaymentStatus = "Overdue"
)

// SlipPayment is a billing row against a slip. MemberID is optional — walk-up
// payments can be recorded without a member on file.
type SlipPayment struct {
	ID        string        `json:"id"`
	SlipID    string        `json:"slipId"`
	MemberID  *string       `json:"memberId,omitempty"`
	Amount    float64       `json:"amount"`
	Period    string        `json:"period"` // e.g. "2026-08"
	Status    PaymentStatus `json:"status"`
	DueDate   time.Time     `json:"dueDate"`
	PaidAt    *time.Time    `json:"paidAt,omitempty"`
	Notes     *string       `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

// SlipPaymentPatch is a partial update to a SlipPayment.
type SlipPaymentPatch struct {
	SlipID   *string        `json:"slipId,omitempty"`
	MemberID *string        `json:"memberId,omitempty"`
	Amount   *float64       `json:"amount,omitempty"`
	Period   *string        `json:"period,omitempty"`
	Status   *PaymentStatus `json:"status,omitempty" validate:"omitempty,oneof=Pending Paid Overdue"`
	DueDate  *time.Time     `json:"dueDate,omitempty"`
	PaidAt   *time.Time     `json:"paidAt,omitempty"`
	Notes    *string        `json:"notes,omitempty"`
}

// Apply shallow-merges the patch onto sp.
func (p SlipPaymentPatch) Apply(sp *SlipPayment) {
	if p.SlipID != nil {
		sp.SlipID = *p.SlipID
	}
	if p.MemberID != nil {
		sp.MemberID = p.MemberID
	}
	if p.Amount != nil {
		sp.Amount = *p.Amount
	}
	if p.Period != nil {
		sp.Period = *p.Period
	}
	if p.Status != nil {
		sp.Status = *p.Status
	}
	if p.DueDate != nil {
		sp.DueDate = *p.DueDate
	}
	if p.PaidAt != nil {
		sp.PaidAt = p.PaidAt
	}
	if p.Notes != nil {
		sp.Notes = p.Notes
	}
}
