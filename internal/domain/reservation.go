package domain

import "time"

// Reservation books a boat for a date range. Reservations are not cascaded
// when their boat is deleted; rows referencing a gone boat simply dangle.
type Reservation struct {
	ID         string    `json:"id"`
	BoatID     string    `json:"boatId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	ReservedBy string    `json:"reservedBy"`
	Email      string    `json:"email"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReservationPatch is a partial update to a Reservation.
type ReservationPatch struct {
	BoatID     *string    `json:"boatId,omitempty"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	ReservedBy *string    `json:"reservedBy,omitempty" validate:"omitempty,min=1"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	Reason     *string    `json:"reason,omitempty"`
}

// Apply shallow-merges the patch onto r.
func (p ReservationPatch) Apply(r *Reservation) {
	if p.BoatID != nil {
		r.BoatID = *p.BoatID
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		r.EndDate = *p.EndDate
	}
	if p.ReservedBy != nil {
		r.ReservedBy = *p.ReservedBy
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Reason != nil {
		r.Reason = p.Reason
	}
}
