package domain

import "time"

// SlipReservation books a slip for a visiting boat over a date range.
type SlipReservation struct {
	ID         string    `json:"id"`
	SlipID     string    `json:"slipId"`
	BoatName   string    `json:"boatName"`
	ReservedBy string    `json:"reservedBy"`
	Email      string    `json:"email"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SlipReservationPatch is a partial update to a SlipReservation.
type SlipReservationPatch struct {
	SlipID     *string    `json:"slipId,omitempty"`
	BoatName   *string    `json:"boatName,omitempty"`
	ReservedBy *string    `json:"reservedBy,omitempty" validate:"omitempty,min=1"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

// Apply shallow-merges the patch onto r.
func (p SlipReservationPatch) Apply(r *SlipReservation) {
	if p.SlipID != nil {
		r.SlipID = *p.SlipID
	}
	if p.BoatName != nil {
		r.BoatName = *p.BoatName
	}
	if p.ReservedBy != nil {
		r.ReservedBy = *p.ReservedBy
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.StartDate != nil {
		r.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		r.EndDate = *p.EndDate
	}
	if p.Notes != nil {
		r.Notes = p.Notes
	}
}
