package domain

import "time"

// SlipStatus is the occupancy state of a marina slip.
type SlipStatus string

const (
	SlipAvailable   SlipStatus = "Available"
	SlipOccupied    SlipStatus = "Occupied"
	SlipReserved    SlipStatus = "Reserved"
	SlipMaintenance SlipStatus = "Maintenance"
)

// Slip is a marina berth. Members and boats are linked to a slip through
// join rows (SlipMemberAssignment, SlipBoatAssignment), never directly.
type Slip struct {
	ID          string     `json:"id"`
	Number      string     `json:"number"`
	Dock        string     `json:"dock"`
	LengthM     float64    `json:"lengthM"`
	BeamM       float64    `json:"beamM"`
	MaxDraftM   float64    `json:"maxDraftM"`
	Status      SlipStatus `json:"status"`
	MonthlyRate float64    `json:"monthlyRate"`
	HasPower    bool       `json:"hasPower"`
	HasWater    bool       `json:"hasWater"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// SlipPatch is a partial update to a Slip.
type SlipPatch struct {
	Number      *string     `json:"number,omitempty" validate:"omitempty,min=1"`
	Dock        *string     `json:"dock,omitempty"`
	LengthM     *float64    `json:"lengthM,omitempty"`
	BeamM       *float64    `json:"beamM,omitempty"`
	MaxDraftM   *float64    `json:"maxDraftM,omitempty"`
	Status      *SlipStatus `json:"status,omitempty" validate:"omitempty,oneof=Available Occupied Reserved Maintenance"`
	MonthlyRate *float64    `json:"monthlyRate,omitempty"`
	HasPower    *bool       `json:"hasPower,omitempty"`
	HasWater    *bool       `json:"hasWater,omitempty"`
	Notes       *string     `json:"notes,omitempty"`
}

// Apply shallow-merges the patch onto s.
func (p SlipPatch) Apply(s *Slip) {
	if p.Number != nil {
		s.Number = *p.Number
	}
	if p.Dock != nil {
		s.Dock = *p.Dock
	}
	if p.LengthM != nil {
		s.LengthM = *p.LengthM
	}
	if p.BeamM != nil {
		s.BeamM = *p.BeamM
	}
	if p.MaxDraftM != nil {
		s.MaxDraftM = *p.MaxDraftM
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.MonthlyRate != nil {
		s.MonthlyRate = *p.MonthlyRate
	}
	if p.HasPower != nil {
		s.HasPower = *p.HasPower
	}
	if p.HasWater != nil {
		s.HasWater = *p.HasWater
	}
	if p.Notes != nil {
		s.Notes = p.Notes
	}
}
