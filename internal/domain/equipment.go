package domain

import "time"

// EquipmentType classifies a piece of loose equipment.
type EquipmentType string

const (
	EquipmentTypeLifeJacket EquipmentType = "Life jacket"
	EquipmentTypeOutboard   EquipmentType = "Outboard"
	EquipmentTypeRadio      EquipmentType = "Radio"
	EquipmentTypeGPS        EquipmentType = "GPS"
	EquipmentTypeTrailer    EquipmentType = "Trailer"
	EquipmentTypeOther      EquipmentType = "Other"
)

// EquipmentStatus is the availability state of a piece of equipment.
type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "Available"
	EquipmentStatusInUse       EquipmentStatus = "In use"
	EquipmentStatusNeedsRepair EquipmentStatus = "Needs repair"
	EquipmentStatusRetired     EquipmentStatus = "Retired"
)

// Equipment is a loose inventory item. AssignedBoatID is informational only —
// the store does not enforce that the referenced boat exists, and deleting a
// boat does not touch equipment rows.
type Equipment struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            EquipmentType   `json:"type"`
	Status          EquipmentStatus `json:"status"`
	Organization    Organization    `json:"organization"`
	StorageLocation string          `json:"storageLocation"`
	SerialNumber    *string         `json:"serialNumber,omitempty"`
	Value           *float64        `json:"value,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	AssignedBoatID  *string         `json:"assignedBoatId,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// EquipmentPatch is a partial update to an Equipment record.
type EquipmentPatch struct {
	Name            *string          `json:"name,omitempty" validate:"omitempty,min=1"`
	Type            *EquipmentType   `json:"type,omitempty" validate:"omitempty,oneof='Life jacket' 'Outboard' 'Radio' 'GPS' 'Trailer' 'Other'"`
	Status          *EquipmentStatus `json:"status,omitempty" validate:"omitempty,oneof='Available' 'In use' 'Needs repair' 'Retired'"`
	Organization    *Organization    `json:"organization,omitempty" validate:"omitempty,oneof=Club Charter School"`
	StorageLocation *string          `json:"storageLocation,omitempty"`
	SerialNumber    *string          `json:"serialNumber,omitempty"`
	Value           *float64         `json:"value,omitempty"`
	Notes           *string          `json:"notes,omitempty"`
	AssignedBoatID  *string          `json:"assignedBoatId,omitempty"`
}

// Apply shallow-merges the patch onto e.
func (p EquipmentPatch) Apply(e *Equipment) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Organization != nil {
		e.Organization = *p.Organization
	}
	if p.StorageLocation != nil {
		e.StorageLocation = *p.StorageLocation
	}
	if p.SerialNumber != nil {
		e.SerialNumber = p.SerialNumber
	}
	if p.Value != nil {
		e.Value = p.Value
	}
	if p.Notes != nil {
		e.Notes = p.Notes
	}
	if p.AssignedBoatID != nil {
		e.AssignedBoatID = p.AssignedBoatID
	}
}
