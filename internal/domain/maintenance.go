package domain

import "time"

// MaintenanceCategory groups maintenance entries by the affected system.
type MaintenanceCategory string

const (
	CategoryEngine     MaintenanceCategory = "Engine"
	CategoryHullDamage MaintenanceCategory = "Hull damage"
	CategoryRigging    MaintenanceCategory = "Rigging"
	CategoryElectrical MaintenanceCategory = "Electrical"
	CategorySails      MaintenanceCategory = "Sails"
	CategoryOther      MaintenanceCategory = "Other"
)

// Severity grades how urgent a maintenance entry is. High-severity issues
// ground the boat, medium ones mark it for repair (see service.ReportIssue).
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

// MaintenanceStatus is the workflow state of a maintenance entry.
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "Open"
	MaintenanceInProgress MaintenanceStatus = "In progress"
	MaintenanceResolved   MaintenanceStatus = "Resolved"
)

// MaintenanceEntry is a reported defect or service task. BoatID is empty when
// the subject is a piece of equipment (then EquipmentID is set instead).
//
// ReportedAt is stamped by the store at creation and never touched by
// subsequent updates; resolution timestamps are separate optional fields the
// caller sets explicitly via a patch.
type MaintenanceEntry struct {
	ID          string              `json:"id"`
	BoatID      string              `json:"boatId"`
	EquipmentID *string             `json:"equipmentId,omitempty"`
	Category    MaintenanceCategory `json:"category"`
	Severity    Severity            `json:"severity"`
	Status      MaintenanceStatus   `json:"status"`
	Description string              `json:"description"`
	ReportedBy  string              `json:"reportedBy"`
	ReportedAt  time.Time           `json:"reportedAt"`
	ResolvedBy  *string             `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time          `json:"resolvedAt,omitempty"`
	Notes       *string             `json:"notes,omitempty"`
}

// MaintenanceEntryPatch is a partial update to a MaintenanceEntry.
// ReportedAt and ReportedBy are deliberately absent: who reported an issue
// and when are fixed at creation time.
type MaintenanceEntryPatch struct {
	BoatID      *string              `json:"boatId,omitempty"`
	EquipmentID *string              `json:"equipmentId,omitempty"`
	Category    *MaintenanceCategory `json:"category,omitempty" validate:"omitempty,oneof='Engine' 'Hull damage' 'Rigging' 'Electrical' 'Sails' 'Other'"`
	Severity    *Severity            `json:"severity,omitempty" validate:"omitempty,oneof=Low Medium High"`
	Status      *MaintenanceStatus   `json:"status,omitempty" validate:"omitempty,oneof='Open' 'In progress' 'Resolved'"`
	Description *string              `json:"description,omitempty" validate:"omitempty,min=1"`
	ResolvedBy  *string              `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time           `json:"resolvedAt,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
}

// Apply shallow-merges the patch onto m.
func (p MaintenanceEntryPatch) Apply(m *MaintenanceEntry) {
	if p.BoatID != nil {
		m.BoatID = *p.BoatID
	}
	if p.EquipmentID != nil {
		m.EquipmentID = p.EquipmentID
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Severity != nil {
		m.Severity = *p.Severity
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.ResolvedBy != nil {
		m.ResolvedBy = p.ResolvedBy
	}
	if p.ResolvedAt != nil {
		m.ResolvedAt = p.ResolvedAt
	}
	if p.Notes != nil {
		m.Notes = p.Notes
	}
}
