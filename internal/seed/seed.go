// Package seed holds the compiled-in default dataset. The store falls back
// to these records whenever a collection has nothing persisted — first run,
// after a version-triggered purge, and after an explicit reset.
//
// Seed ids are fixed strings so the demo is reproducible; ids of records
// created at runtime are store-generated and look different on purpose.
package seed

import (
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// seededAt is the fixed timestamp stamped on every seed record.
var seededAt = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// Boats returns the default fleet.
func Boats() []domain.Boat {
	return []domain.Boat{
		{
			ID:           "boat-001",
			DisplayName:  "Morning Star",
			HullNumber:   "NL-MST-4471",
			Type:         domain.BoatTypeSailboat,
			Status:       domain.BoatStatusOK,
			Organization: domain.OrgClub,
			Location:     "Dock A",
			Latitude:     ptr(52.3770),
			Longitude:    ptr(4.8924),
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "boat-002",
			DisplayName:  "Valkyrie",
			HullNumber:   "NL-VLK-1208",
			Type:         domain.BoatTypeCatamaran,
			Status:       domain.BoatStatusNeedsInspection,
			Organization: domain.OrgCharter,
			Location:     "Dock B",
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
		{
			ID:           "boat-003",
			DisplayName:  "Pelican",
			HullNumber:   "NL-PLC-0093",
			Type:         domain.BoatTypeRIB,
			Status:       domain.BoatStatusNeedsRepair,
			Organization: domain.OrgSchool,
			Location:     "Trailer yard",
			CreatedAt:    seededAt,
			UpdatedAt:    seededAt,
		},
	}
}

// Equipment returns the default inventory.
func Equipment() []domain.Equipment {
	return []domain.Equipment{
		{
			ID:              "equipment-001",
			Name:            "Yamaha 9.9 outboard",
			Type:            domain.EquipmentTypeOutboard,
			Status:          domain.EquipmentStatusAvailable,
			Organization:    domain.OrgClub,
			StorageLocation: "Shed 2",
			SerialNumber:    ptr("Y99-228431"),
			Value:           ptr(2400.0),
			CreatedAt:       seededAt,
			UpdatedAt:       seededAt,
		},
		{
			ID:              "equipment-002",
			Name:            "VHF handheld radio",
			Type:            domain.EquipmentTypeRadio,
			Status:          domain.EquipmentStatusInUse,
			Organization:    domain.OrgCharter,
			StorageLocation: "Office",
			AssignedBoatID:  ptr("boat-002"),
			CreatedAt:       seededAt,
			UpdatedAt:       seededAt,
		},
		{
			ID:              "equipment-003",
			Name:            "Life jackets (crate of 12)",
			Type:            domain.EquipmentTypeLifeJacket,
			Status:          domain.EquipmentStatusAvailable,
			Organization:    domain.OrgSchool,
			StorageLocation: "Shed 1",
			CreatedAt:       seededAt,
			UpdatedAt:       seededAt,
		},
	}
}

// Maintenance returns the default open maintenance entries.
func Maintenance() []domain.MaintenanceEntry {
	return []domain.MaintenanceEntry{
		{
			ID:          "maintenance-001",
			BoatID:      "boat-003",
			Category:    domain.CategoryEngine,
			Severity:    domain.SeverityMedium,
			Status:      domain.MaintenanceOpen,
			Description: "Outboard stalls at low revs",
			ReportedBy:  "Frank de Wit",
			ReportedAt:  seededAt,
		},
		{
			ID:          "maintenance-002",
			BoatID:      "boat-002",
			Category:    domain.CategoryRigging,
			Severity:    domain.SeverityLow,
			Status:      domain.MaintenanceInProgress,
			Description: "Frayed jib sheet, replace before season start",
			ReportedBy:  "Sanne Bakker",
			ReportedAt:  seededAt,
		},
	}
}

// Slips returns the default marina berths.
func Slips() []domain.Slip {
	return []domain.Slip{
		{
			ID:          "slip-001",
			Number:      "A-01",
			Dock:        "A",
			LengthM:     12,
			BeamM:       4,
			MaxDraftM:   2.2,
			Status:      domain.SlipOccupied,
			MonthlyRate: 310,
			HasPower:    true,
			HasWater:    true,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "slip-002",
			Number:      "A-02",
			Dock:        "A",
			LengthM:     10,
			BeamM:       3.5,
			MaxDraftM:   1.8,
			Status:      domain.SlipAvailable,
			MonthlyRate: 265,
			HasPower:    true,
			HasWater:    false,
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          "slip-003",
			Number:      "B-07",
			Dock:        "B",
			LengthM:     8,
			BeamM:       3,
			MaxDraftM:   1.5,
			Status:      domain.SlipMaintenance,
			MonthlyRate: 220,
			HasPower:    false,
			HasWater:    false,
			Notes:       ptr("Finger pier damaged in winter storm"),
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
	}
}

// SlipMembers returns the default marina customers.
func SlipMembers() []domain.SlipMember {
	return []domain.SlipMember{
		{
			ID:        "member-001",
			Name:      "Hendrik Visser",
			Email:     "h.visser@example.com",
			Phone:     ptr("+31 6 1234 5678"),
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:        "member-002",
			Name:      "Carla Jansen",
			Email:     "carla.jansen@example.com",
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}

// DemoUsers returns the read-only user directory, one persona per role.
func DemoUsers() []domain.DemoUser {
	return []domain.DemoUser{
		{ID: "user-001", Name: "Ava Admin", Email: "ava@rigreport.example", Role: domain.RoleAdmin},
		{ID: "user-002", Name: "Finn Fleet", Email: "finn@rigreport.example", Role: domain.RoleFleetManager},
		{ID: "user-003", Name: "Mila Member", Email: "mila@rigreport.example", Role: domain.RoleMember},
		{ID: "user-004", Name: "Gus Guest", Email: "gus@rigreport.example", Role: domain.RoleGuest},
	}
}
