package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/query"
)

// MaintenanceService implements business logic for maintenance entries,
// including the one cross-entity rule of the whole application: reporting a
// severe issue changes the subject boat's status.
type MaintenanceService struct {
	data *query.Client
}

// NewMaintenanceService constructs a MaintenanceService.
func NewMaintenanceService(data *query.Client) *MaintenanceService {
	return &MaintenanceService{data: data}
}

// ReportIssueInput is the payload for ReportIssue. BoatID may be empty when
// the subject is a piece of equipment (then EquipmentID should be set).
type ReportIssueInput struct {
	BoatID      string                     `json:"boatId"`
	EquipmentID *string                    `json:"equipmentId,omitempty"`
	Category    domain.MaintenanceCategory `json:"category"`
	Severity    domain.Severity            `json:"severity"`
	Description string                     `json:"description"`
	ReportedBy  string                     `json:"reportedBy"`
	Notes       *string                    `json:"notes,omitempty"`
}

// ReportIssue creates a maintenance entry and applies the severity policy
// in the same call: a High-severity issue grounds the boat ("Do not sail"),
// a Medium one marks it "Needs repair", Low leaves the status alone.
// Folding both steps into one operation removes the create-then-update gap
// a UI-side implementation of the rule would have.
//
// Returns domain.ErrNotFound when BoatID names a boat that does not exist.
func (s *MaintenanceService) ReportIssue(ctx context.Context, in ReportIssueInput) (domain.MaintenanceEntry, error) {
	if err := validateReport(in); err != nil {
		return domain.MaintenanceEntry{}, err
	}
	if in.BoatID != "" {
		if _, err := s.data.Boat(ctx, in.BoatID); err != nil {
			return domain.MaintenanceEntry{}, fmt.Errorf("service.MaintenanceService.ReportIssue: %w", err)
		}
	}

	entry, err := s.data.CreateMaintenanceEntry(ctx, domain.MaintenanceEntry{
		BoatID:      in.BoatID,
		EquipmentID: in.EquipmentID,
		Category:    in.Category,
		Severity:    in.Severity,
		Status:      domain.MaintenanceOpen,
		Description: in.Description,
		ReportedBy:  in.ReportedBy,
		Notes:       in.Notes,
	})
	if err != nil {
		return domain.MaintenanceEntry{}, fmt.Errorf("service.MaintenanceService.ReportIssue: %w", err)
	}

	if in.BoatID != "" {
		var status domain.BoatStatus
		switch in.Severity {
		case domain.SeverityHigh:
			status = domain.BoatStatusDoNotSail
		case domain.SeverityMedium:
			status = domain.BoatStatusNeedsRepair
		}
		if status != "" {
			if _, err := s.data.UpdateBoat(ctx, in.BoatID, domain.BoatPatch{Status: &status}); err != nil {
				return domain.MaintenanceEntry{}, fmt.Errorf("service.MaintenanceService.ReportIssue: status update: %w", err)
			}
		}
	}

	return entry, nil
}

// List returns all maintenance entries.
func (s *MaintenanceService) List(ctx context.Context) ([]domain.MaintenanceEntry, error) {
	entries, err := s.data.Maintenance(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.MaintenanceService.List: %w", err)
	}
	return entries, nil
}

// ListByBoatID returns the entries for one boat.
func (s *MaintenanceService) ListByBoatID(ctx context.Context, boatID string) ([]domain.MaintenanceEntry, error) {
	entries, err := s.data.MaintenanceForBoat(ctx, boatID)
	if err != nil {
		return nil, fmt.Errorf("service.MaintenanceService.ListByBoatID: %w", err)
	}
	return entries, nil
}

// GetByID returns a single maintenance entry.
func (s *MaintenanceService) GetByID(ctx context.Context, id string) (domain.MaintenanceEntry, error) {
	entry, err := s.data.MaintenanceEntry(ctx, id)
	if err != nil {
		return domain.MaintenanceEntry{}, fmt.Errorf("service.MaintenanceService.GetByID: %w", err)
	}
	return entry, nil
}

// Create persists a plain maintenance entry with no status side effects.
// Callers that want the severity policy applied use ReportIssue instead.
func (s *MaintenanceService) Create(ctx context.Context, m domain.MaintenanceEntry) (domain.MaintenanceEntry, error) {
	if strings.TrimSpace(m.Description) == "" {
		return domain.MaintenanceEntry{}, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if m.Status == "" {
		m.Status = domain.MaintenanceOpen
	}
	created, err := s.data.CreateMaintenanceEntry(ctx, m)
	if err != nil {
		return domain.MaintenanceEntry{}, fmt.Errorf("service.MaintenanceService.Create: %w", err)
	}
	return created, nil
}

// Update applies a patch to an existing entry.
func (s *MaintenanceService) Update(ctx context.Context, id string, patch domain.MaintenanceEntryPatch) (domain.MaintenanceEntry, error) {
	updated, err := s.data.UpdateMaintenanceEntry(ctx, id, patch)
	if err != nil {
		return domain.MaintenanceEntry{}, fmt.Errorf("service.MaintenanceService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a maintenance entry.
func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	if err := s.data.DeleteMaintenanceEntry(ctx, id); err != nil {
		return fmt.Errorf("service.MaintenanceService.Delete: %w", err)
	}
	return nil
}

// validateReport enforces the required fields for ReportIssue.
func validateReport(in ReportIssueInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.ReportedBy) == "" {
		return fmt.Errorf("%w: reportedBy is required", domain.ErrValidation)
	}
	switch in.Severity {
	case domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh:
	default:
		return fmt.Errorf("%w: severity must be Low, Medium, or High", domain.ErrValidation)
	}
	if in.BoatID == "" && in.EquipmentID == nil {
		return fmt.Errorf("%w: either boatId or equipmentId is required", domain.ErrValidation)
	}
	return nil
}
