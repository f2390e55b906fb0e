package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/service"
)

// ListMaintenance handles GET /maintenance.
func (s *Server) ListMaintenance(w http.ResponseWriter, r *http.Request) {
	entries, err := s.maintenance.List(r.Context())
	if err != nil {
		respondError(w, err, "maintenance entries not found")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// GetMaintenanceEntry handles GET /maintenance/{id}.
func (s *Server) GetMaintenanceEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.maintenance.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "maintenance entry not found")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// ReportIssue handles POST /maintenance/report, the combined
// create-entry-and-apply-severity-policy operation.
func (s *Server) ReportIssue(w http.ResponseWriter, r *http.Request) {
	var in service.ReportIssueInput
	if err := decodeJSON(r, &in); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	entry, err := s.maintenance.ReportIssue(r.Context(), in)
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// CreateMaintenanceEntry handles POST /maintenance. Unlike ReportIssue this
// records an entry as-is, with no effect on the boat's status.
func (s *Server) CreateMaintenanceEntry(w http.ResponseWriter, r *http.Request) {
	var m domain.MaintenanceEntry
	if err := decodeJSON(r, &m); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	created, err := s.maintenance.Create(r.Context(), m)
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateMaintenanceEntry handles PATCH /maintenance/{id}.
func (s *Server) UpdateMaintenanceEntry(w http.ResponseWriter, r *http.Request) {
	var patch domain.MaintenanceEntryPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.maintenance.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "maintenance entry not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteMaintenanceEntry handles DELETE /maintenance/{id}.
func (s *Server) DeleteMaintenanceEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.maintenance.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "maintenance entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
