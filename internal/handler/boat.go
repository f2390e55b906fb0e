package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListBoats handles GET /boats.
func (s *Server) ListBoats(w http.ResponseWriter, r *http.Request) {
	boats, err := s.boats.List(r.Context())
	if err != nil {
		respondError(w, err, "boats not found")
		return
	}
	respondJSON(w, http.StatusOK, boats)
}

// GetBoat handles GET /boats/{id}.
func (s *Server) GetBoat(w http.ResponseWriter, r *http.Request) {
	b, err := s.boats.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// CreateBoat handles POST /boats.
func (s *Server) CreateBoat(w http.ResponseWriter, r *http.Request) {
	var b domain.Boat
	if err := decodeJSON(r, &b); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	created, err := s.boats.Create(r.Context(), b)
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateBoat handles PATCH /boats/{id}.
func (s *Server) UpdateBoat(w http.ResponseWriter, r *http.Request) {
	var patch domain.BoatPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.boats.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteBoat handles DELETE /boats/{id}. Maintenance entries for the boat
// are removed with it.
func (s *Server) DeleteBoat(w http.ResponseWriter, r *http.Request) {
	if err := s.boats.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "boat not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkBoatOK handles POST /boats/{id}/mark-ok.
func (s *Server) MarkBoatOK(w http.ResponseWriter, r *http.Request) {
	b, err := s.boats.MarkOK(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// ListBoatMaintenance handles GET /boats/{id}/maintenance.
func (s *Server) ListBoatMaintenance(w http.ResponseWriter, r *http.Request) {
	entries, err := s.maintenance.ListByBoatID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// ListBoatReservations handles GET /boats/{id}/reservations.
func (s *Server) ListBoatReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.reservations.ListByBoatID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}
