package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListEquipment handles GET /equipment.
func (s *Server) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := s.equipment.List(r.Context())
	if err != nil {
		respondError(w, err, "equipment not found")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// GetEquipment handles GET /equipment/{id}.
func (s *Server) GetEquipment(w http.ResponseWriter, r *http.Request) {
	item, err := s.equipment.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "equipment not found")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// CreateEquipment handles POST /equipment.
func (s *Server) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	var e domain.Equipment
	if err := decodeJSON(r, &e); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	created, err := s.equipment.Create(r.Context(), e)
	if err != nil {
		respondError(w, err, "equipment not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateEquipment handles PATCH /equipment/{id}.
func (s *Server) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	var patch domain.EquipmentPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.equipment.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "equipment not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteEquipment handles DELETE /equipment/{id}.
func (s *Server) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	if err := s.equipment.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "equipment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
