package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListReservations handles GET /reservations.
func (s *Server) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.reservations.List(r.Context())
	if err != nil {
		respondError(w, err, "reservations not found")
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

// GetReservation handles GET /reservations/{id}.
func (s *Server) GetReservation(w http.ResponseWriter, r *http.Request) {
	res, err := s.reservations.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "reservation not found")
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// CreateReservation handles POST /reservations.
func (s *Server) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var res domain.Reservation
	if err := decodeJSON(r, &res); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	created, err := s.reservations.Create(r.Context(), res)
	if err != nil {
		respondError(w, err, "boat not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateReservation handles PATCH /reservations/{id}.
func (s *Server) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	var patch domain.ReservationPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.reservations.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "reservation not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteReservation handles DELETE /reservations/{id}.
func (s *Server) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := s.reservations.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "reservation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
