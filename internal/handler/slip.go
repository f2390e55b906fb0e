package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListSlips handles GET /slips.
func (s *Server) ListSlips(w http.ResponseWriter, r *http.Request) {
	slips, err := s.slips.ListSlips(r.Context())
	if err != nil {
		respondError(w, err, "slips not found")
		return
	}
	respondJSON(w, http.StatusOK, slips)
}

// GetSlip handles GET /slips/{id}.
func (s *Server) GetSlip(w http.ResponseWriter, r *http.Request) {
	slip, err := s.slips.GetSlip(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusOK, slip)
}

// CreateSlip handles POST /slips.
func (s *Server) CreateSlip(w http.ResponseWriter, r *http.Request) {
	var slip domain.Slip
	if err := decodeJSON(r, &slip); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	created, err := s.slips.CreateSlip(r.Context(), slip)
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateSlip handles PATCH /slips/{id}.
func (s *Server) UpdateSlip(w http.ResponseWriter, r *http.Request) {
	var patch domain.SlipPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.slips.UpdateSlip(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteSlip handles DELETE /slips/{id}. Assignments, payments and
// reservations pointing at the slip are left in place.
func (s *Server) DeleteSlip(w http.ResponseWriter, r *http.Request) {
	if err := s.slips.DeleteSlip(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "slip not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSlipMembers handles GET /slip-members.
func (s *Server) ListSlipMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.slips.ListMembers(r.Context())
	if err != nil {
		respondError(w, err, "members not found")
		return
	}
	respondJSON(w, http.StatusOK, members)
}

// GetSlipMember handles GET /slip-members/{id}.
func (s *Server) GetSlipMember(w http.ResponseWriter, r *http.Request) {
	member, err := s.slips.GetMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "member not found")
		return
	}
	respondJSON(w, http.StatusOK, member)
}

// CreateSlipMember handles POST /slip-members.
func (s *Server) CreateSlipMember(w http.ResponseWriter, r *http.Request) {
	var member domain.SlipMember
	if err := decodeJSON(r, &member); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	created, err := s.slips.CreateMember(r.Context(), member)
	if err != nil {
		respondError(w, err, "member not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateSlipMember handles PATCH /slip-members/{id}.
func (s *Server) UpdateSlipMember(w http.ResponseWriter, r *http.Request) {
	var patch domain.SlipMemberPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.slips.UpdateMember(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "member not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteSlipMember handles DELETE /slip-members/{id}.
func (s *Server) DeleteSlipMember(w http.ResponseWriter, r *http.Request) {
	if err := s.slips.DeleteMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "member not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSlipMemberAssignments handles GET /slips/{id}/members.
func (s *Server) ListSlipMemberAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := s.slips.ListMemberAssignments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusOK, assignments)
}

// AssignSlipMember handles POST /slips/{id}/members. The slip id comes from
// the path; the body names the member.
func (s *Server) AssignSlipMember(w http.ResponseWriter, r *http.Request) {
	var a domain.SlipMemberAssignment
	if err := decodeJSON(r, &a); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	a.SlipID = chi.URLParam(r, "id")
	created, err := s.slips.AssignMember(r.Context(), a)
	if err != nil {
		respondError(w, err, "slip or member not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetSlipMemberAssignment handles GET /slip-member-assignments/{id}.
func (s *Server) GetSlipMemberAssignment(w http.ResponseWriter, r *http.Request) {
	a, err := s.slips.GetMemberAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "assignment not found")
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// UnassignSlipMember handles DELETE /slip-member-assignments/{id}.
func (s *Server) UnassignSlipMember(w http.ResponseWriter, r *http.Request) {
	if err := s.slips.UnassignMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "assignment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSlipBoatAssignments handles GET /slips/{id}/boats.
func (s *Server) ListSlipBoatAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := s.slips.ListBoatAssignments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusOK, assignments)
}

// AssignSlipBoat handles POST /slips/{id}/boats.
func (s *Server) AssignSlipBoat(w http.ResponseWriter, r *http.Request) {
	var a domain.SlipBoatAssignment
	if err := decodeJSON(r, &a); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	a.SlipID = chi.URLParam(r, "id")
	created, err := s.slips.AssignBoat(r.Context(), a)
	if err != nil {
		respondError(w, err, "slip or boat not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// GetSlipBoatAssignment handles GET /slip-boat-assignments/{id}.
func (s *Server) GetSlipBoatAssignment(w http.ResponseWriter, r *http.Request) {
	a, err := s.slips.GetBoatAssignment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "assignment not found")
		return
	}
	respondJSON(w, http.StatusOK, a)
}

// UnassignSlipBoat handles DELETE /slip-boat-assignments/{id}.
func (s *Server) UnassignSlipBoat(w http.ResponseWriter, r *http.Request) {
	if err := s.slips.UnassignBoat(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "assignment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSlipPayments handles GET /slips/{id}/payments.
func (s *Server) ListSlipPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.slips.ListPayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

// RecordSlipPayment handles POST /slips/{id}/payments.
func (s *Server) RecordSlipPayment(w http.ResponseWriter, r *http.Request) {
	var p domain.SlipPayment
	if err := decodeJSON(r, &p); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	p.SlipID = chi.URLParam(r, "id")
	created, err := s.slips.RecordPayment(r.Context(), p)
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateSlipPayment handles PATCH /slip-payments/{id}.
func (s *Server) UpdateSlipPayment(w http.ResponseWriter, r *http.Request) {
	var patch domain.SlipPaymentPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.slips.UpdatePayment(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "payment not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteSlipPayment handles DELETE /slip-payments/{id}.
func (s *Server) DeleteSlipPayment(w http.ResponseWriter, r *http.Request) {
	if err := s.slips.DeletePayment(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "payment not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSlipReservations handles GET /slips/{id}/reservations.
func (s *Server) ListSlipReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := s.slips.ListSlipReservations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusOK, reservations)
}

// ReserveSlip handles POST /slips/{id}/reservations.
func (s *Server) ReserveSlip(w http.ResponseWriter, r *http.Request) {
	var res domain.SlipReservation
	if err := decodeJSON(r, &res); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	res.SlipID = chi.URLParam(r, "id")
	created, err := s.slips.ReserveSlip(r.Context(), res)
	if err != nil {
		respondError(w, err, "slip not found")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateSlipReservation handles PATCH /slip-reservations/{id}.
func (s *Server) UpdateSlipReservation(w http.ResponseWriter, r *http.Request) {
	var patch domain.SlipReservationPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	updated, err := s.slips.UpdateSlipReservation(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		respondError(w, err, "slip reservation not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// CancelSlipReservation handles DELETE /slip-reservations/{id}.
func (s *Server) CancelSlipReservation(w http.ResponseWriter, r *http.Request) {
	if err := s.slips.CancelSlipReservation(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err, "slip reservation not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
