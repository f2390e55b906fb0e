package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rigreport/rigreport/internal/auth"
	"github.com/rigreport/rigreport/internal/domain"
)

// sessionResponse is the session payload plus the derived permission set,
// so a client can render its surface without knowing the role table.
type sessionResponse struct {
	auth.Session
	Permissions []auth.Permission `json:"permissions"`
}

// GetSession handles GET /session.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, sessionResponse{
		Session:     s.session.Current(),
		Permissions: s.session.Permissions(),
	})
}

// PutSessionRole handles PUT /session/role, switching the active persona.
func (s *Server) PutSessionRole(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Role domain.Role `json:"role"`
	}
	if err := decodeJSON(r, &body); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	session, err := s.session.SetRole(body.Role)
	if err != nil {
		respondError(w, err, "role not found")
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{
		Session:     session,
		Permissions: s.session.Permissions(),
	})
}

// ListUsers handles GET /users, the demo persona directory.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.admin.Users(r.Context())
	if err != nil {
		respondError(w, err, "users not found")
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.admin.User(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, user)
}
