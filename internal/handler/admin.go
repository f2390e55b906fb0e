package handler

import "net/http"

// ResetDemo handles POST /admin/reset: seed data is restored and every
// collection is rewritten to storage.
func (s *Server) ResetDemo(w http.ResponseWriter, r *http.Request) {
	s.admin.Reset(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// ClearDemo handles POST /admin/clear: all records and the version marker
// are removed, so the next startup reseeds.
func (s *Server) ClearDemo(w http.ResponseWriter, r *http.Request) {
	s.admin.Clear(r.Context())
	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
