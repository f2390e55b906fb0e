package middleware

import (
	"net/http"

	"github.com/rigreport/rigreport/internal/auth"
)

// RequirePermission returns a middleware that rejects the request with 403
// when the active demo role lacks the given permission. The error body uses
// the same envelope shape as the handlers so clients need one error path.
func RequirePermission(mgr *auth.Manager, perm auth.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !mgr.Can(perm) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":{"code":"forbidden","message":"active role lacks permission ` + string(perm) + `"}}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
