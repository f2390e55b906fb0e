package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigreport/rigreport/internal/auth"
	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/kv"
	"github.com/rigreport/rigreport/internal/middleware"
)

func TestMaxBodySize_RejectsDeclaredOversize(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("oversized request must not reach the handler")
	})
	h := middleware.NewMaxBodySizeHandler(10)(next)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 50)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMaxBodySize_LimitsUndeclaredBody(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})
	h := middleware.NewMaxBodySizeHandler(10)(next)

	// No Content-Length: the reader wrapper enforces the limit instead.
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 50)))
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Error(t, readErr)
}

func TestMaxBodySize_PassesSmallBodies(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(body))
	})
	h := middleware.NewMaxBodySizeHandler(10)(next)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, called)
}

func TestRequirePermission_AllowsAndDenies(t *testing.T) {
	mgr := auth.NewManager(kv.NewMemory())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.RequirePermission(mgr, auth.PermFleetWrite)(next)

	// Default session is admin: allowed.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := mgr.SetRole(domain.RoleGuest)
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t,
		`{"error":{"code":"forbidden","message":"active role lacks permission fleet.write"}}`,
		rec.Body.String())
}
