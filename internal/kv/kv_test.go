package kv_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigreport/rigreport/internal/kv"
)

func TestMemory_RoundTrip(t *testing.T) {
	m := kv.NewMemory()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	m.Set("k", record{Name: "a", Count: 2})

	var got record
	require.True(t, m.Get("k", &got))
	assert.Equal(t, record{Name: "a", Count: 2}, got)
}

func TestMemory_GetMissingKey(t *testing.T) {
	m := kv.NewMemory()

	var got string
	assert.False(t, m.Get("absent", &got))
	assert.Empty(t, got)
}

func TestMemory_Remove(t *testing.T) {
	m := kv.NewMemory()

	m.Set("k", "v")
	m.Remove("k")

	var got string
	assert.False(t, m.Get("k", &got))

	// Removing again is a no-op.
	m.Remove("k")
}

func TestMemory_GetMismatchedShape(t *testing.T) {
	m := kv.NewMemory()

	// A stored string cannot unmarshal into an int slice. A corrupt or
	// incompatible value reads as absent, never as an error.
	m.Set("k", "not a slice")

	var got []int
	assert.False(t, m.Get("k", &got))
}

func TestMemory_OverwriteReplacesValue(t *testing.T) {
	m := kv.NewMemory()

	m.Set("k", []string{"old"})
	m.Set("k", []string{"new", "values"})

	var got []string
	require.True(t, m.Get("k", &got))
	assert.Equal(t, []string{"new", "values"}, got)
}

func TestSQLite_RoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	first, err := kv.NewSQLite(path)
	require.NoError(t, err)
	first.Set("k", map[string]int{"a": 1})
	require.NoError(t, first.Close())

	second, err := kv.NewSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	var got map[string]int
	require.True(t, second.Get("k", &got))
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestSQLite_RemoveAndMissing(t *testing.T) {
	db, err := kv.NewSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	defer db.Close()

	var got string
	assert.False(t, db.Get("absent", &got))

	db.Set("k", "v")
	db.Remove("k")
	assert.False(t, db.Get("k", &got))
}
