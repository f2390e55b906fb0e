package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/query"
	"github.com/rigreport/rigreport/testutil"
)

func ptr[T any](v T) *T { return &v }

func newClient(t *testing.T) *query.Client {
	t.Helper()
	return query.New(testutil.NewStore(t))
}

func TestBoats_ServesFromCache(t *testing.T) {
	s := testutil.NewStore(t)
	c := query.New(s)
	ctx := context.Background()

	first, err := c.Boats(ctx)
	require.NoError(t, err)
	require.Len(t, first, 3)

	// A write that bypasses the client leaves the cache stale on purpose:
	// the invalidation contract only covers mutations made through it.
	_, err = s.CreateBoat(ctx, domain.Boat{DisplayName: "Bypass"})
	require.NoError(t, err)

	again, err := c.Boats(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 3, "cached list should not see the bypassing write")
}

func TestCreateBoat_InvalidatesList(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.Boats(ctx)
	require.NoError(t, err)

	created, err := c.CreateBoat(ctx, domain.Boat{DisplayName: "Zephyr"})
	require.NoError(t, err)

	boats, err := c.Boats(ctx)
	require.NoError(t, err)
	require.Len(t, boats, 4)

	got, err := c.Boat(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zephyr", got.DisplayName)
}

func TestUpdateBoat_InvalidatesListAndRecord(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	// Prime both the list and the single-record entries.
	_, err := c.Boats(ctx)
	require.NoError(t, err)
	_, err = c.Boat(ctx, "boat-001")
	require.NoError(t, err)

	_, err = c.UpdateBoat(ctx, "boat-001", domain.BoatPatch{Location: ptr("Dock Z")})
	require.NoError(t, err)

	got, err := c.Boat(ctx, "boat-001")
	require.NoError(t, err)
	assert.Equal(t, "Dock Z", got.Location)

	boats, err := c.Boats(ctx)
	require.NoError(t, err)
	for _, b := range boats {
		if b.ID == "boat-001" {
			assert.Equal(t, "Dock Z", b.Location)
		}
	}
}

func TestDeleteBoat_InvalidatesCascadedMaintenance(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	// Prime the maintenance list and the boat-scoped sublist.
	entries, err := c.Maintenance(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	scoped, err := c.MaintenanceForBoat(ctx, "boat-003")
	require.NoError(t, err)
	require.Len(t, scoped, 1)

	require.NoError(t, c.DeleteBoat(ctx, "boat-003"))

	entries, err = c.Maintenance(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "cascade must be visible through the cache")

	scoped, err = c.MaintenanceForBoat(ctx, "boat-003")
	require.NoError(t, err)
	assert.Empty(t, scoped)
}

func TestCreateMaintenanceEntry_InvalidatesBoatScopedList(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	scoped, err := c.MaintenanceForBoat(ctx, "boat-001")
	require.NoError(t, err)
	require.Empty(t, scoped)

	_, err = c.CreateMaintenanceEntry(ctx, domain.MaintenanceEntry{
		BoatID:      "boat-001",
		Severity:    domain.SeverityLow,
		Status:      domain.MaintenanceOpen,
		Description: "frayed line",
		ReportedBy:  "Jo",
	})
	require.NoError(t, err)

	scoped, err = c.MaintenanceForBoat(ctx, "boat-001")
	require.NoError(t, err)
	assert.Len(t, scoped, 1)
}

func TestUpdateMaintenanceEntry_MovingBoatsRefreshesBothSublists(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	// maintenance-002 starts on boat-002. Prime both sublists.
	from, err := c.MaintenanceForBoat(ctx, "boat-002")
	require.NoError(t, err)
	require.Len(t, from, 1)
	to, err := c.MaintenanceForBoat(ctx, "boat-001")
	require.NoError(t, err)
	require.Empty(t, to)

	_, err = c.UpdateMaintenanceEntry(ctx, "maintenance-002", domain.MaintenanceEntryPatch{
		BoatID: ptr("boat-001"),
	})
	require.NoError(t, err)

	from, err = c.MaintenanceForBoat(ctx, "boat-002")
	require.NoError(t, err)
	assert.Empty(t, from)
	to, err = c.MaintenanceForBoat(ctx, "boat-001")
	require.NoError(t, err)
	assert.Len(t, to, 1)
}

func TestSlipMemberAssignment_CachedUntilUnassigned(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	created, err := c.CreateSlipMemberAssignment(ctx, domain.SlipMemberAssignment{
		SlipID:   "slip-001",
		MemberID: "member-001",
	})
	require.NoError(t, err)

	got, err := c.SlipMemberAssignment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, c.DeleteSlipMemberAssignment(ctx, created.ID))

	_, err = c.SlipMemberAssignment(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "delete should drop the cached record")
}

func TestSlipBoatAssignment_CachedUntilUnassigned(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	created, err := c.CreateSlipBoatAssignment(ctx, domain.SlipBoatAssignment{
		SlipID: "slip-001",
		BoatID: "boat-002",
	})
	require.NoError(t, err)

	got, err := c.SlipBoatAssignment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, c.DeleteSlipBoatAssignment(ctx, created.ID))

	_, err = c.SlipBoatAssignment(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "delete should drop the cached record")
}

func TestReset_FlushesTheWholeCache(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.CreateBoat(ctx, domain.Boat{DisplayName: "Doomed"})
	require.NoError(t, err)
	boats, err := c.Boats(ctx)
	require.NoError(t, err)
	require.Len(t, boats, 4)

	c.Reset(ctx)

	boats, err = c.Boats(ctx)
	require.NoError(t, err)
	assert.Len(t, boats, 3)
}

func TestClear_FlushesTheWholeCache(t *testing.T) {
	c := newClient(t)
	ctx := context.Background()

	_, err := c.Boats(ctx)
	require.NoError(t, err)

	c.Clear(ctx)

	boats, err := c.Boats(ctx)
	require.NoError(t, err)
	assert.Empty(t, boats)
}
