package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/kv"
	"github.com/rigreport/rigreport/internal/store"
	"github.com/rigreport/rigreport/testutil"
)

func ptr[T any](v T) *T { return &v }

// ---- bootstrap and seeding -------------------------------------------------

func TestNew_SeedsOnFirstRun(t *testing.T) {
	s := testutil.NewStore(t)

	boats, err := s.ListBoats(context.Background())
	require.NoError(t, err)
	require.Len(t, boats, 3)
	assert.Equal(t, "boat-001", boats[0].ID)
	assert.Equal(t, "Morning Star", boats[0].DisplayName)

	entries, err := s.ListMaintenance(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// Collections with no seed start empty, not nil-persisted.
	reservations, err := s.ListReservations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestNew_HydratesFromBacking(t *testing.T) {
	backing := kv.NewMemory()
	first := testutil.NewStoreWithBacking(t, backing)

	created, err := first.CreateBoat(context.Background(), domain.Boat{
		DisplayName: "Zephyr",
		Type:        domain.BoatTypeDinghy,
		Status:      domain.BoatStatusOK,
	})
	require.NoError(t, err)

	// A second store over the same backing sees the persisted data, not the
	// seed: same record count, same ids, same timestamps.
	second := testutil.NewStoreWithBacking(t, backing)
	got, err := second.GetBoat(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	boats, err := second.ListBoats(context.Background())
	require.NoError(t, err)
	assert.Len(t, boats, 4)
}

func TestNew_VersionMismatchPurgesAndReseeds(t *testing.T) {
	backing := kv.NewMemory()
	first := testutil.NewStoreWithBacking(t, backing)

	_, err := first.CreateBoat(context.Background(), domain.Boat{DisplayName: "Doomed"})
	require.NoError(t, err)

	// Simulate data persisted by an older build.
	backing.Set("rigreport:version", "2")

	second := testutil.NewStoreWithBacking(t, backing)
	boats, err := second.ListBoats(context.Background())
	require.NoError(t, err)
	assert.Len(t, boats, 3, "stale data should be discarded in favor of seed")

	var marker string
	require.True(t, backing.Get("rigreport:version", &marker))
	assert.Equal(t, store.DataVersion, marker)
}

func TestNew_MatchingVersionKeepsData(t *testing.T) {
	backing := kv.NewMemory()
	first := testutil.NewStoreWithBacking(t, backing)

	require.NoError(t, first.DeleteBoat(context.Background(), "boat-001"))

	// Same version marker: the deletion must survive reconstruction.
	second := testutil.NewStoreWithBacking(t, backing)
	_, err := second.GetBoat(context.Background(), "boat-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- create ----------------------------------------------------------------

func TestCreateBoat_StampsIDAndTimestamps(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), time.Second)
	s := testutil.NewStore(t, store.WithClock(clock.Now))

	created, err := s.CreateBoat(context.Background(), domain.Boat{
		ID:          "caller-supplied-id",
		DisplayName: "Zephyr",
		CreatedAt:   time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "caller-supplied-id", created.ID, "store assigns ids, callers do not")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), created.CreatedAt)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateBoat_IDsAreUnique(t *testing.T) {
	s := testutil.NewStore(t)

	seen := map[string]bool{}
	for range 50 {
		b, err := s.CreateBoat(context.Background(), domain.Boat{DisplayName: "x"})
		require.NoError(t, err)
		assert.False(t, seen[b.ID], "duplicate id %q", b.ID)
		seen[b.ID] = true
	}
}

func TestCreateMaintenanceEntry_StampsReportedAtOnly(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), time.Second)
	s := testutil.NewStore(t, store.WithClock(clock.Now))

	created, err := s.CreateMaintenanceEntry(context.Background(), domain.MaintenanceEntry{
		BoatID:      "boat-001",
		Severity:    domain.SeverityLow,
		Status:      domain.MaintenanceOpen,
		Description: "squeaky winch",
		ReportedBy:  "Jo",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), created.ReportedAt)
}

// ---- update ----------------------------------------------------------------

func TestUpdateBoat_MergesPatchAndPreservesRest(t *testing.T) {
	s := testutil.NewStore(t)

	updated, err := s.UpdateBoat(context.Background(), "boat-001", domain.BoatPatch{
		Location: ptr("Dock C"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dock C", updated.Location)
	assert.Equal(t, "Morning Star", updated.DisplayName, "untouched fields survive a patch")
	assert.Equal(t, "NL-MST-4471", updated.HullNumber)
	assert.Equal(t, domain.BoatStatusOK, updated.Status)
}

func TestUpdateBoat_IDAndCreatedAtAreImmutable(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), time.Minute)
	s := testutil.NewStore(t, store.WithClock(clock.Now))

	created, err := s.CreateBoat(context.Background(), domain.Boat{DisplayName: "Zephyr"})
	require.NoError(t, err)

	updated, err := s.UpdateBoat(context.Background(), created.ID, domain.BoatPatch{
		Status: ptr(domain.BoatStatusNeedsRepair),
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt must advance on every write")
}

func TestUpdateBoat_UnknownIDIsNotFound(t *testing.T) {
	s := testutil.NewStore(t)

	_, err := s.UpdateBoat(context.Background(), "no-such-boat", domain.BoatPatch{Location: ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateBoat_RejectsUnknownStatus(t *testing.T) {
	s := testutil.NewStore(t)

	bad := domain.BoatStatus("Sunk")
	_, err := s.UpdateBoat(context.Background(), "boat-001", domain.BoatPatch{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)

	// The record must be untouched after a rejected patch.
	got, err := s.GetBoat(context.Background(), "boat-001")
	require.NoError(t, err)
	assert.Equal(t, domain.BoatStatusOK, got.Status)
}

func TestUpdateMaintenanceEntry_ReportedAtSurvives(t *testing.T) {
	s := testutil.NewStore(t)

	before, err := s.GetMaintenanceEntry(context.Background(), "maintenance-001")
	require.NoError(t, err)

	updated, err := s.UpdateMaintenanceEntry(context.Background(), "maintenance-001", domain.MaintenanceEntryPatch{
		Status: ptr(domain.MaintenanceResolved),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MaintenanceResolved, updated.Status)
	assert.Equal(t, before.ReportedAt, updated.ReportedAt)
	assert.Equal(t, before.ReportedBy, updated.ReportedBy)
}

// ---- delete ----------------------------------------------------------------

func TestDeleteBoat_CascadesIntoMaintenance(t *testing.T) {
	s := testutil.NewStore(t)

	// Seed: maintenance-001 references boat-003.
	require.NoError(t, s.DeleteBoat(context.Background(), "boat-003"))

	_, err := s.GetBoat(context.Background(), "boat-003")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = s.GetMaintenanceEntry(context.Background(), "maintenance-001")
	assert.ErrorIs(t, err, domain.ErrNotFound, "entries for the deleted boat go with it")

	// Entries for other boats are untouched.
	_, err = s.GetMaintenanceEntry(context.Background(), "maintenance-002")
	assert.NoError(t, err)
}

func TestDeleteBoat_LeavesReservationsBehind(t *testing.T) {
	s := testutil.NewStore(t)

	res, err := s.CreateReservation(context.Background(), domain.Reservation{
		BoatID:     "boat-001",
		ReservedBy: "Jo",
		Email:      "jo@example.com",
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteBoat(context.Background(), "boat-001"))

	// The reservation now dangles. That is the contract: only maintenance
	// entries cascade.
	got, err := s.GetReservation(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, "boat-001", got.BoatID)
}

func TestDeleteBoat_UnknownIDIsNoOp(t *testing.T) {
	s := testutil.NewStore(t)

	require.NoError(t, s.DeleteBoat(context.Background(), "no-such-boat"))
	require.NoError(t, s.DeleteBoat(context.Background(), "no-such-boat"))

	boats, err := s.ListBoats(context.Background())
	require.NoError(t, err)
	assert.Len(t, boats, 3)
}

func TestDeleteEquipment_IsIdempotent(t *testing.T) {
	s := testutil.NewStore(t)

	require.NoError(t, s.DeleteEquipment(context.Background(), "equipment-001"))
	require.NoError(t, s.DeleteEquipment(context.Background(), "equipment-001"))

	_, err := s.GetEquipment(context.Background(), "equipment-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- persistence round trips -----------------------------------------------

func TestMutations_PersistAcrossReconstruction(t *testing.T) {
	backing := kv.NewMemory()
	first := testutil.NewStoreWithBacking(t, backing)
	ctx := context.Background()

	created, err := first.CreateBoat(ctx, domain.Boat{DisplayName: "Zephyr"})
	require.NoError(t, err)
	_, err = first.UpdateBoat(ctx, "boat-002", domain.BoatPatch{Status: ptr(domain.BoatStatusOK)})
	require.NoError(t, err)
	require.NoError(t, first.DeleteBoat(ctx, "boat-003"))

	second := testutil.NewStoreWithBacking(t, backing)

	boats, err := second.ListBoats(ctx)
	require.NoError(t, err)
	assert.Len(t, boats, 3) // 3 seed - 1 deleted + 1 created

	got, err := second.GetBoat(ctx, "boat-002")
	require.NoError(t, err)
	assert.Equal(t, domain.BoatStatusOK, got.Status)

	_, err = second.GetBoat(ctx, created.ID)
	assert.NoError(t, err)
	_, err = second.GetBoat(ctx, "boat-003")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReset_RestoresSeedData(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	_, err := s.CreateBoat(ctx, domain.Boat{DisplayName: "Extra"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteBoat(ctx, "boat-001"))

	s.Reset()

	boats, err := s.ListBoats(ctx)
	require.NoError(t, err)
	require.Len(t, boats, 3)
	assert.Equal(t, "boat-001", boats[0].ID)
}

func TestClear_EmptiesEverythingAndNextStartReseeds(t *testing.T) {
	backing := kv.NewMemory()
	s := testutil.NewStoreWithBacking(t, backing)
	ctx := context.Background()

	s.Clear()

	boats, err := s.ListBoats(ctx)
	require.NoError(t, err)
	assert.Empty(t, boats)

	var marker string
	assert.False(t, backing.Get("rigreport:version", &marker), "clear removes the version marker")

	// With the marker gone, the next store starts from seed again.
	next := testutil.NewStoreWithBacking(t, backing)
	boats, err = next.ListBoats(ctx)
	require.NoError(t, err)
	assert.Len(t, boats, 3)
}

// ---- list isolation --------------------------------------------------------

func TestListBoats_ReturnsACopy(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	boats, err := s.ListBoats(ctx)
	require.NoError(t, err)
	boats[0].DisplayName = "tampered"

	again, err := s.ListBoats(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Morning Star", again[0].DisplayName)
}

func TestListMaintenanceForBoat_FiltersAndNeverReturnsNil(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	entries, err := s.ListMaintenanceForBoat(ctx, "boat-003")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "maintenance-001", entries[0].ID)

	empty, err := s.ListMaintenanceForBoat(ctx, "boat-001")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// ---- slip satellites -------------------------------------------------------

func TestSlipAssignments_AllowDuplicates(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	a := domain.SlipMemberAssignment{SlipID: "slip-001", MemberID: "member-001"}
	first, err := s.CreateSlipMemberAssignment(ctx, a)
	require.NoError(t, err)
	second, err := s.CreateSlipMemberAssignment(ctx, a)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	assignments, err := s.ListSlipMemberAssignmentsForSlip(ctx, "slip-001")
	require.NoError(t, err)
	assert.Len(t, assignments, 2)
}

func TestGetSlipMemberAssignment_RoundTripAndNotFound(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	created, err := s.CreateSlipMemberAssignment(ctx, domain.SlipMemberAssignment{
		SlipID:   "slip-001",
		MemberID: "member-001",
	})
	require.NoError(t, err)

	got, err := s.GetSlipMemberAssignment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.GetSlipMemberAssignment(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetSlipBoatAssignment_RoundTripAndNotFound(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	created, err := s.CreateSlipBoatAssignment(ctx, domain.SlipBoatAssignment{
		SlipID: "slip-002",
		BoatID: "boat-001",
	})
	require.NoError(t, err)

	got, err := s.GetSlipBoatAssignment(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.GetSlipBoatAssignment(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteSlip_LeavesSatellitesBehind(t *testing.T) {
	s := testutil.NewStore(t)
	ctx := context.Background()

	payment, err := s.CreateSlipPayment(ctx, domain.SlipPayment{
		SlipID: "slip-001",
		Amount: 120.50,
		Period: "2026-08",
		Status: domain.PaymentPending,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteSlip(ctx, "slip-001"))

	_, err = s.GetSlip(ctx, "slip-001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := s.GetSlipPayment(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, "slip-001", got.SlipID)
}
