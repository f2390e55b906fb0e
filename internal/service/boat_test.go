package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/service"
)

func TestBoatCreate_DefaultsStatusToOK(t *testing.T) {
	svc := service.NewBoatService(newData(t))

	created, err := svc.Create(context.Background(), domain.Boat{DisplayName: "Zephyr"})
	require.NoError(t, err)
	assert.Equal(t, domain.BoatStatusOK, created.Status)
}

func TestBoatCreate_RequiresDisplayName(t *testing.T) {
	svc := service.NewBoatService(newData(t))

	_, err := svc.Create(context.Background(), domain.Boat{DisplayName: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBoatMarkOK_OverridesAnyStatus(t *testing.T) {
	data := newData(t)
	svc := service.NewBoatService(data)
	ctx := context.Background()

	// boat-002 starts at "Needs inspection" in the seed.
	updated, err := svc.MarkOK(ctx, "boat-002")
	require.NoError(t, err)
	assert.Equal(t, domain.BoatStatusOK, updated.Status)

	got, err := data.Boat(ctx, "boat-002")
	require.NoError(t, err)
	assert.Equal(t, domain.BoatStatusOK, got.Status)
}

func TestBoatMarkOK_UnknownBoat(t *testing.T) {
	svc := service.NewBoatService(newData(t))

	_, err := svc.MarkOK(context.Background(), "no-such-boat")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBoatDelete_TakesMaintenanceWithIt(t *testing.T) {
	data := newData(t)
	svc := service.NewBoatService(data)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "boat-003"))

	entries, err := data.Maintenance(ctx)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, "boat-003", e.BoatID)
	}
}
