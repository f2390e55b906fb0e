package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/service"
)

func validReservation() domain.Reservation {
	return domain.Reservation{
		BoatID:     "boat-001",
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		ReservedBy: "Jo",
		Email:      "jo@example.com",
	}
}

func TestReservationCreate_Valid(t *testing.T) {
	svc := service.NewReservationService(newData(t))

	created, err := svc.Create(context.Background(), validReservation())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestReservationCreate_SingleDayIsAllowed(t *testing.T) {
	svc := service.NewReservationService(newData(t))

	r := validReservation()
	r.EndDate = r.StartDate

	_, err := svc.Create(context.Background(), r)
	assert.NoError(t, err)
}

func TestReservationCreate_Validation(t *testing.T) {
	svc := service.NewReservationService(newData(t))
	ctx := context.Background()

	cases := map[string]func(*domain.Reservation){
		"missing reservedBy": func(r *domain.Reservation) { r.ReservedBy = " " },
		"missing email":      func(r *domain.Reservation) { r.Email = "" },
		"end before start":   func(r *domain.Reservation) { r.EndDate = r.StartDate.AddDate(0, 0, -1) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			r := validReservation()
			mutate(&r)
			_, err := svc.Create(ctx, r)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationCreate_UnknownBoat(t *testing.T) {
	svc := service.NewReservationService(newData(t))

	r := validReservation()
	r.BoatID = "no-such-boat"

	_, err := svc.Create(context.Background(), r)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationUpdate_RejectsInvertedDates(t *testing.T) {
	svc := service.NewReservationService(newData(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, validReservation())
	require.NoError(t, err)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Update(ctx, created.ID, domain.ReservationPatch{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
