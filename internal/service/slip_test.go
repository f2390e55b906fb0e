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

func TestAssignMember_VerifiesBothSides(t *testing.T) {
	svc := service.NewSlipService(newData(t))
	ctx := context.Background()

	created, err := svc.AssignMember(ctx, domain.SlipMemberAssignment{
		SlipID:   "slip-001",
		MemberID: "member-001",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	_, err = svc.AssignMember(ctx, domain.SlipMemberAssignment{SlipID: "no-such-slip", MemberID: "member-001"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AssignMember(ctx, domain.SlipMemberAssignment{SlipID: "slip-001", MemberID: "no-such-member"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssignMember_AllowsDuplicates(t *testing.T) {
	svc := service.NewSlipService(newData(t))
	ctx := context.Background()

	a := domain.SlipMemberAssignment{SlipID: "slip-002", MemberID: "member-002"}
	_, err := svc.AssignMember(ctx, a)
	require.NoError(t, err)
	_, err = svc.AssignMember(ctx, a)
	require.NoError(t, err)

	rows, err := svc.ListMemberAssignments(ctx, "slip-002")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestAssignBoat_VerifiesBothSides(t *testing.T) {
	svc := service.NewSlipService(newData(t))
	ctx := context.Background()

	_, err := svc.AssignBoat(ctx, domain.SlipBoatAssignment{SlipID: "slip-001", BoatID: "boat-001"})
	require.NoError(t, err)

	_, err = svc.AssignBoat(ctx, domain.SlipBoatAssignment{SlipID: "slip-001", BoatID: "no-such-boat"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordPayment_Validation(t *testing.T) {
	svc := service.NewSlipService(newData(t))
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, domain.SlipPayment{SlipID: "slip-001", Amount: 0, Period: "2026-08"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.RecordPayment(ctx, domain.SlipPayment{SlipID: "no-such-slip", Amount: 50, Period: "2026-08"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordPayment_DefaultsToPending(t *testing.T) {
	svc := service.NewSlipService(newData(t))

	created, err := svc.RecordPayment(context.Background(), domain.SlipPayment{
		SlipID: "slip-001",
		Amount: 120.50,
		Period: "2026-08",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, created.Status)
}

func TestReserveSlip_Validation(t *testing.T) {
	svc := service.NewSlipService(newData(t))
	ctx := context.Background()

	valid := domain.SlipReservation{
		SlipID:     "slip-001",
		BoatName:   "Visitor",
		ReservedBy: "Jo",
		Email:      "jo@example.com",
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
	}

	created, err := svc.ReserveSlip(ctx, valid)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	noName := valid
	noName.ReservedBy = ""
	_, err = svc.ReserveSlip(ctx, noName)
	assert.ErrorIs(t, err, domain.ErrValidation)

	inverted := valid
	inverted.EndDate = inverted.StartDate.AddDate(0, 0, -5)
	_, err = svc.ReserveSlip(ctx, inverted)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
