package reports

import (
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to Status }{
		{StatusPending, StatusApproved},
		{StatusPending, StatusRejected},
		{StatusApproved, StatusAssigned},
		{StatusApproved, StatusCompleted},
		{StatusApproved, StatusRejected},
		{StatusAssigned, StatusCompleted},
		{StatusAssigned, StatusRejected},
		{StatusCompleted, StatusCompleted},
	}
	for _, tc := range allowed {
		require.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to Status }{
		{StatusPending, StatusAssigned},
		{StatusPending, StatusCompleted},
		{StatusAssigned, StatusApproved},
		{StatusAssigned, StatusPending},
		{StatusCompleted, StatusPending},
		{StatusCompleted, StatusRejected},
		{StatusRejected, StatusPending},
		{StatusRejected, StatusApproved},
		{StatusRejected, StatusCompleted},
	}
	for _, tc := range denied {
		require.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be denied", tc.from, tc.to)
	}
}

func TestBuildStatusUpdate_MergeSemantics(t *testing.T) {
	report := &Report{Status: StatusPending, AdminNotes: "old notes", AssignedTruck: "TRK-01"}

	status := StatusApproved
	update, err := BuildStatusUpdate(report, &UpdateStatusRequest{Status: &status})
	require.NoError(t, err)

	// Only the supplied field is written; prior notes and assignment stay.
	require.Equal(t, 1, len(update))
	require.Equal(t, StatusApproved, update["status"])
}

func TestBuildStatusUpdate_EmptyStringIsSupplied(t *testing.T) {
	report := &Report{Status: StatusApproved, AdminNotes: "stale"}

	empty := ""
	update, err := BuildStatusUpdate(report, &UpdateStatusRequest{AdminNotes: &empty})
	require.NoError(t, err)
	require.Equal(t, "", update["adminNotes"])
}

func TestBuildStatusUpdate_NoFields(t *testing.T) {
	report := &Report{Status: StatusPending}

	_, err := BuildStatusUpdate(report, &UpdateStatusRequest{})
	require.ErrorIs(t, err, pkgerrors.ErrValidation)
}

func TestBuildStatusUpdate_InvalidTransition(t *testing.T) {
	report := &Report{Status: StatusPending}

	status := StatusCompleted
	_, err := BuildStatusUpdate(report, &UpdateStatusRequest{Status: &status})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidTransition)
}

func TestBuildStatusUpdate_UnknownStatus(t *testing.T) {
	report := &Report{Status: StatusPending}

	status := Status("resolved")
	_, err := BuildStatusUpdate(report, &UpdateStatusRequest{Status: &status})
	require.ErrorIs(t, err, pkgerrors.ErrValidation)
}

func TestBuildStatusUpdate_AssignmentWithoutStatus(t *testing.T) {
	// Assignment and notes edits are legal in any state, rejected included.
	report := &Report{Status: StatusRejected}

	truck := "TRK-09"
	driver := "M. Adeyemi"
	update, err := BuildStatusUpdate(report, &UpdateStatusRequest{AssignedTruck: &truck, AssignedDriver: &driver})
	require.NoError(t, err)
	require.Equal(t, "TRK-09", update["assignedTruck"])
	require.Equal(t, "M. Adeyemi", update["assignedDriver"])
}

func TestBuildVerifyUpdate(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusApproved, StatusAssigned, StatusRejected} {
		_, err := BuildVerifyUpdate(&Report{Status: status})
		require.ErrorIs(t, err, pkgerrors.ErrInvalidTransition, "verify should fail in %s", status)
	}

	update, err := BuildVerifyUpdate(&Report{Status: StatusCompleted})
	require.NoError(t, err)
	require.Equal(t, true, update["verified"])

	// Verifying an already verified report is a no-op, not an error.
	update, err = BuildVerifyUpdate(&Report{Status: StatusCompleted, Verified: true})
	require.NoError(t, err)
	require.Equal(t, true, update["verified"])
}
