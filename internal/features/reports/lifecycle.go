package reports

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	pkgerrors "github.com/xyz-asif/cleancity/pkg/errors"
)

// validNext is the enforced transition graph. completed allows a
// self-transition so repeated admin updates on a closed report stay legal;
// rejected is terminal.
var validNext = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusAssigned, StatusCompleted, StatusRejected},
	StatusAssigned:  {StatusCompleted, StatusRejected},
	StatusCompleted: {StatusCompleted},
	StatusRejected:  {},
}

// CanTransition reports whether a report may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range validNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BuildStatusUpdate validates an administrator's partial update against the
// report's current state and returns the fields to persist. Only supplied
// fields appear in the result; omitting status skips the transition check
// entirely, so assignment and notes can be edited in any state.
func BuildStatusUpdate(report *Report, req *UpdateStatusRequest) (bson.M, error) {
	update := bson.M{}

	if req.Status != nil {
		target := *req.Status
		if !ValidStatus(target) {
			return nil, fmt.Errorf("%w: unknown status %q", pkgerrors.ErrValidation, target)
		}
		if !CanTransition(report.Status, target) {
			return nil, fmt.Errorf("%w: cannot move report from %s to %s",
				pkgerrors.ErrInvalidTransition, report.Status, target)
		}
		update["status"] = target
	}

	if req.AssignedTruck != nil {
		update["assignedTruck"] = *req.AssignedTruck
	}
	if req.AssignedDriver != nil {
		update["assignedDriver"] = *req.AssignedDriver
	}
	if req.AdminNotes != nil {
		update["adminNotes"] = *req.AdminNotes
	}

	if len(update) == 0 {
		return nil, fmt.Errorf("%w: no fields to update", pkgerrors.ErrValidation)
	}

	return update, nil
}

// BuildVerifyUpdate validates the owner's verify action. Verification is
// only legal once the cleanup is completed, and flips verified one way;
// verifying an already verified report is a no-op, not an error.
func BuildVerifyUpdate(report *Report) (bson.M, error) {
	if report.Status != StatusCompleted {
		return nil, fmt.Errorf("%w: can only verify completed reports", pkgerrors.ErrInvalidTransition)
	}

	return bson.M{"verified": true}, nil
}
