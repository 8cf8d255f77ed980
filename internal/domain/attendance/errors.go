package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Check-in errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in today")

	// Check-out errors
	ErrNoCheckInFound    = errors.New("no check-in found for today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)

// ReasonRequiredError is returned when the user is outside the geofence and
// did not supply a reason. It carries the computed distance so the caller can
// show it when prompting for one. Soft rejection, nothing was persisted.
type ReasonRequiredError struct {
	DistanceMeters int
}

func (e *ReasonRequiredError) Error() string {
	return fmt.Sprintf("you are %dm outside the office geofence, a reason is required", e.DistanceMeters)
}
