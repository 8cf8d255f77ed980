package attendance

import (
	"context"
)

// Service defines business logic for attendance operations.
//
// Check-in and check-out drive a per-user per-day state machine:
// NoRecord → CheckedIn → CheckedOut, with CheckedOut terminal for the day.
type Service interface {
	// CheckIn opens the user's daily record. Fails with ErrAlreadyCheckedIn
	// when a record already exists for today, and with *ReasonRequiredError
	// when the user is outside the geofence without a reason.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes the daily record. Fails with ErrNoCheckInFound when no
	// record exists and ErrAlreadyCheckedOut when it is already closed.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// GetStatus projects the user's today-record into a client status.
	GetStatus(ctx context.Context, userID string) (StatusResponse, error)

	// GetMyRecords retrieves attendance history for one user.
	GetMyRecords(ctx context.Context, userID string, filter Filter) (ListResponse, error)

	// List retrieves attendance records across users (admin).
	List(ctx context.Context, filter Filter) (ListResponse, error)

	// Update applies an admin correction to a record.
	Update(ctx context.Context, req UpdateRequest) (RecordResponse, error)
}
