package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
//
// The store must enforce uniqueness of (user_id, date): the service's
// read-then-write duplicate check has a race window, and the unique
// constraint is the authoritative duplicate signal. Implementations map that
// constraint violation to ErrAlreadyCheckedIn.
type Repository interface {
	// FindTodayRecord returns the record for (userID, date), nil when none
	// exists yet.
	FindTodayRecord(ctx context.Context, userID string, date time.Time) (*Record, error)

	// Create inserts a new record. Returns ErrAlreadyCheckedIn when a record
	// for (userID, date) already exists.
	Create(ctx context.Context, record Record) (Record, error)

	// Update writes the checkout fields (or admin corrections) of an
	// existing record. Exactly one row is touched.
	Update(ctx context.Context, record Record) error

	// GetByID retrieves a single record.
	GetByID(ctx context.Context, id string) (Record, error)

	// List retrieves records with filters and pagination (admin view).
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListForUser retrieves one user's records with filters and pagination.
	ListForUser(ctx context.Context, userID string, filter Filter) ([]Record, int64, error)

	// MarkAbsentees inserts absent records for active employees with no
	// attendance record and no approved leave on the given day. Returns the
	// number of records created.
	MarkAbsentees(ctx context.Context, date time.Time) (int64, error)
}
