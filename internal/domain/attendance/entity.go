package attendance

import (
	"time"
)

// Status values an attendance record can carry. present and out_of_office are
// set by the check-in flow; absent comes from the overnight job; late and
// half_day are applied through admin corrections.
const (
	StatusPresent     = "present"
	StatusOutOfOffice = "out_of_office"
	StatusAbsent      = "absent"
	StatusLate        = "late"
	StatusHalfDay     = "half_day"
)

// ValidStatuses lists every status a record may hold.
var ValidStatuses = []string{StatusPresent, StatusOutOfOffice, StatusAbsent, StatusLate, StatusHalfDay}

// Record is the single attendance row for one user on one calendar day.
// The store enforces uniqueness of (UserID, Date). Optional fields are nil
// when absent; empty strings are normalized away at the DTO boundary.
type Record struct {
	ID     string
	UserID string
	Date   time.Time // day granularity, midnight UTC

	CheckIn  *time.Time
	CheckOut *time.Time
	Status   string

	LocationName *string
	Latitude     *float64
	Longitude    *float64
	Reason       *string

	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	CheckOutReason    *string

	IsOutOfOffice         bool
	IsOutOfOfficeCheckOut bool

	// Rounded meters from the office center at the moment of the action.
	// Historical snapshot, never recomputed.
	DistanceFromOffice         *int
	CheckOutDistanceFromOffice *int

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName *string
}
