package leave

import (
	"context"
	"time"
)

// TypeRepository defines data access for leave types.
type TypeRepository interface {
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
}

// RequestRepository defines data access for leave requests.
type RequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	Update(ctx context.Context, req LeaveRequest) error
	List(ctx context.Context, filter Filter) ([]LeaveRequest, int64, error)

	// HasOverlap reports whether the employee already has a non-rejected,
	// non-cancelled request intersecting [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// ApprovedDays sums the approved leave days of one employee for one
	// leave type within the given year.
	ApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error)
}
