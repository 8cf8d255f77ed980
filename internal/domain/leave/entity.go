package leave

import (
	"time"
)

// Request statuses
const (
	StatusWaitingApproval = "waiting_approval"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
	StatusCancelled       = "cancelled"
)

// LeaveType entity
type LeaveType struct {
	ID               string
	Name             string
	Code             string
	DefaultQuotaDays int
	RequiresApproval bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// LeaveRequest entity
type LeaveRequest struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	TotalDays   int
	Reason      string
	Status      string

	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName  *string
	LeaveTypeName *string
}
