package leave

import "errors"

var (
	ErrLeaveRequestNotFound  = errors.New("leave request not found")
	ErrLeaveTypeNotFound     = errors.New("leave type not found")
	ErrInsufficientQuota     = errors.New("insufficient leave quota")
	ErrLeaveOverlaps         = errors.New("leave request overlaps an existing request")
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")
)
