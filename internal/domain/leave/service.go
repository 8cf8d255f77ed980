package leave

import (
	"context"
)

// Service defines business logic for leave management.
type Service interface {
	// Submit files a new leave request after overlap and quota checks.
	Submit(ctx context.Context, req SubmitRequest) (Response, error)

	GetByID(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)

	// Approve and Reject move a waiting_approval request to its final
	// state; both fail with ErrLeaveAlreadyProcessed otherwise.
	Approve(ctx context.Context, req ReviewRequest) (Response, error)
	Reject(ctx context.Context, req ReviewRequest) (Response, error)

	// Cancel withdraws the employee's own waiting_approval request.
	Cancel(ctx context.Context, id string) (Response, error)

	// Balance reports per-type quota usage for one employee in one year.
	Balance(ctx context.Context, employeeID string, year int) ([]BalanceResponse, error)

	ListTypes(ctx context.Context) ([]TypeResponse, error)
}
