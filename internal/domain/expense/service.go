package expense

import (
	"context"
)

// Service defines business logic for expense claims.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)

	// Approve and Reject move a submitted claim to its reviewed state; both
	// fail with ErrClaimAlreadyProcessed otherwise.
	Approve(ctx context.Context, req ReviewRequest) (Response, error)
	Reject(ctx context.Context, req ReviewRequest) (Response, error)

	// MarkReimbursed records payout of an approved claim.
	MarkReimbursed(ctx context.Context, id string) (Response, error)
}
