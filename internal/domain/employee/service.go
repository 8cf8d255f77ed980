package employee

import (
	"context"
)

// Service defines business logic for the employee directory.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (Response, error)
	GetByID(ctx context.Context, id string) (Response, error)
	Update(ctx context.Context, req UpdateRequest) (Response, error)

	// Deactivate marks an employee inactive. Their attendance history is
	// retained as an audit trail.
	Deactivate(ctx context.Context, id string) error

	List(ctx context.Context, filter Filter) (ListResponse, error)
}
