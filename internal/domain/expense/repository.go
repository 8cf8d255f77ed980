package expense

import (
	"context"
)

// Repository defines data access for expense claims.
type Repository interface {
	Create(ctx context.Context, claim Claim) (Claim, error)
	GetByID(ctx context.Context, id string) (Claim, error)
	Update(ctx context.Context, claim Claim) error
	List(ctx context.Context, filter Filter) ([]Claim, int64, error)
}
