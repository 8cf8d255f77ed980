package employee

import (
	"context"
)

// Repository defines data access for the employee directory.
type Repository interface {
	// Create inserts a new employee. Returns ErrEmailExists when the email
	// is already registered.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee.
	GetByID(ctx context.Context, id string) (Employee, error)

	// Update writes the mutable fields of an employee.
	Update(ctx context.Context, emp Employee) error

	// SetStatus flips an employee between active, inactive and onboarding.
	SetStatus(ctx context.Context, id string, status Status) error

	// List retrieves employees with filters and pagination.
	List(ctx context.Context, filter Filter) ([]Employee, int64, error)
}
