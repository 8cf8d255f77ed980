package onboarding

import (
	"context"
)

// Repository defines data access for onboarding checklists.
type Repository interface {
	// CreateTasks inserts a batch of tasks for one employee.
	CreateTasks(ctx context.Context, tasks []Task) ([]Task, error)

	GetTaskByID(ctx context.Context, id string) (Task, error)
	UpdateTask(ctx context.Context, task Task) error
	ListTasks(ctx context.Context, employeeID string) ([]Task, error)

	// HasTasks reports whether onboarding was already started for the
	// employee.
	HasTasks(ctx context.Context, employeeID string) (bool, error)
}
