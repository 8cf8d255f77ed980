package onboarding

import (
	"context"
)

// Service defines business logic for onboarding workflows.
type Service interface {
	// Start creates the default task checklist and flips the employee into
	// the onboarding status.
	Start(ctx context.Context, req StartRequest) (ProgressResponse, error)

	ListTasks(ctx context.Context, employeeID string) ([]TaskResponse, error)

	// CompleteTask and SkipTask close a single open task. When the last
	// open task closes, the employee becomes active.
	CompleteTask(ctx context.Context, taskID string) (TaskResponse, error)
	SkipTask(ctx context.Context, taskID string) (TaskResponse, error)

	Progress(ctx context.Context, employeeID string) (ProgressResponse, error)
}
