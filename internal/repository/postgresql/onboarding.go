package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/onboarding"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type onboardingRepository struct {
	db *database.DB
}

func NewOnboardingRepository(db *database.DB) onboarding.Repository {
	return &onboardingRepository{db: db}
}

// CreateTasks implements onboarding.Repository. The batch is inserted inside
// one transaction so a checklist never materializes half-created.
func (o *onboardingRepository) CreateTasks(ctx context.Context, tasks []onboarding.Task) ([]onboarding.Task, error) {
	created := make([]onboarding.Task, 0, len(tasks))

	err := WithTransaction(ctx, o.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, o.db)

		query := `
			INSERT INTO onboarding_tasks (
				employee_id, title, description, due_date, status
			) VALUES (
				$1, $2, $3, $4, $5
			) RETURNING id, created_at, updated_at
		`

		for _, task := range tasks {
			err := q.QueryRow(txCtx, query,
				task.EmployeeID,
				task.Title,
				task.Description,
				task.DueDate,
				task.Status,
			).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
			if err != nil {
				return fmt.Errorf("failed to create onboarding task: %w", err)
			}
			created = append(created, task)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetTaskByID implements onboarding.Repository.
func (o *onboardingRepository) GetTaskByID(ctx context.Context, id string) (onboarding.Task, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, employee_id, title, description, due_date, status, completed_at,
			   created_at, updated_at
		FROM onboarding_tasks
		WHERE id = $1
	`

	var task onboarding.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&task.ID, &task.EmployeeID, &task.Title, &task.Description, &task.DueDate,
		&task.Status, &task.CompletedAt, &task.CreatedAt, &task.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.Task{}, onboarding.ErrTaskNotFound
		}
		return onboarding.Task{}, fmt.Errorf("failed to get onboarding task by ID: %w", err)
	}

	return task, nil
}

// UpdateTask implements onboarding.Repository.
func (o *onboardingRepository) UpdateTask(ctx context.Context, task onboarding.Task) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE onboarding_tasks SET
			status = $1,
			completed_at = $2,
			updated_at = $3
		WHERE id = $4
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, task.Status, task.CompletedAt, time.Now(), task.ID).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update onboarding task: %w", err)
	}

	return nil
}

// ListTasks implements onboarding.Repository.
func (o *onboardingRepository) ListTasks(ctx context.Context, employeeID string) ([]onboarding.Task, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, employee_id, title, description, due_date, status, completed_at,
			   created_at, updated_at
		FROM onboarding_tasks
		WHERE employee_id = $1
		ORDER BY due_date ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query onboarding tasks: %w", err)
	}
	defer rows.Close()

	var tasks []onboarding.Task
	for rows.Next() {
		var task onboarding.Task
		err := rows.Scan(
			&task.ID, &task.EmployeeID, &task.Title, &task.Description, &task.DueDate,
			&task.Status, &task.CompletedAt, &task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan onboarding task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// HasTasks implements onboarding.Repository.
func (o *onboardingRepository) HasTasks(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM onboarding_tasks WHERE employee_id = $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check onboarding tasks: %w", err)
	}

	return exists, nil
}
