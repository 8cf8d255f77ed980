package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepository struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) leave.TypeRepository {
	return &leaveTypeRepository{db: db}
}

// GetByID implements leave.TypeRepository.
func (l *leaveTypeRepository) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, code, default_quota_days, requires_approval, created_at, updated_at
		FROM leave_types
		WHERE id = $1
	`

	var lt leave.LeaveType
	err := q.QueryRow(ctx, query, id).Scan(
		&lt.ID, &lt.Name, &lt.Code, &lt.DefaultQuotaDays, &lt.RequiresApproval,
		&lt.CreatedAt, &lt.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
		}
		return leave.LeaveType{}, fmt.Errorf("failed to get leave type by ID: %w", err)
	}

	return lt, nil
}

// List implements leave.TypeRepository.
func (l *leaveTypeRepository) List(ctx context.Context) ([]leave.LeaveType, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name, code, default_quota_days, requires_approval, created_at, updated_at
		FROM leave_types
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	var types []leave.LeaveType
	for rows.Next() {
		var lt leave.LeaveType
		err := rows.Scan(
			&lt.ID, &lt.Name, &lt.Code, &lt.DefaultQuotaDays, &lt.RequiresApproval,
			&lt.CreatedAt, &lt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave type: %w", err)
		}
		types = append(types, lt)
	}

	return types, nil
}
