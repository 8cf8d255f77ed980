package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.RequestRepository.
func (l *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_requests (
			employee_id, leave_type_id, start_date, end_date, total_days, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID,
		req.LeaveTypeID,
		req.StartDate,
		req.EndDate,
		req.TotalDays,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.RequestRepository.
func (l *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.total_days, lr.reason, lr.status,
			   lr.reviewed_by, lr.reviewed_at, lr.rejection_reason,
			   lr.created_at, lr.updated_at,
			   e.full_name AS employee_name,
			   lt.name AS leave_type_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE lr.id = $1
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
		&req.TotalDays, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
		&req.EmployeeName, &req.LeaveTypeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return req, nil
}

// Update implements leave.RequestRepository.
func (l *leaveRequestRepository) Update(ctx context.Context, req leave.LeaveRequest) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_requests SET
			status = $1,
			reviewed_by = $2,
			reviewed_at = $3,
			rejection_reason = $4,
			updated_at = $5
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Status,
		req.ReviewedBy,
		req.ReviewedAt,
		req.RejectionReason,
		time.Now(),
		req.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	return nil
}

// List implements leave.RequestRepository.
func (l *leaveRequestRepository) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, l.db)

	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.LeaveTypeID != nil && *filter.LeaveTypeID != "" {
		baseWhere += fmt.Sprintf(" AND lr.leave_type_id = $%d", argIdx)
		args = append(args, *filter.LeaveTypeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND lr.end_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND lr.start_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.total_days, lr.reason, lr.status,
			   lr.reviewed_by, lr.reviewed_at, lr.rejection_reason,
			   lr.created_at, lr.updated_at,
			   e.full_name AS employee_name,
			   lt.name AS leave_type_name
		FROM leave_requests lr
		LEFT JOIN employees e ON e.id = lr.employee_id
		LEFT JOIN leave_types lt ON lt.id = lr.leave_type_id
		WHERE %s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.LeaveTypeID, &req.StartDate, &req.EndDate,
			&req.TotalDays, &req.Reason, &req.Status,
			&req.ReviewedBy, &req.ReviewedAt, &req.RejectionReason,
			&req.CreatedAt, &req.UpdatedAt,
			&req.EmployeeName, &req.LeaveTypeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, total, nil
}

// HasOverlap implements leave.RequestRepository.
func (l *leaveRequestRepository) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('waiting_approval', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var overlaps bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&overlaps); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return overlaps, nil
}

// ApprovedDays implements leave.RequestRepository.
func (l *leaveRequestRepository) ApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND leave_type_id = $2
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $3
	`

	var days int
	if err := q.QueryRow(ctx, query, employeeID, leaveTypeID, year).Scan(&days); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return days, nil
}
