package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.user_id, a.date,
	a.check_in, a.check_out, a.status,
	a.location_name, a.latitude, a.longitude, a.reason,
	a.check_out_latitude, a.check_out_longitude, a.check_out_reason,
	a.is_out_of_office, a.is_out_of_office_check_out,
	a.distance_from_office, a.check_out_distance_from_office,
	a.created_at, a.updated_at
`

func scanRecord(row pgx.Row, rec *attendance.Record) error {
	return row.Scan(
		&rec.ID, &rec.UserID, &rec.Date,
		&rec.CheckIn, &rec.CheckOut, &rec.Status,
		&rec.LocationName, &rec.Latitude, &rec.Longitude, &rec.Reason,
		&rec.CheckOutLatitude, &rec.CheckOutLongitude, &rec.CheckOutReason,
		&rec.IsOutOfOffice, &rec.IsOutOfOfficeCheckOut,
		&rec.DistanceFromOffice, &rec.CheckOutDistanceFromOffice,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
}

// FindTodayRecord implements attendance.Repository.
func (a *attendanceRepository) FindTodayRecord(ctx context.Context, userID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := scanRecord(q.QueryRow(ctx, query, userID, date), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record yet today
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &rec, nil
}

// Create implements attendance.Repository. The unique index on
// (user_id, date) is the authoritative duplicate signal: a violation maps to
// ErrAlreadyCheckedIn regardless of what the service saw before the insert.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			user_id, date, check_in, check_out, status,
			location_name, latitude, longitude, reason,
			is_out_of_office, distance_from_office
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.UserID,
		rec.Date,
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		rec.LocationName,
		rec.Latitude,
		rec.Longitude,
		rec.Reason,
		rec.IsOutOfOffice,
		rec.DistanceFromOffice,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return rec, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_in = $1,
			check_out = $2,
			status = $3,
			location_name = $4,
			reason = $5,
			check_out_latitude = $6,
			check_out_longitude = $7,
			check_out_reason = $8,
			is_out_of_office = $9,
			is_out_of_office_check_out = $10,
			distance_from_office = $11,
			check_out_distance_from_office = $12,
			updated_at = $13
		WHERE id = $14
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.CheckIn,
		rec.CheckOut,
		rec.Status,
		rec.LocationName,
		rec.Reason,
		rec.CheckOutLatitude,
		rec.CheckOutLongitude,
		rec.CheckOutReason,
		rec.IsOutOfOffice,
		rec.IsOutOfOfficeCheckOut,
		rec.DistanceFromOffice,
		rec.CheckOutDistanceFromOffice,
		time.Now(),
		rec.ID,
	).Scan(&updatedID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `,
			e.full_name AS user_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.user_id
		WHERE a.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.UserID, &rec.Date,
		&rec.CheckIn, &rec.CheckOut, &rec.Status,
		&rec.LocationName, &rec.Latitude, &rec.Longitude, &rec.Reason,
		&rec.CheckOutLatitude, &rec.CheckOutLongitude, &rec.CheckOutReason,
		&rec.IsOutOfOffice, &rec.IsOutOfOfficeCheckOut,
		&rec.DistanceFromOffice, &rec.CheckOutDistanceFromOffice,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.UserName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return rec, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND a.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}

	if filter.UserName != nil && *filter.UserName != "" {
		baseWhere += fmt.Sprintf(" AND e.full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.UserName+"%")
		argIdx++
	}

	return a.list(ctx, filter, baseWhere, args, argIdx)
}

// ListForUser implements attendance.Repository.
func (a *attendanceRepository) ListForUser(ctx context.Context, userID string, filter attendance.Filter) ([]attendance.Record, int64, error) {
	return a.list(ctx, filter, "a.user_id = $1", []interface{}{userID}, 2)
}

func (a *attendanceRepository) list(ctx context.Context, filter attendance.Filter, baseWhere string, args []interface{}, argIdx int) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.user_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	orderByField := "a.date"
	switch filter.SortBy {
	case "user_name":
		orderByField = "e.full_name"
	case "check_in_time":
		orderByField = "a.check_in"
	case "check_out_time":
		orderByField = "a.check_out"
	case "status":
		orderByField = "a.status"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT `+attendanceColumns+`,
			e.full_name AS user_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.user_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.UserID, &rec.Date,
			&rec.CheckIn, &rec.CheckOut, &rec.Status,
			&rec.LocationName, &rec.Latitude, &rec.Longitude, &rec.Reason,
			&rec.CheckOutLatitude, &rec.CheckOutLongitude, &rec.CheckOutReason,
			&rec.IsOutOfOffice, &rec.IsOutOfOfficeCheckOut,
			&rec.DistanceFromOffice, &rec.CheckOutDistanceFromOffice,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.UserName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// MarkAbsentees implements attendance.Repository. Inserts one absent record
// per active employee with no record and no approved leave on the given day.
func (a *attendanceRepository) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (user_id, date, status)
		SELECT e.id, $1, 'absent'
		FROM employees e
		WHERE e.status = 'active'
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.user_id = e.id AND a.date = $1
		  )
		  AND NOT EXISTS (
			SELECT 1 FROM leave_requests lr
			WHERE lr.employee_id = e.id
			  AND lr.status = 'approved'
			  AND $1 BETWEEN lr.start_date AND lr.end_date
		  )
		ON CONFLICT (user_id, date) DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	return commandTag.RowsAffected(), nil
}
