package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/report"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

// MonthlySummary implements report.Repository. One row per active employee,
// even for employees with no attendance in the month.
func (r *reportRepository) MonthlySummary(ctx context.Context, monthStart time.Time) ([]report.MonthlySummaryRow, error) {
	q := GetQuerier(ctx, r.db)

	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT e.id, e.full_name,
			   COUNT(*) FILTER (WHERE a.status = 'present') AS days_present,
			   COUNT(*) FILTER (WHERE a.status = 'out_of_office') AS days_out_of_office,
			   COUNT(*) FILTER (WHERE a.status = 'absent') AS days_absent,
			   COUNT(*) FILTER (WHERE a.status = 'late') AS days_late,
			   COUNT(*) FILTER (WHERE a.status = 'half_day') AS days_half_day,
			   COALESCE((
				   SELECT SUM(
					   LEAST(lr.end_date, $2::date - 1) - GREATEST(lr.start_date, $1::date) + 1
				   )
				   FROM leave_requests lr
				   WHERE lr.employee_id = e.id
					 AND lr.status = 'approved'
					 AND lr.start_date < $2
					 AND lr.end_date >= $1
			   ), 0) AS approved_leave_days
		FROM employees e
		LEFT JOIN attendances a
			   ON a.user_id = e.id
			  AND a.date >= $1
			  AND a.date < $2
		WHERE e.status = 'active'
		GROUP BY e.id, e.full_name
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly summary: %w", err)
	}
	defer rows.Close()

	var summary []report.MonthlySummaryRow
	for rows.Next() {
		var row report.MonthlySummaryRow
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName,
			&row.DaysPresent, &row.DaysOutOfOffice, &row.DaysAbsent,
			&row.DaysLate, &row.DaysHalfDay,
			&row.ApprovedLeaveDays,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly summary row: %w", err)
		}
		summary = append(summary, row)
	}

	return summary, nil
}
