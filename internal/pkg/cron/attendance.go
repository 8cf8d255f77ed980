package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/clock"
)

type AttendanceJobs struct {
	attendanceRepo attendance.Repository
	clock          clock.Clock
}

func NewAttendanceJobs(attendanceRepo attendance.Repository, clk clock.Clock) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		clock:          clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills absent records for the previous day. The job
// ticks hourly but only acts during the midnight hour (00:00-00:59 UTC), so
// the day being closed out is complete. The insert is idempotent: reruns
// touch nothing already recorded.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	now := j.clock.Now()
	if now.Hour() != 0 {
		return nil
	}

	yesterday := now.Truncate(24 * time.Hour).AddDate(0, 0, -1)

	slog.Info("Cron: Starting mark-absent job", "date", yesterday.Format("2006-01-02"))

	created, err := j.attendanceRepo.MarkAbsentees(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absentees: %w", err)
	}

	slog.Info("Cron: Mark-absent job finished",
		"date", yesterday.Format("2006-01-02"),
		"records_created", created)

	return nil
}
