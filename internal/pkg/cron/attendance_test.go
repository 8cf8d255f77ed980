package cron

import (
	"context"
	"testing"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/attendance"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type markAbsenteesRecorder struct {
	attendance.Repository

	calls []time.Time
}

func (r *markAbsenteesRecorder) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	r.calls = append(r.calls, date)
	return 3, nil
}

func TestMarkAbsentEmployeesRunsOnlyAtMidnight(t *testing.T) {
	repo := &markAbsenteesRecorder{}
	jobs := NewAttendanceJobs(repo, clock.Fixed{T: time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)})

	err := jobs.MarkAbsentEmployees(context.Background())
	require.NoError(t, err)
	assert.Empty(t, repo.calls)
}

func TestMarkAbsentEmployeesMarksYesterday(t *testing.T) {
	repo := &markAbsenteesRecorder{}
	jobs := NewAttendanceJobs(repo, clock.Fixed{T: time.Date(2025, 6, 10, 0, 15, 0, 0, time.UTC)})

	err := jobs.MarkAbsentEmployees(context.Background())
	require.NoError(t, err)

	require.Len(t, repo.calls, 1)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), repo.calls[0])
}

func TestSchedulerRunOnce(t *testing.T) {
	repo := &markAbsenteesRecorder{}
	jobs := NewAttendanceJobs(repo, clock.Fixed{T: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)})

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)

	scheduler.RunOnce(context.Background())
	require.Len(t, repo.calls, 1)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), repo.calls[0])
}
