package onboarding

import (
	"context"
	"testing"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/employee"
	"github.com/fieldhr/hrms-backend-go/internal/domain/onboarding"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

type fakeTaskRepo struct {
	tasks map[string]*onboarding.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*onboarding.Task)}
}

func (f *fakeTaskRepo) CreateTasks(ctx context.Context, tasks []onboarding.Task) ([]onboarding.Task, error) {
	created := make([]onboarding.Task, 0, len(tasks))
	for _, task := range tasks {
		task.ID = uuid.NewString()
		f.tasks[task.ID] = &task
		created = append(created, task)
	}
	return created, nil
}

func (f *fakeTaskRepo) GetTaskByID(ctx context.Context, id string) (onboarding.Task, error) {
	task, ok := f.tasks[id]
	if !ok {
		return onboarding.Task{}, onboarding.ErrTaskNotFound
	}
	return *task, nil
}

func (f *fakeTaskRepo) UpdateTask(ctx context.Context, task onboarding.Task) error {
	if _, ok := f.tasks[task.ID]; !ok {
		return onboarding.ErrTaskNotFound
	}
	f.tasks[task.ID] = &task
	return nil
}

func (f *fakeTaskRepo) ListTasks(ctx context.Context, employeeID string) ([]onboarding.Task, error) {
	var out []onboarding.Task
	for _, task := range f.tasks {
		if task.EmployeeID == employeeID {
			out = append(out, *task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) HasTasks(ctx context.Context, employeeID string) (bool, error) {
	for _, task := range f.tasks {
		if task.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeEmployeeRepo struct {
	employees map[string]*employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]*employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = uuid.NewString()
	f.employees[emp.ID] = &emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = &emp
	return nil
}

func (f *fakeEmployeeRepo) SetStatus(ctx context.Context, id string, status employee.Status) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	return nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, int64(len(out)), nil
}

func newTestService(t *testing.T) (onboarding.Service, *fakeEmployeeRepo, string) {
	t.Helper()
	taskRepo := newFakeTaskRepo()
	employeeRepo := newFakeEmployeeRepo()

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName: "Dewi Lestari",
		Email:    "dewi@example.com",
		Status:   employee.StatusActive,
	})
	require.NoError(t, err)

	svc := NewService(taskRepo, employeeRepo, clock.Fixed{T: testNow})
	return svc, employeeRepo, emp.ID
}

func TestStartCreatesDefaultChecklist(t *testing.T) {
	svc, employeeRepo, empID := newTestService(t)
	ctx := context.Background()

	progress, err := svc.Start(ctx, onboarding.StartRequest{EmployeeID: empID})
	require.NoError(t, err)

	assert.Equal(t, len(onboarding.DefaultChecklist), progress.TotalTasks)
	assert.Equal(t, 0, progress.ClosedTasks)
	assert.False(t, progress.Completed)
	require.Len(t, progress.Tasks, len(onboarding.DefaultChecklist))

	for _, task := range progress.Tasks {
		assert.Equal(t, onboarding.StatusPending, task.Status)
		assert.NotNil(t, task.DueDate)
	}

	// Due dates come from the fixed clock plus each template offset.
	require.NotNil(t, progress.Tasks[0].DueDate)
	assert.Equal(t, "2025-06-13", *progress.Tasks[0].DueDate)

	emp, err := employeeRepo.GetByID(ctx, empID)
	require.NoError(t, err)
	assert.Equal(t, employee.StatusOnboarding, emp.Status)
}

func TestStartTwiceFails(t *testing.T) {
	svc, _, empID := newTestService(t)
	ctx := context.Background()

	_, err := svc.Start(ctx, onboarding.StartRequest{EmployeeID: empID})
	require.NoError(t, err)

	_, err = svc.Start(ctx, onboarding.StartRequest{EmployeeID: empID})
	assert.ErrorIs(t, err, onboarding.ErrOnboardingAlreadyStarted)
}

func TestStartUnknownEmployee(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Start(context.Background(), onboarding.StartRequest{EmployeeID: "nope"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCompleteTask(t *testing.T) {
	svc, _, empID := newTestService(t)
	ctx := context.Background()

	progress, err := svc.Start(ctx, onboarding.StartRequest{EmployeeID: empID})
	require.NoError(t, err)

	taskID := progress.Tasks[0].ID
	done, err := svc.CompleteTask(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StatusDone, done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = svc.CompleteTask(ctx, taskID)
	assert.ErrorIs(t, err, onboarding.ErrTaskAlreadyClosed)
}

func TestSkipTaskHasNoCompletedAt(t *testing.T) {
	svc, _, empID := newTestService(t)
	ctx := context.Background()

	progress, err := svc.Start(ctx, onboarding.StartRequest{EmployeeID: empID})
	require.NoError(t, err)

	skipped, err := svc.SkipTask(ctx, progress.Tasks[0].ID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.StatusSkipped, skipped.Status)
	assert.Nil(t, skipped.CompletedAt)

	_, err = svc.CompleteTask(ctx, progress.Tasks[0].ID)
	assert.ErrorIs(t, err, onboarding.ErrTaskAlreadyClosed)
}

func TestClosingLastTaskActivatesEmployee(t *testing.T) {
	svc, employeeRepo, empID := newTestService(t)
	ctx := context.Background()

	started, err := svc.Start(ctx, onboarding.StartRequest{EmployeeID: empID})
	require.NoError(t, err)

	for i, task := range started.Tasks {
		// Mix completes and skips; either closes the task.
		if i%2 == 0 {
			_, err = svc.CompleteTask(ctx, task.ID)
		} else {
			_, err = svc.SkipTask(ctx, task.ID)
		}
		require.NoError(t, err)

		emp, err := employeeRepo.GetByID(ctx, empID)
		require.NoError(t, err)
		if i < len(started.Tasks)-1 {
			assert.Equal(t, employee.StatusOnboarding, emp.Status)
		} else {
			assert.Equal(t, employee.StatusActive, emp.Status)
		}
	}

	progress, err := svc.Progress(ctx, empID)
	require.NoError(t, err)
	assert.Equal(t, progress.TotalTasks, progress.ClosedTasks)
	assert.True(t, progress.Completed)
}

func TestCompleteUnknownTask(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CompleteTask(context.Background(), "nope")
	assert.ErrorIs(t, err, onboarding.ErrTaskNotFound)
}
