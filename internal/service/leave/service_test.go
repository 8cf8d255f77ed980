package leave

import (
	"context"
	"testing"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTypeRepo struct {
	types map[string]leave.LeaveType
}

func (f *fakeTypeRepo) GetByID(ctx context.Context, id string) (leave.LeaveType, error) {
	lt, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeTypeRepo) List(ctx context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range f.types {
		out = append(out, lt)
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests map[string]*leave.LeaveRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*leave.LeaveRequest)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = uuid.NewString()
	f.requests[req.ID] = &req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return *req, nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, req leave.LeaveRequest) error {
	if _, ok := f.requests[req.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[req.ID] = &req
	return nil
}

func (f *fakeRequestRepo) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		out = append(out, *req)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRequestRepo) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	for _, req := range f.requests {
		if req.EmployeeID != employeeID {
			continue
		}
		if req.Status != leave.StatusWaitingApproval && req.Status != leave.StatusApproved {
			continue
		}
		if !start.After(req.EndDate) && !end.Before(req.StartDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestRepo) ApprovedDays(ctx context.Context, employeeID, leaveTypeID string, year int) (int, error) {
	total := 0
	for _, req := range f.requests {
		if req.EmployeeID == employeeID && req.LeaveTypeID == leaveTypeID &&
			req.Status == leave.StatusApproved && req.StartDate.Year() == year {
			total += req.TotalDays
		}
	}
	return total, nil
}

const (
	annualLeaveID = "type-annual"
	sickLeaveID   = "type-sick"
)

func newTestService() (leave.Service, *fakeRequestRepo) {
	typeRepo := &fakeTypeRepo{types: map[string]leave.LeaveType{
		annualLeaveID: {ID: annualLeaveID, Name: "Annual Leave", Code: "AL", DefaultQuotaDays: 12, RequiresApproval: true},
		sickLeaveID:   {ID: sickLeaveID, Name: "Sick Leave", Code: "SL", DefaultQuotaDays: 10, RequiresApproval: false},
	}}
	requestRepo := newFakeRequestRepo()
	return NewService(typeRepo, requestRepo), requestRepo
}

func submit(t *testing.T, svc leave.Service, employeeID, typeID, start, end string) leave.Response {
	t.Helper()
	resp, err := svc.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID:  employeeID,
		LeaveTypeID: typeID,
		StartDate:   start,
		EndDate:     end,
		Reason:      "family trip",
	})
	require.NoError(t, err)
	return resp
}

func TestSubmitCountsDaysInclusive(t *testing.T) {
	svc, _ := newTestService()

	resp := submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-11")

	assert.Equal(t, 5, resp.TotalDays)
	assert.Equal(t, leave.StatusWaitingApproval, resp.Status)
}

func TestSubmitSingleDay(t *testing.T) {
	svc, _ := newTestService()

	resp := submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-07")
	assert.Equal(t, 1, resp.TotalDays)
}

func TestSubmitAutoApprovesWhenTypeNeedsNoApproval(t *testing.T) {
	svc, _ := newTestService()

	resp := submit(t, svc, "emp-1", sickLeaveID, "2025-07-07", "2025-07-08")
	assert.Equal(t, leave.StatusApproved, resp.Status)
}

func TestSubmitUnknownType(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "nope",
		StartDate:   "2025-07-07",
		EndDate:     "2025-07-08",
		Reason:      "x",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}

func TestSubmitOverlapRejected(t *testing.T) {
	svc, _ := newTestService()

	submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-11")

	_, err := svc.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: annualLeaveID,
		StartDate:   "2025-07-10",
		EndDate:     "2025-07-14",
		Reason:      "x",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveOverlaps)

	// A different employee is free to take the same dates.
	submit(t, svc, "emp-2", annualLeaveID, "2025-07-10", "2025-07-14")
}

func TestSubmitQuotaExhausted(t *testing.T) {
	svc, _ := newTestService()

	// Sick leave auto-approves, so the days count against the 10-day quota.
	submit(t, svc, "emp-1", sickLeaveID, "2025-03-03", "2025-03-10") // 8 days

	_, err := svc.Submit(context.Background(), leave.SubmitRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: sickLeaveID,
		StartDate:   "2025-09-01",
		EndDate:     "2025-09-03", // 3 more would exceed 10
		Reason:      "x",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientQuota)

	// Exactly filling the quota is allowed.
	submit(t, svc, "emp-1", sickLeaveID, "2025-09-01", "2025-09-02")
}

func TestApproveAndRejectLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-08")

	approved, err := svc.Approve(ctx, leave.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1"})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "mgr-1", *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedAt)

	// A processed request cannot be reviewed again or cancelled.
	_, err = svc.Approve(ctx, leave.ReviewRequest{ID: created.ID, ReviewerID: "mgr-2"})
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)

	_, err = svc.Cancel(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRejectRequiresReason(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-08")

	_, err := svc.Reject(ctx, leave.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1"})
	assert.Error(t, err)

	reason := "blackout week"
	rejected, err := svc.Reject(ctx, leave.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1", Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)
}

func TestCancelWaitingRequest(t *testing.T) {
	svc, _ := newTestService()

	created := submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-08")

	cancelled, err := svc.Cancel(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, cancelled.Status)
}

func TestRejectedDaysDoNotConsumeQuota(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-16") // 10 days
	reason := "coverage"
	_, err := svc.Reject(ctx, leave.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1", Reason: &reason})
	require.NoError(t, err)

	balances, err := svc.Balance(ctx, "emp-1", 2025)
	require.NoError(t, err)

	for _, b := range balances {
		if b.LeaveTypeID == annualLeaveID {
			assert.Equal(t, 0, b.UsedDays)
			assert.Equal(t, 12, b.RemainingDays)
		}
	}
}

func TestBalancePerType(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created := submit(t, svc, "emp-1", annualLeaveID, "2025-07-07", "2025-07-09") // 3 days
	_, err := svc.Approve(ctx, leave.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1"})
	require.NoError(t, err)

	balances, err := svc.Balance(ctx, "emp-1", 2025)
	require.NoError(t, err)
	require.Len(t, balances, 2)

	byType := map[string]leave.BalanceResponse{}
	for _, b := range balances {
		byType[b.LeaveTypeID] = b
	}

	assert.Equal(t, 3, byType[annualLeaveID].UsedDays)
	assert.Equal(t, 9, byType[annualLeaveID].RemainingDays)
	assert.Equal(t, 0, byType[sickLeaveID].UsedDays)
	assert.Equal(t, 10, byType[sickLeaveID].RemainingDays)
}
