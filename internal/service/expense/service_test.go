package expense

import (
	"context"
	"testing"

	"github.com/fieldhr/hrms-backend-go/internal/domain/expense"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExpenseRepo struct {
	claims map[string]*expense.Claim
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{claims: make(map[string]*expense.Claim)}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, claim expense.Claim) (expense.Claim, error) {
	claim.ID = uuid.NewString()
	f.claims[claim.ID] = &claim
	return claim, nil
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, id string) (expense.Claim, error) {
	claim, ok := f.claims[id]
	if !ok {
		return expense.Claim{}, expense.ErrClaimNotFound
	}
	return *claim, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, claim expense.Claim) error {
	if _, ok := f.claims[claim.ID]; !ok {
		return expense.ErrClaimNotFound
	}
	f.claims[claim.ID] = &claim
	return nil
}

func (f *fakeExpenseRepo) List(ctx context.Context, filter expense.Filter) ([]expense.Claim, int64, error) {
	var out []expense.Claim
	for _, claim := range f.claims {
		out = append(out, *claim)
	}
	return out, int64(len(out)), nil
}

func submitClaim(t *testing.T, svc expense.Service) expense.Response {
	t.Helper()
	resp, err := svc.Submit(context.Background(), expense.SubmitRequest{
		EmployeeID:  "emp-1",
		Category:    expense.CategoryTravel,
		AmountCents: 45_00,
		Currency:    "EUR",
		Description: "Taxi to client site",
		ExpenseDate: "2025-06-05",
	})
	require.NoError(t, err)
	return resp
}

func TestSubmitClaim(t *testing.T) {
	svc := NewService(newFakeExpenseRepo())

	resp := submitClaim(t, svc)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, expense.StatusSubmitted, resp.Status)
	assert.Equal(t, int64(4500), resp.AmountCents)
	assert.Equal(t, "2025-06-05", resp.ExpenseDate)
}

func TestSubmitClaimValidation(t *testing.T) {
	svc := NewService(newFakeExpenseRepo())

	tests := []struct {
		name   string
		mutate func(*expense.SubmitRequest)
	}{
		{"missing employee", func(r *expense.SubmitRequest) { r.EmployeeID = "" }},
		{"bad category", func(r *expense.SubmitRequest) { r.Category = "snacks" }},
		{"zero amount", func(r *expense.SubmitRequest) { r.AmountCents = 0 }},
		{"negative amount", func(r *expense.SubmitRequest) { r.AmountCents = -100 }},
		{"bad currency", func(r *expense.SubmitRequest) { r.Currency = "EURO" }},
		{"bad date", func(r *expense.SubmitRequest) { r.ExpenseDate = "05/06/2025" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := expense.SubmitRequest{
				EmployeeID:  "emp-1",
				Category:    expense.CategoryMeals,
				AmountCents: 1200,
				Currency:    "USD",
				Description: "Lunch",
				ExpenseDate: "2025-06-05",
			}
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			assert.Error(t, err)
		})
	}
}

func TestApproveClaim(t *testing.T) {
	svc := NewService(newFakeExpenseRepo())
	ctx := context.Background()

	created := submitClaim(t, svc)

	approved, err := svc.Approve(ctx, expense.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1"})
	require.NoError(t, err)
	assert.Equal(t, expense.StatusApproved, approved.Status)
	require.NotNil(t, approved.ReviewedBy)
	assert.Equal(t, "mgr-1", *approved.ReviewedBy)
	assert.NotNil(t, approved.ReviewedAt)

	_, err = svc.Approve(ctx, expense.ReviewRequest{ID: created.ID, ReviewerID: "mgr-2"})
	assert.ErrorIs(t, err, expense.ErrClaimAlreadyProcessed)
}

func TestRejectClaimRequiresReason(t *testing.T) {
	svc := NewService(newFakeExpenseRepo())
	ctx := context.Background()

	created := submitClaim(t, svc)

	_, err := svc.Reject(ctx, expense.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1"})
	assert.Error(t, err)

	reason := "missing receipt"
	rejected, err := svc.Reject(ctx, expense.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1", Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, expense.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, reason, *rejected.RejectionReason)
}

func TestMarkReimbursed(t *testing.T) {
	svc := NewService(newFakeExpenseRepo())
	ctx := context.Background()

	created := submitClaim(t, svc)

	// Only approved claims can be paid out.
	_, err := svc.MarkReimbursed(ctx, created.ID)
	assert.ErrorIs(t, err, expense.ErrClaimNotApproved)

	_, err = svc.Approve(ctx, expense.ReviewRequest{ID: created.ID, ReviewerID: "mgr-1"})
	require.NoError(t, err)

	reimbursed, err := svc.MarkReimbursed(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, expense.StatusReimbursed, reimbursed.Status)

	// Already-reimbursed claims stay terminal.
	_, err = svc.MarkReimbursed(ctx, created.ID)
	assert.ErrorIs(t, err, expense.ErrClaimNotApproved)
}

func TestReviewUnknownClaim(t *testing.T) {
	svc := NewService(newFakeExpenseRepo())

	_, err := svc.Approve(context.Background(), expense.ReviewRequest{ID: "nope", ReviewerID: "mgr-1"})
	assert.ErrorIs(t, err, expense.ErrClaimNotFound)
}
