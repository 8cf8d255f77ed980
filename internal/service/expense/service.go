package expense

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/expense"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	expense.Repository
}

func NewService(repo expense.Repository) expense.Service {
	return &ServiceImpl{Repository: repo}
}

// Submit implements expense.Service.
func (s *ServiceImpl) Submit(ctx context.Context, req expense.SubmitRequest) (expense.Response, error) {
	if err := req.Validate(); err != nil {
		return expense.Response{}, err
	}

	expenseDate, _ := time.Parse("2006-01-02", req.ExpenseDate)

	claim := expense.Claim{
		EmployeeID:  req.EmployeeID,
		Category:    req.Category,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Description: req.Description,
		ExpenseDate: expenseDate,
		Status:      expense.StatusSubmitted,
	}

	created, err := s.Repository.Create(ctx, claim)
	if err != nil {
		return expense.Response{}, fmt.Errorf("failed to create expense claim: %w", err)
	}

	return mapClaimToResponse(created), nil
}

// GetByID implements expense.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (expense.Response, error) {
	claim, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, expense.ErrClaimNotFound) {
			return expense.Response{}, expense.ErrClaimNotFound
		}
		return expense.Response{}, fmt.Errorf("failed to get expense claim: %w", err)
	}

	return mapClaimToResponse(claim), nil
}

// List implements expense.Service.
func (s *ServiceImpl) List(ctx context.Context, filter expense.Filter) (expense.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return expense.ListResponse{}, err
	}

	claims, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return expense.ListResponse{}, fmt.Errorf("failed to list expense claims: %w", err)
	}

	responses := make([]expense.Response, 0, len(claims))
	for _, claim := range claims {
		responses = append(responses, mapClaimToResponse(claim))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return expense.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Claims:     responses,
	}, nil
}

// Approve implements expense.Service.
func (s *ServiceImpl) Approve(ctx context.Context, req expense.ReviewRequest) (expense.Response, error) {
	return s.review(ctx, req, expense.StatusApproved)
}

// Reject implements expense.Service.
func (s *ServiceImpl) Reject(ctx context.Context, req expense.ReviewRequest) (expense.Response, error) {
	if validator.OptionalString(req.Reason) == nil {
		return expense.Response{}, validator.ValidationErrors{{
			Field:   "reason",
			Message: "reason is required when rejecting",
		}}
	}
	return s.review(ctx, req, expense.StatusRejected)
}

func (s *ServiceImpl) review(ctx context.Context, req expense.ReviewRequest, status string) (expense.Response, error) {
	if err := req.Validate(); err != nil {
		return expense.Response{}, err
	}

	claim, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, expense.ErrClaimNotFound) {
			return expense.Response{}, expense.ErrClaimNotFound
		}
		return expense.Response{}, fmt.Errorf("failed to get expense claim: %w", err)
	}

	if claim.Status != expense.StatusSubmitted {
		return expense.Response{}, expense.ErrClaimAlreadyProcessed
	}

	now := time.Now().UTC()
	claim.Status = status
	claim.ReviewedBy = &req.ReviewerID
	claim.ReviewedAt = &now
	claim.RejectionReason = nil
	if status == expense.StatusRejected {
		claim.RejectionReason = req.Reason
	}

	if err := s.Repository.Update(ctx, claim); err != nil {
		return expense.Response{}, fmt.Errorf("failed to update expense claim: %w", err)
	}

	return mapClaimToResponse(claim), nil
}

// MarkReimbursed implements expense.Service.
func (s *ServiceImpl) MarkReimbursed(ctx context.Context, id string) (expense.Response, error) {
	claim, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, expense.ErrClaimNotFound) {
			return expense.Response{}, expense.ErrClaimNotFound
		}
		return expense.Response{}, fmt.Errorf("failed to get expense claim: %w", err)
	}

	if claim.Status != expense.StatusApproved {
		return expense.Response{}, expense.ErrClaimNotApproved
	}

	claim.Status = expense.StatusReimbursed

	if err := s.Repository.Update(ctx, claim); err != nil {
		return expense.Response{}, fmt.Errorf("failed to update expense claim: %w", err)
	}

	return mapClaimToResponse(claim), nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// mapClaimToResponse converts a Claim entity to Response.
func mapClaimToResponse(claim expense.Claim) expense.Response {
	return expense.Response{
		ID:              claim.ID,
		EmployeeID:      claim.EmployeeID,
		EmployeeName:    claim.EmployeeName,
		Category:        claim.Category,
		AmountCents:     claim.AmountCents,
		Currency:        claim.Currency,
		Description:     claim.Description,
		ExpenseDate:     claim.ExpenseDate.Format("2006-01-02"),
		Status:          claim.Status,
		ReviewedBy:      claim.ReviewedBy,
		ReviewedAt:      timePtrToString(claim.ReviewedAt),
		RejectionReason: claim.RejectionReason,
		CreatedAt:       claim.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
