package leave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/leave"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	leave.TypeRepository
	leave.RequestRepository
}

func NewService(typeRepo leave.TypeRepository, requestRepo leave.RequestRepository) leave.Service {
	return &ServiceImpl{
		TypeRepository:    typeRepo,
		RequestRepository: requestRepo,
	}
}

// Submit implements leave.Service.
func (s *ServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	leaveType, err := s.TypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.Response{}, leave.ErrLeaveTypeNotFound
		}
		return leave.Response{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	totalDays := int(end.Sub(start).Hours()/24) + 1

	overlaps, err := s.RequestRepository.HasOverlap(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to check for overlapping leave: %w", err)
	}
	if overlaps {
		return leave.Response{}, leave.ErrLeaveOverlaps
	}

	usedDays, err := s.RequestRepository.ApprovedDays(ctx, req.EmployeeID, req.LeaveTypeID, start.Year())
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	if usedDays+totalDays > leaveType.DefaultQuotaDays {
		return leave.Response{}, leave.ErrInsufficientQuota
	}

	status := leave.StatusWaitingApproval
	if !leaveType.RequiresApproval {
		status = leave.StatusApproved
	}

	request := leave.LeaveRequest{
		EmployeeID:  req.EmployeeID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   start,
		EndDate:     end,
		TotalDays:   totalDays,
		Reason:      req.Reason,
		Status:      status,
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.Response{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return mapRequestToResponse(created), nil
}

// GetByID implements leave.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (leave.Response, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.Response{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Response{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return mapRequestToResponse(request), nil
}

// List implements leave.Service.
func (s *ServiceImpl) List(ctx context.Context, filter leave.Filter) (leave.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListResponse{}, err
	}

	requests, total, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapRequestToResponse(request))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return leave.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Requests:   responses,
	}, nil
}

// Approve implements leave.Service.
func (s *ServiceImpl) Approve(ctx context.Context, req leave.ReviewRequest) (leave.Response, error) {
	return s.review(ctx, req, leave.StatusApproved)
}

// Reject implements leave.Service.
func (s *ServiceImpl) Reject(ctx context.Context, req leave.ReviewRequest) (leave.Response, error) {
	if validator.OptionalString(req.Reason) == nil {
		return leave.Response{}, validator.ValidationErrors{{
			Field:   "reason",
			Message: "reason is required when rejecting",
		}}
	}
	return s.review(ctx, req, leave.StatusRejected)
}

func (s *ServiceImpl) review(ctx context.Context, req leave.ReviewRequest, status string) (leave.Response, error) {
	if err := req.Validate(); err != nil {
		return leave.Response{}, err
	}

	request, err := s.RequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.Response{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Response{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.StatusWaitingApproval {
		return leave.Response{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now().UTC()
	request.Status = status
	request.ReviewedBy = &req.ReviewerID
	request.ReviewedAt = &now
	request.RejectionReason = nil
	if status == leave.StatusRejected {
		request.RejectionReason = req.Reason
	}

	if err := s.RequestRepository.Update(ctx, request); err != nil {
		return leave.Response{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return mapRequestToResponse(request), nil
}

// Cancel implements leave.Service.
func (s *ServiceImpl) Cancel(ctx context.Context, id string) (leave.Response, error) {
	request, err := s.RequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.Response{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Response{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.StatusWaitingApproval {
		return leave.Response{}, leave.ErrLeaveAlreadyProcessed
	}

	request.Status = leave.StatusCancelled

	if err := s.RequestRepository.Update(ctx, request); err != nil {
		return leave.Response{}, fmt.Errorf("failed to cancel leave request: %w", err)
	}

	return mapRequestToResponse(request), nil
}

// Balance implements leave.Service.
func (s *ServiceImpl) Balance(ctx context.Context, employeeID string, year int) ([]leave.BalanceResponse, error) {
	types, err := s.TypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	balances := make([]leave.BalanceResponse, 0, len(types))
	for _, leaveType := range types {
		used, err := s.RequestRepository.ApprovedDays(ctx, employeeID, leaveType.ID, year)
		if err != nil {
			return nil, fmt.Errorf("failed to sum approved leave days: %w", err)
		}

		balances = append(balances, leave.BalanceResponse{
			LeaveTypeID:   leaveType.ID,
			LeaveTypeName: leaveType.Name,
			QuotaDays:     leaveType.DefaultQuotaDays,
			UsedDays:      used,
			RemainingDays: leaveType.DefaultQuotaDays - used,
		})
	}

	return balances, nil
}

// ListTypes implements leave.Service.
func (s *ServiceImpl) ListTypes(ctx context.Context) ([]leave.TypeResponse, error) {
	types, err := s.TypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	responses := make([]leave.TypeResponse, 0, len(types))
	for _, leaveType := range types {
		responses = append(responses, leave.TypeResponse{
			ID:               leaveType.ID,
			Name:             leaveType.Name,
			Code:             leaveType.Code,
			DefaultQuotaDays: leaveType.DefaultQuotaDays,
			RequiresApproval: leaveType.RequiresApproval,
		})
	}

	return responses, nil
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// mapRequestToResponse converts a LeaveRequest entity to Response.
func mapRequestToResponse(request leave.LeaveRequest) leave.Response {
	return leave.Response{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    request.EmployeeName,
		LeaveTypeID:     request.LeaveTypeID,
		LeaveTypeName:   request.LeaveTypeName,
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		TotalDays:       request.TotalDays,
		Reason:          request.Reason,
		Status:          request.Status,
		ReviewedBy:      request.ReviewedBy,
		ReviewedAt:      timePtrToString(request.ReviewedAt),
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
