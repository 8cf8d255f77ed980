package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/employee"
)

type ServiceImpl struct {
	employee.Repository
}

func NewService(repo employee.Repository) employee.Service {
	return &ServiceImpl{Repository: repo}
}

// Create implements employee.Service.
func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	emp := employee.Employee{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
		Department: req.Department,
		Status:     employee.StatusActive,
		JoinDate:   joinDate,
	}

	created, err := s.Repository.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.Response{}, employee.ErrEmailExists
		}
		return employee.Response{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetByID implements employee.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (employee.Response, error) {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Response{}, employee.ErrEmployeeNotFound
		}
		return employee.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Update implements employee.Service.
func (s *ServiceImpl) Update(ctx context.Context, req employee.UpdateRequest) (employee.Response, error) {
	if err := req.Validate(); err != nil {
		return employee.Response{}, err
	}

	emp, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Response{}, employee.ErrEmployeeNotFound
		}
		return employee.Response{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.Department != nil {
		emp.Department = req.Department
	}

	if err := s.Repository.Update(ctx, emp); err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return employee.Response{}, employee.ErrEmailExists
		}
		return employee.Response{}, fmt.Errorf("failed to update employee: %w", err)
	}

	updated, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Response{}, fmt.Errorf("failed to get updated employee: %w", err)
	}

	return mapEmployeeToResponse(updated), nil
}

// Deactivate implements employee.Service.
func (s *ServiceImpl) Deactivate(ctx context.Context, id string) error {
	emp, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if emp.Status == employee.StatusInactive {
		return employee.ErrEmployeeAlreadyInactive
	}

	if err := s.Repository.SetStatus(ctx, id, employee.StatusInactive); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}

// List implements employee.Service.
func (s *ServiceImpl) List(ctx context.Context, filter employee.Filter) (employee.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListResponse{}, err
	}

	employees, total, err := s.Repository.List(ctx, filter)
	if err != nil {
		return employee.ListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.Response, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return employee.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Employees:  responses,
	}, nil
}

// mapEmployeeToResponse converts an Employee entity to Response.
func mapEmployeeToResponse(emp employee.Employee) employee.Response {
	return employee.Response{
		ID:         emp.ID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Phone:      emp.Phone,
		Position:   emp.Position,
		Department: emp.Department,
		Status:     string(emp.Status),
		JoinDate:   emp.JoinDate.Format("2006-01-02"),
		CreatedAt:  emp.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  emp.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
