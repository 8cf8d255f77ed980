package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fieldhr/hrms-backend-go/internal/domain/employee"
	"github.com/fieldhr/hrms-backend-go/internal/domain/onboarding"
	"github.com/fieldhr/hrms-backend-go/internal/pkg/clock"
)

type ServiceImpl struct {
	onboarding.Repository
	employeeRepo employee.Repository
	clock        clock.Clock
}

func NewService(repo onboarding.Repository, employeeRepo employee.Repository, clk clock.Clock) onboarding.Service {
	return &ServiceImpl{
		Repository:   repo,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// Start implements onboarding.Service.
func (s *ServiceImpl) Start(ctx context.Context, req onboarding.StartRequest) (onboarding.ProgressResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.ProgressResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return onboarding.ProgressResponse{}, employee.ErrEmployeeNotFound
		}
		return onboarding.ProgressResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	started, err := s.Repository.HasTasks(ctx, req.EmployeeID)
	if err != nil {
		return onboarding.ProgressResponse{}, fmt.Errorf("failed to check onboarding state: %w", err)
	}
	if started {
		return onboarding.ProgressResponse{}, onboarding.ErrOnboardingAlreadyStarted
	}

	now := s.clock.Now()
	tasks := make([]onboarding.Task, 0, len(onboarding.DefaultChecklist))
	for _, tpl := range onboarding.DefaultChecklist {
		description := tpl.Description
		due := now.AddDate(0, 0, tpl.DueInDays)
		tasks = append(tasks, onboarding.Task{
			EmployeeID:  req.EmployeeID,
			Title:       tpl.Title,
			Description: &description,
			DueDate:     &due,
			Status:      onboarding.StatusPending,
		})
	}

	created, err := s.Repository.CreateTasks(ctx, tasks)
	if err != nil {
		return onboarding.ProgressResponse{}, fmt.Errorf("failed to create onboarding tasks: %w", err)
	}

	if err := s.employeeRepo.SetStatus(ctx, req.EmployeeID, employee.StatusOnboarding); err != nil {
		return onboarding.ProgressResponse{}, fmt.Errorf("failed to set employee status: %w", err)
	}

	return buildProgress(req.EmployeeID, created), nil
}

// ListTasks implements onboarding.Service.
func (s *ServiceImpl) ListTasks(ctx context.Context, employeeID string) ([]onboarding.TaskResponse, error) {
	tasks, err := s.Repository.ListTasks(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}

	responses := make([]onboarding.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, mapTaskToResponse(task))
	}

	return responses, nil
}

// CompleteTask implements onboarding.Service.
func (s *ServiceImpl) CompleteTask(ctx context.Context, taskID string) (onboarding.TaskResponse, error) {
	return s.closeTask(ctx, taskID, onboarding.StatusDone)
}

// SkipTask implements onboarding.Service.
func (s *ServiceImpl) SkipTask(ctx context.Context, taskID string) (onboarding.TaskResponse, error) {
	return s.closeTask(ctx, taskID, onboarding.StatusSkipped)
}

func (s *ServiceImpl) closeTask(ctx context.Context, taskID string, status string) (onboarding.TaskResponse, error) {
	task, err := s.Repository.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, onboarding.ErrTaskNotFound) {
			return onboarding.TaskResponse{}, onboarding.ErrTaskNotFound
		}
		return onboarding.TaskResponse{}, fmt.Errorf("failed to get onboarding task: %w", err)
	}

	if task.Closed() {
		return onboarding.TaskResponse{}, onboarding.ErrTaskAlreadyClosed
	}

	now := s.clock.Now()
	task.Status = status
	if status == onboarding.StatusDone {
		task.CompletedAt = &now
	}

	if err := s.Repository.UpdateTask(ctx, task); err != nil {
		return onboarding.TaskResponse{}, fmt.Errorf("failed to update onboarding task: %w", err)
	}

	// When the last open task closes the employee graduates to active.
	remaining, err := s.Repository.ListTasks(ctx, task.EmployeeID)
	if err != nil {
		return onboarding.TaskResponse{}, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	if allClosed(remaining) {
		if err := s.employeeRepo.SetStatus(ctx, task.EmployeeID, employee.StatusActive); err != nil {
			return onboarding.TaskResponse{}, fmt.Errorf("failed to set employee status: %w", err)
		}
	}

	return mapTaskToResponse(task), nil
}

// Progress implements onboarding.Service.
func (s *ServiceImpl) Progress(ctx context.Context, employeeID string) (onboarding.ProgressResponse, error) {
	tasks, err := s.Repository.ListTasks(ctx, employeeID)
	if err != nil {
		return onboarding.ProgressResponse{}, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}

	return buildProgress(employeeID, tasks), nil
}

func allClosed(tasks []onboarding.Task) bool {
	for _, task := range tasks {
		if !task.Closed() {
			return false
		}
	}
	return len(tasks) > 0
}

func buildProgress(employeeID string, tasks []onboarding.Task) onboarding.ProgressResponse {
	closed := 0
	responses := make([]onboarding.TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		if task.Closed() {
			closed++
		}
		responses = append(responses, mapTaskToResponse(task))
	}

	return onboarding.ProgressResponse{
		EmployeeID:  employeeID,
		TotalTasks:  len(tasks),
		ClosedTasks: closed,
		Completed:   len(tasks) > 0 && closed == len(tasks),
		Tasks:       responses,
	}
}

func mapTaskToResponse(task onboarding.Task) onboarding.TaskResponse {
	var dueDate *string
	if task.DueDate != nil {
		formatted := task.DueDate.Format("2006-01-02")
		dueDate = &formatted
	}

	var completedAt *string
	if task.CompletedAt != nil {
		formatted := task.CompletedAt.Format(time.RFC3339)
		completedAt = &formatted
	}

	return onboarding.TaskResponse{
		ID:          task.ID,
		EmployeeID:  task.EmployeeID,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     dueDate,
		Status:      task.Status,
		CompletedAt: completedAt,
	}
}
